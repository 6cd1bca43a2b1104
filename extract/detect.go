package extract

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"

	"colorkit/common"
)

// sniffLen is how much of the source is looked at to decide its kind.
const sniffLen = 512

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	return buf[:n], nil
}

func isArchiveFile(path string) (bool, error) {
	head, err := readHead(path)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

var (
	markupExts = map[string]common.SourceKind{
		".css":   common.SourceKindCss,
		".html":  common.SourceKindHtml,
		".htm":   common.SourceKindHtml,
		".xhtml": common.SourceKindHtml,
		".xht":   common.SourceKindHtml,
		".svg":   common.SourceKindSvg,
	}
	svgTag     = []byte("<svg")
	htmlTag    = []byte("<html")
	htmlDoctyp = []byte("<!doctype html")
)

// detectKind decides how source should be scanned using its name and first
// bytes. Images are recognized by content only.
func detectKind(name string, head []byte) (common.SourceKind, bool) {
	if len(head) > sniffLen {
		head = head[:sniffLen]
	}
	if filetype.IsImage(head) {
		return common.SourceKindImage, true
	}
	if kind, ok := markupExts[strings.ToLower(filepath.Ext(name))]; ok {
		return kind, true
	}

	text := bytes.ToLower(bytes.TrimSpace(head))
	switch {
	case bytes.HasPrefix(text, htmlDoctyp) || bytes.Contains(text, htmlTag):
		return common.SourceKindHtml, true
	case bytes.Contains(text, svgTag):
		return common.SourceKindSvg, true
	}
	return 0, false
}
