// Package archive builds Walk abstraction on top of "archive/zip".
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"golang.org/x/text/encoding"
)

// Entry is a regular file inside archive.
type Entry struct {
	// Name is path inside archive, decoded when archive does not use UTF-8.
	Name string
	File *zip.File
}

// ReadAll reads entry content refusing entries which uncompress to more than
// limit bytes.
func (e Entry) ReadAll(limit int64) ([]byte, error) {
	if e.File.UncompressedSize64 > uint64(limit) {
		return nil, fmt.Errorf("zip entry %q is too large (%d bytes)", e.Name, e.File.UncompressedSize64)
	}
	r, err := e.File.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	// header could lie
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, fmt.Errorf("zip entry %q is too large", e.Name)
	}
	return data, nil
}

// WalkFunc is the type of the function called for each file in archive
// visited by Walk. The archive argument contains path to archive passed to
// Walk. If an error is returned, processing stops.
type WalkFunc func(archive string, entry Entry) error

// Walk walks all regular files in the archive with names starting with
// pattern, calling walkFn for each item. When cp is not nil it is used to
// decode names not marked as UTF-8. Entries with path traversal components
// ("..") or absolute paths are silently skipped.
func Walk(archive, pattern string, cp encoding.Encoding, walkFn WalkFunc) error {
	// insecure names are filtered below
	r, err := zip.OpenReader(archive)
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.FileInfo().IsDir() {
			continue
		}
		name := f.FileHeader.Name
		if cp != nil && f.FileHeader.NonUTF8 {
			if n, err := cp.NewDecoder().String(name); err == nil {
				name = n
			}
		}
		if !isSafePath(name) || !strings.HasPrefix(name, pattern) {
			continue
		}
		if err := walkFn(archive, Entry{Name: name, File: f}); err != nil {
			return err
		}
	}
	return nil
}

// isSafePath returns false for absolute paths and those containing ".."
// components.
func isSafePath(name string) bool {
	if path.IsAbs(name) || strings.HasPrefix(name, `\`) {
		return false
	}
	for part := range strings.SplitSeq(strings.ReplaceAll(name, `\`, "/"), "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
