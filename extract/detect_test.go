package extract

import (
	"archive/zip"
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"colorkit/common"
)

func pngData(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, imaging.New(w, h, c), imaging.PNG); err != nil {
		t.Fatalf("unable to encode png: %v", err)
	}
	return buf.Bytes()
}

func TestDetectKind(t *testing.T) {
	png := pngData(t, 2, 2, color.NRGBA{1, 2, 3, 255})

	tests := []struct {
		name   string
		file   string
		head   []byte
		want   common.SourceKind
		wantOK bool
	}{
		{"css by extension", "site.css", []byte("body{}"), common.SourceKindCss, true},
		{"html by extension", "PAGE.HTM", []byte("whatever"), common.SourceKindHtml, true},
		{"xhtml by extension", "ch01.xhtml", []byte("<?xml version=\"1.0\"?>"), common.SourceKindHtml, true},
		{"svg by extension", "logo.svg", []byte("<?xml version=\"1.0\"?>"), common.SourceKindSvg, true},
		{"html by doctype", "index", []byte("  <!DOCTYPE html>\n<html>"), common.SourceKindHtml, true},
		{"html by tag", "index", []byte("<HTML><body>"), common.SourceKindHtml, true},
		{"svg by tag", "logo", []byte("<?xml version=\"1.0\"?>\n<svg xmlns=\"http://www.w3.org/2000/svg\">"), common.SourceKindSvg, true},
		{"image by content", "picture.css", png, common.SourceKindImage, true},
		{"unknown", "readme.txt", []byte("hello"), 0, false},
		{"empty", "empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := detectKind(tt.file, tt.head)
			if ok != tt.wantOK {
				t.Fatalf("detectKind(%q) ok = %v, want %v", tt.file, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("detectKind(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestIsArchiveFile(t *testing.T) {
	dir := t.TempDir()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	if _, err := zw.Create("a.css"); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	arc := filepath.Join(dir, "a.zip")
	if err := os.WriteFile(arc, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	txt := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(txt, []byte("PK"), 0644); err != nil {
		t.Fatal(err)
	}

	if ok, err := isArchiveFile(arc); err != nil || !ok {
		t.Errorf("isArchiveFile(zip) = %v, %v", ok, err)
	}
	if ok, err := isArchiveFile(txt); err != nil || ok {
		t.Errorf("isArchiveFile(txt) = %v, %v", ok, err)
	}
	if _, err := isArchiveFile(filepath.Join(dir, "missing")); err == nil {
		t.Error("isArchiveFile(missing) expected error")
	}
}
