package archive

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

type zipItem struct {
	name    string
	content string
	dir     bool
}

func makeZip(t *testing.T, items []zipItem) string {
	t.Helper()
	zipPath := filepath.Join(t.TempDir(), "test.zip")

	zipFile, err := os.Create(zipPath)
	if err != nil {
		t.Fatalf("Failed to create zip file: %v", err)
	}
	defer zipFile.Close()

	w := zip.NewWriter(zipFile)
	for _, it := range items {
		fh := &zip.FileHeader{Name: it.name, Method: zip.Deflate}
		if it.dir {
			fh.SetMode(os.ModeDir | 0755)
		}
		fw, err := w.CreateHeader(fh)
		if err != nil {
			t.Fatalf("Failed to create %s in zip: %v", it.name, err)
		}
		if _, err := fw.Write([]byte(it.content)); err != nil {
			t.Fatalf("Failed to write content for %s: %v", it.name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
	return zipPath
}

func collect(t *testing.T, zipPath, pattern string) []string {
	t.Helper()
	var visited []string
	err := Walk(zipPath, pattern, nil, func(archive string, e Entry) error {
		if archive != zipPath {
			t.Errorf("archive = %s, want %s", archive, zipPath)
		}
		visited = append(visited, e.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	return visited
}

func TestWalk(t *testing.T) {
	zipPath := makeZip(t, []zipItem{
		{name: "css/site.css", content: "a{color:red}"},
		{name: "css/print.css", content: "a{color:#000}"},
		{name: "img/logo.svg", content: "<svg/>"},
		{name: "img/", dir: true},
		{name: "index.html", content: "<html></html>"},
	})

	tests := []struct {
		pattern string
		want    int
	}{
		{"css/", 2},
		{"img/", 1},
		{"", 4},
		{"nonexistent/", 0},
		{"CSS/", 0},
	}
	for _, tt := range tests {
		t.Run("prefix "+tt.pattern, func(t *testing.T) {
			if got := collect(t, zipPath, tt.pattern); len(got) != tt.want {
				t.Errorf("visited %v, want %d entries", got, tt.want)
			}
		})
	}
}

func TestWalk_Errors(t *testing.T) {
	t.Run("nonexistent file", func(t *testing.T) {
		if err := Walk("/nonexistent/file.zip", "", nil, func(string, Entry) error { return nil }); err == nil {
			t.Error("Expected error for nonexistent file")
		}
	})

	t.Run("invalid zip file", func(t *testing.T) {
		invalidZip := filepath.Join(t.TempDir(), "invalid.zip")
		if err := os.WriteFile(invalidZip, []byte("not a zip file"), 0644); err != nil {
			t.Fatalf("Failed to create invalid zip: %v", err)
		}
		if err := Walk(invalidZip, "", nil, func(string, Entry) error { return nil }); err == nil {
			t.Error("Expected error for invalid zip file")
		}
	})

	t.Run("early termination", func(t *testing.T) {
		zipPath := makeZip(t, []zipItem{{name: "a"}, {name: "b"}, {name: "c"}})
		stopErr := errors.New("stop walking")
		visited := 0
		err := Walk(zipPath, "", nil, func(string, Entry) error {
			visited++
			if visited == 2 {
				return stopErr
			}
			return nil
		})
		if !errors.Is(err, stopErr) {
			t.Errorf("Walk() error = %v, want %v", err, stopErr)
		}
		if visited != 2 {
			t.Errorf("visited %d files, want 2", visited)
		}
	})
}

func TestWalk_NameDecoding(t *testing.T) {
	// "café.css" in windows-1252, not flagged as UTF-8
	raw := "caf\xe9.css"
	zipPath := makeZip(t, []zipItem{{name: raw, content: "b{color:blue}"}})

	var names []string
	err := Walk(zipPath, "", charmap.Windows1252, func(_ string, e Entry) error {
		names = append(names, e.Name)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}
	if len(names) != 1 || names[0] != "café.css" {
		t.Errorf("names = %q, want café.css", names)
	}

	if got := collect(t, zipPath, ""); len(got) != 1 || got[0] != raw {
		t.Errorf("names without code page = %q, want raw name", got)
	}
}

func TestEntry_ReadAll(t *testing.T) {
	zipPath := makeZip(t, []zipItem{{name: "site.css", content: "a{color:red}"}})

	err := Walk(zipPath, "", nil, func(_ string, e Entry) error {
		data, err := e.ReadAll(1024)
		if err != nil {
			return err
		}
		if string(data) != "a{color:red}" {
			t.Errorf("content = %q", data)
		}
		if _, err := e.ReadAll(4); err == nil {
			t.Error("expected error for entry over the limit")
		}
		return nil
	})
	if err != nil {
		t.Errorf("Walk() error = %v", err)
	}
}

func TestIsSafePath(t *testing.T) {
	for name, want := range map[string]bool{
		"a/b.css":      true,
		"a/../b.css":   false,
		"/etc/passwd":  false,
		`\windows`:     false,
		`a\..\b.css`:   false,
		"..hidden.css": true,
	} {
		if got := isSafePath(name); got != want {
			t.Errorf("isSafePath(%q) = %v, want %v", name, got, want)
		}
	}
}
