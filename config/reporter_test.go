package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("failed to open report: %v", err)
	}
	defer zr.Close()

	res := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("failed to read %s: %v", f.Name, err)
		}
		res[f.Name] = string(data)
	}
	return res
}

func TestReport_StoreAndClose(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}

	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error: %v", err)
	}

	stored := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(stored, []byte("version: 1\n"), 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	r.Store("config.yaml", stored)
	r.Store("config.yaml", stored) // same path is fine
	r.Store("missing.log", filepath.Join(dir, "never-created.log"))
	r.StoreData("swatch.svg", []byte("<svg/>"))
	r.StoreData("swatch.svg", []byte("<svg></svg>"))

	name := r.Name()
	if !filepath.IsAbs(name) {
		t.Errorf("Name() = %q, expected absolute path", name)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	files := readArchive(t, name)
	if files["config.yaml"] != "version: 1\n" {
		t.Errorf("config.yaml = %q", files["config.yaml"])
	}
	if files["swatch.svg"] != "<svg/>" {
		t.Errorf("swatch.svg = %q", files["swatch.svg"])
	}
	if _, ok := files["missing.log"]; ok {
		t.Error("absent file should not be archived")
	}

	if files["swatch-2.svg"] != "<svg></svg>" {
		t.Errorf("swatch-2.svg = %q", files["swatch-2.svg"])
	}

	manifest := files["MANIFEST"]
	for _, want := range []string{
		"colorkit dev (unknown), report created ",
		"config.yaml\t11 bytes\t" + stored,
		"missing.log\tmissing\t",
		"swatch.svg\t6 bytes\tcaptured ",
		"swatch-2.svg\t11 bytes\tcaptured ",
	} {
		if !strings.Contains(manifest, want) {
			t.Errorf("MANIFEST does not contain %q:\n%s", want, manifest)
		}
	}
}

func TestReport_StoreDataNames(t *testing.T) {
	r := &Report{items: make(map[string]item)}
	r.StoreData("extract.txt", nil)
	r.StoreData("extract.txt", nil)
	r.StoreData("extract.txt", nil)
	r.StoreData("config/colorkit", nil)
	r.StoreData("config/colorkit", nil)

	for _, name := range []string{"extract.txt", "extract-2.txt", "extract-3.txt", "config/colorkit", "config/colorkit-2"} {
		if _, ok := r.items[name]; !ok {
			t.Errorf("entry %q is missing, have %v", name, r.items)
		}
	}
}

func TestReport_StoreConflict(t *testing.T) {
	r := &Report{items: make(map[string]item)}
	r.Store("log", "a.log")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting Store")
		}
	}()
	r.Store("log", "b.log")
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("c", nil)
	if r.Name() != "" {
		t.Error("Name() on nil report should be empty")
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReportClose_NilFile(t *testing.T) {
	r := &Report{items: make(map[string]item)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
