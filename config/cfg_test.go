package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"

	"colorkit/colors"
	"colorkit/common"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !slices.Equal(cfg.Palette.Factors, colors.DefaultFactors) {
		t.Errorf("Factors = %v, want %v", cfg.Palette.Factors, colors.DefaultFactors)
	}
	if cfg.Palette.Notation != colors.NotationHex {
		t.Errorf("Notation = %v, want hex", cfg.Palette.Notation)
	}
	if cfg.Palette.GradientAngle != 90 {
		t.Errorf("GradientAngle = %d, want 90", cfg.Palette.GradientAngle)
	}
	if cfg.Swatch.Format != common.SwatchFormatPng {
		t.Errorf("Swatch.Format = %v, want png", cfg.Swatch.Format)
	}
	if cfg.Swatch.JPEGQuality < 40 || cfg.Swatch.JPEGQuality > 100 {
		t.Errorf("JPEGQuality = %d, should be between 40 and 100", cfg.Swatch.JPEGQuality)
	}
	if cfg.Extract.MinCount != 1 {
		t.Errorf("Extract.MinCount = %d, want 1", cfg.Extract.MinCount)
	}
	if cfg.Logging.FileLogger.Level != "none" {
		t.Errorf("file logger level = %q, want none", cfg.Logging.FileLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := writeConfig(t, `version: 1
palette:
  factors: [0.1, 0.2]
  notation: HSLA
  gradient_angle: -45
  template: "{{ .Hex | upper }}"
swatch:
  format: svg
  cell_width: 64
  cell_height: 64
  scale: 1
  labels: false
  jpeq_quality_level: 85
  dpi: 0
  file_name_template: "{{ .Hex }}"
  file_name_transliterate: false
extract:
  summary_only: true
  min_count: 3
  named_colors: false
  images: false
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(tmpDir, "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(tmpDir, "report.zip")+`
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !slices.Equal(cfg.Palette.Factors, []float64{0.1, 0.2}) {
		t.Errorf("Factors = %v", cfg.Palette.Factors)
	}
	if cfg.Palette.Notation != colors.NotationHsla {
		t.Errorf("Notation = %v, want hsla", cfg.Palette.Notation)
	}
	if cfg.Palette.GradientAngle != -45 {
		t.Errorf("GradientAngle = %d, want -45", cfg.Palette.GradientAngle)
	}
	// templates are not expanded during load
	if cfg.Palette.Template != "{{ .Hex | upper }}" {
		t.Errorf("Template = %q", cfg.Palette.Template)
	}
	if cfg.Swatch.FileNameTemplate != "{{ .Hex }}" {
		t.Errorf("FileNameTemplate = %q", cfg.Swatch.FileNameTemplate)
	}
	if cfg.Swatch.Format != common.SwatchFormatSvg || cfg.Swatch.Width != 64 || cfg.Swatch.Labels {
		t.Errorf("Swatch = %+v", cfg.Swatch)
	}
	if !cfg.Extract.SummaryOnly || cfg.Extract.MinCount != 3 || cfg.Extract.NamedColors || cfg.Extract.Images {
		t.Errorf("Extract = %+v", cfg.Extract)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("file logger mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	path := writeConfig(t, `version: 1
swatch:
  format: jpeg
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	if cfg.Swatch.Format != common.SwatchFormatJpeg {
		t.Errorf("Swatch.Format = %v, want jpeg", cfg.Swatch.Format)
	}
	// unspecified values come from template
	if cfg.Swatch.Width != 120 || cfg.Swatch.Scale != 2 {
		t.Errorf("Swatch defaults lost: %+v", cfg.Swatch)
	}
	if len(cfg.Palette.Factors) != 3 {
		t.Errorf("Factors = %v, want defaults", cfg.Palette.Factors)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\npalette:\n  factors: [0.1\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"bad version", "version: 2\n"},
		{"bad notation", "version: 1\npalette:\n  notation: cmyk\n"},
		{"bad format", "version: 1\nswatch:\n  format: gif\n"},
		{"factor out of range", "version: 1\npalette:\n  factors: [0.5, 1.5]\n"},
		{"no factors", "version: 1\npalette:\n  factors: []\n"},
		{"angle out of range", "version: 1\npalette:\n  gradient_angle: 720\n"},
		{"quality out of range", "version: 1\nswatch:\n  jpeq_quality_level: 10\n"},
		{"bad log level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Fatal("Prepare() returned empty data")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Palette.Notation = colors.NotationRgba
	cfg.Swatch.Format = common.SwatchFormatJpeg

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "notation: rgba") {
		t.Errorf("Dump() does not use enum names:\n%s", data)
	}

	cfg2, err := unmarshalConfig(data, &Config{}, false)
	if err != nil {
		t.Fatalf("Dumped config cannot be loaded: %v", err)
	}
	if cfg2.Palette.Notation != colors.NotationRgba || cfg2.Swatch.Format != common.SwatchFormatJpeg {
		t.Errorf("enum mismatch after dump/load: %v, %v", cfg2.Palette.Notation, cfg2.Swatch.Format)
	}
	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		result, err := unmarshalConfig([]byte(`version: 1`), &Config{}, false)
		if err != nil {
			t.Fatalf("unmarshalConfig() error = %v", err)
		}
		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := unmarshalConfig([]byte(`invalid: [yaml`), &Config{}, false); err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"swatch_0078d4", "swatch_0078d4"},
		{"a" + string(os.PathSeparator) + "b", "ab"},
		{"", "_bad_file_name_"},
		{string(os.PathSeparator), "_bad_file_name_"},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
