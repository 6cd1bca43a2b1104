package common

import "testing"

func TestSwatchFormat(t *testing.T) {
	tests := []struct {
		name   string
		ext    string
		raster bool
	}{
		{"png", ".png", true},
		{"jpeg", ".jpg", true},
		{"svg", ".svg", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseSwatchFormat(tt.name)
			if err != nil {
				t.Fatalf("ParseSwatchFormat(%q) error = %v", tt.name, err)
			}
			if f.String() != tt.name {
				t.Errorf("String() = %q", f.String())
			}
			if f.Ext() != tt.ext {
				t.Errorf("Ext() = %q, want %q", f.Ext(), tt.ext)
			}
			if f.Raster() != tt.raster {
				t.Errorf("Raster() = %v, want %v", f.Raster(), tt.raster)
			}
		})
	}

	if _, err := ParseSwatchFormat("gif"); err == nil {
		t.Error("ParseSwatchFormat(gif) expected error")
	}

	var f SwatchFormat
	if err := f.UnmarshalText([]byte("SVG")); err != nil || f != SwatchFormatSvg {
		t.Errorf("UnmarshalText(SVG) = %v, %v", f, err)
	}
}

func TestSwatchFormat_ExtPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Ext() expected panic for unknown format")
		}
	}()
	_ = SwatchFormat(42).Ext()
}

func TestSourceKind(t *testing.T) {
	for _, name := range SourceKindNames() {
		k, err := ParseSourceKind(name)
		if err != nil {
			t.Fatalf("ParseSourceKind(%q) error = %v", name, err)
		}
		text, err := k.MarshalText()
		if err != nil || string(text) != name {
			t.Errorf("MarshalText() = %q, %v", text, err)
		}
	}
	if SourceKind(7).IsValid() {
		t.Error("SourceKind(7) reported as valid")
	}
}

func TestPreview(t *testing.T) {
	if got, want := Preview(0, 120, 212), "\x1b[48;2;0;120;212m  \x1b[0m"; got != want {
		t.Errorf("Preview() = %q, want %q", got, want)
	}
}
