package extract

import (
	"image/color"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"

	"colorkit/colors"
	"colorkit/config"
)

func newTestExtractor(t *testing.T, named bool) *Extractor {
	t.Helper()
	cfg := &config.ExtractConfig{MinCount: 1, NamedColors: named, Images: true}
	return New(cfg, charmap.Windows1252, nil, zaptest.NewLogger(t))
}

func byContext(found []Finding) map[string]colors.Color {
	res := make(map[string]colors.Color, len(found))
	for _, f := range found {
		res[f.Context] = f.Color
	}
	return res
}

func checkFindings(t *testing.T, found []Finding, want map[string]colors.Color) {
	t.Helper()
	if len(found) != len(want) {
		t.Errorf("got %d findings, want %d: %+v", len(found), len(want), found)
	}
	got := byContext(found)
	for ctx, c := range want {
		gc, ok := got[ctx]
		if !ok {
			t.Errorf("no finding for %q", ctx)
			continue
		}
		if gc != c {
			t.Errorf("finding %q = %+v, want %+v", ctx, gc, c)
		}
	}
}

func TestScanCSS(t *testing.T) {
	e := newTestExtractor(t, true)
	found, warns := e.scanCSS([]byte("p { color: red; border-color: rgb(0 0 0) }"), "a.css")
	checkFindings(t, found, map[string]colors.Color{
		"p > color": colors.RGB(255, 0, 0),
	})
	if len(warns) != 1 {
		t.Errorf("got %d warnings, want 1: %v", len(warns), warns)
	}
}

const sampleHTML = `<!DOCTYPE html>
<html><head>
<meta name="Theme-Color" content="#0078d4">
<meta name="description" content="red">
<style>p { color: red }</style>
</head>
<body bgcolor="#ffffff" style="color: rgb(1, 2, 3)">
<font color="navy">x</font>
<p class="red">red text is not a color here</p>
</body></html>
`

func TestScanHTML(t *testing.T) {
	e := newTestExtractor(t, true)
	found, warns, err := e.scanHTML([]byte(sampleHTML), "index.html")
	if err != nil {
		t.Fatalf("scanHTML() error = %v", err)
	}
	if len(warns) != 0 {
		t.Errorf("unexpected warnings: %v", warns)
	}
	checkFindings(t, found, map[string]colors.Color{
		"meta[theme-color]":   colors.RGB(0, 120, 212),
		"style > p > color":   colors.RGB(255, 0, 0),
		"body[bgcolor]":       colors.RGB(255, 255, 255),
		"body[style] > color": colors.RGB(1, 2, 3),
		"font[color]":         colors.RGB(0, 0, 128),
	})
	if len(found) > 0 && found[0].Raw != "#0078d4" {
		t.Errorf("first finding raw = %q, want #0078d4", found[0].Raw)
	}
}

func TestScanHTML_CodePage(t *testing.T) {
	e := newTestExtractor(t, true)
	// \xe9 is not valid UTF-8, without declared charset markup code page is used
	data := []byte("<html><body><p style=\"color: #abc\">caf\xe9</p></body></html>")
	found, _, err := e.scanHTML(data, "legacy.html")
	if err != nil {
		t.Fatalf("scanHTML() error = %v", err)
	}
	checkFindings(t, found, map[string]colors.Color{
		"p[style] > color": colors.RGB(0xaa, 0xbb, 0xcc),
	})
}

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10">
  <style>.a { fill: #ff0000 }</style>
  <rect class="a" fill="blue" style="stroke: #00ff00" width="10" height="10"/>
  <circle fill="none" stroke="url(#g)" r="2"/>
</svg>
`

func TestScanSVG(t *testing.T) {
	e := newTestExtractor(t, true)
	found, _, err := e.scanSVG([]byte(sampleSVG))
	if err != nil {
		t.Fatalf("scanSVG() error = %v", err)
	}
	checkFindings(t, found, map[string]colors.Color{
		"/svg/style > .a > fill":    colors.RGB(255, 0, 0),
		"/svg/rect[fill]":           colors.RGB(0, 0, 255),
		"/svg/rect[style] > stroke": colors.RGB(0, 255, 0),
	})
}

func TestScanSVG_Invalid(t *testing.T) {
	e := newTestExtractor(t, true)
	if _, _, err := e.scanSVG([]byte("<svg><rect></svg")); err == nil {
		t.Error("scanSVG() expected error for broken document")
	}
}

func TestScanImage(t *testing.T) {
	e := newTestExtractor(t, true)
	found, err := e.scanImage(pngData(t, 4, 3, color.NRGBA{10, 20, 30, 255}))
	if err != nil {
		t.Fatalf("scanImage() error = %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("got %d findings, want 1", len(found))
	}
	if found[0].Color != colors.RGB(10, 20, 30) {
		t.Errorf("average = %+v", found[0].Color)
	}
	if found[0].Context != "average of 4x3" {
		t.Errorf("context = %q", found[0].Context)
	}
	if !strings.HasPrefix(found[0].Raw, "rgba(10, 20, 30") {
		t.Errorf("raw = %q", found[0].Raw)
	}

	if _, err := e.scanImage([]byte("not an image")); err == nil {
		t.Error("scanImage() expected error")
	}
}

func TestScanImage_TooLarge(t *testing.T) {
	old := maxImagePixels
	maxImagePixels = 11
	t.Cleanup(func() { maxImagePixels = old })

	e := newTestExtractor(t, true)
	_, err := e.scanImage(pngData(t, 4, 3, color.NRGBA{10, 20, 30, 255}))
	if err == nil || !strings.Contains(err.Error(), "too large") {
		t.Fatalf("scanImage() error = %v, want size limit error", err)
	}

	maxImagePixels = 12
	if _, err := e.scanImage(pngData(t, 4, 3, color.NRGBA{10, 20, 30, 255})); err != nil {
		t.Errorf("scanImage() error = %v at exact limit", err)
	}
}
