// Package colors implements the color model used by colorkit: canonical RGB
// with alpha, HSL view, CSS color text parsing and tint/shade derivation.
//
// Everything here is a pure function of its arguments, nothing keeps state
// between calls.
package colors

import (
	"image/color"
	"math"
)

// Color is the canonical color value. Channels are in [0, 255], alpha in
// [0, 1] (straight, not premultiplied).
type Color struct {
	R, G, B uint8
	A       float64
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGBA implements color.Color. Returned values are alpha-premultiplied as
// the interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(ClampChannel(c.A * 255))}.RGBA()
}

// FromColor converts any color.Color into Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: ClampAlpha(float64(n.A) / 255)}
}

// Opaque reports whether alpha is 1.
func (c Color) Opaque() bool {
	return c.A >= 1
}

// HSL returns hue/saturation/lightness view of the color.
func (c Color) HSL() HSL {
	return RGBToHSL(c.R, c.G, c.B)
}

// WithAlpha returns a copy of c with alpha replaced (and clamped).
func (c Color) WithAlpha(a float64) Color {
	c.A = ClampAlpha(a)
	return c
}

// ClampChannel rounds v to the nearest integer and clamps it to [0, 255].
// NaN becomes 0.
func ClampChannel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Round(v)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// ClampAlpha clamps v to [0, 1] keeping 3 decimal digits. NaN becomes 1
// (opaque), which is the default for input that did not specify alpha.
func ClampAlpha(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	v = round3(v)
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
