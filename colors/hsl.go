package colors

import (
	"math"
)

// HSL is the cylindrical view of a color. H is in degrees [0, 360), S and L
// are percentages [0, 100]. Values are kept unrounded so that converting back
// to RGB reproduces the original channels, use Int for display.
type HSL struct {
	H, S, L float64
}

// Int returns integer view of the HSL value: h in [0, 359], s and l in
// [0, 100].
func (v HSL) Int() (h, s, l int) {
	h = int(math.Round(v.H)) % 360
	if h < 0 {
		h += 360
	}
	s = int(math.Round(math.Min(100, math.Max(0, v.S))))
	l = int(math.Round(math.Min(100, math.Max(0, v.L))))
	return h, s, l
}

// RGB converts the value back to RGB channels.
func (v HSL) RGB() (r, g, b uint8, ok bool) {
	return HSLToRGB(v.H, v.S, v.L)
}

// RGBToHSL converts RGB channels to HSL.
func RGBToHSL(r, g, b uint8) HSL {
	rf, gf, bf := float64(r)/255, float64(g)/255, float64(b)/255

	hi := math.Max(rf, math.Max(gf, bf))
	lo := math.Min(rf, math.Min(gf, bf))
	l := (hi + lo) / 2

	if hi == lo {
		// achromatic
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := hi - lo
	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return HSL{H: math.Mod(h*360, 360), S: s * 100, L: l * 100}
}

// HSLToRGB converts hue (degrees, any range), saturation and lightness
// (percent, clamped to [0, 100]) to RGB channels. ok is false when any of the
// arguments is NaN or infinite.
func HSLToRGB(h, s, l float64) (r, g, b uint8, ok bool) {
	for _, v := range [...]float64{h, s, l} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, false
		}
	}

	hue := math.Mod(math.Mod(h, 360)+360, 360) / 360
	sat := math.Min(100, math.Max(0, s)) / 100
	lig := math.Min(100, math.Max(0, l)) / 100

	if sat == 0 {
		v := ClampChannel(lig * 255)
		return v, v, v, true
	}

	var q float64
	if lig < 0.5 {
		q = lig * (1 + sat)
	} else {
		q = lig + sat - lig*sat
	}
	p := 2*lig - q

	r = ClampChannel(hueToChannel(p, q, hue+1.0/3) * 255)
	g = ClampChannel(hueToChannel(p, q, hue) * 255)
	b = ClampChannel(hueToChannel(p, q, hue-1.0/3) * 255)
	return r, g, b, true
}

// hueToChannel evaluates one channel for position t on the hue circle.
// Sector boundaries are tested in order: 1/6, 1/2, 2/3.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}
