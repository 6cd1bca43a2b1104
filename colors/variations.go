package colors

import (
	"fmt"
	"math"
	"slices"
)

// DefaultFactors are blend factors used for tints and shades when nothing
// else is requested.
var DefaultFactors = []float64{0.25, 0.50, 0.75}

// Variation is a single labelled entry of the variations strip.
type Variation struct {
	Label string
	Color Color
}

// Tint blends c toward white by factor f (0 - unchanged, 1 - white).
func Tint(c Color, f float64) Color {
	return Color{
		R: ClampChannel(float64(c.R) + (255-float64(c.R))*f),
		G: ClampChannel(float64(c.G) + (255-float64(c.G))*f),
		B: ClampChannel(float64(c.B) + (255-float64(c.B))*f),
		A: c.A,
	}
}

// Shade blends c toward black by factor f (0 - unchanged, 1 - black).
func Shade(c Color, f float64) Color {
	return Color{
		R: ClampChannel(float64(c.R) * (1 - f)),
		G: ClampChannel(float64(c.G) * (1 - f)),
		B: ClampChannel(float64(c.B) * (1 - f)),
		A: c.A,
	}
}

// Variations returns the strip shown next to a color: tints from the
// lightest down, the color itself, then shades from the lightest down.
// Without factors DefaultFactors are used.
func Variations(c Color, factors ...float64) []Variation {
	if len(factors) == 0 {
		factors = DefaultFactors
	}
	fs := slices.Clone(factors)
	slices.Sort(fs)

	res := make([]Variation, 0, 2*len(fs)+1)
	for _, f := range slices.Backward(fs) {
		res = append(res, Variation{Label: fmt.Sprintf("Tint %d%%", percent(f)), Color: Tint(c, f)})
	}
	res = append(res, Variation{Label: "Current", Color: c})
	for _, f := range fs {
		res = append(res, Variation{Label: fmt.Sprintf("Shade %d%%", percent(f)), Color: Shade(c, f)})
	}
	return res
}

func percent(f float64) int {
	return int(math.Round(f * 100))
}
