package colors

import (
	"fmt"
	"strconv"
)

// Hex returns lower case "#rrggbb", alpha is ignored.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.Opaque() {
		return c.Format(NotationHex)
	}
	return c.Format(NotationRgba)
}

// Format renders the color in requested notation. Unknown notation falls
// back to hex.
func (c Color) Format(n Notation) string {
	switch n {
	case NotationRgb:
		return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
	case NotationRgba:
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, formatAlpha(c.A))
	case NotationHsl:
		h, s, l := c.HSL().Int()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", h, s, l)
	case NotationHsla:
		h, s, l := c.HSL().Int()
		return fmt.Sprintf("hsla(%d, %d%%, %d%%, %s)", h, s, l, formatAlpha(c.A))
	default:
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
}

// Notations returns the color formatted in every known notation.
func (c Color) Notations() map[Notation]string {
	res := make(map[Notation]string, len(_NotationNames))
	for _, name := range NotationNames() {
		n, _ := ParseNotation(name)
		res[n] = c.Format(n)
	}
	return res
}

func formatAlpha(a float64) string {
	return strconv.FormatFloat(ClampAlpha(a), 'f', -1, 64)
}

// LinearGradient returns CSS linear-gradient for two colors. Translucent
// colors are written with rgba() so alpha is not lost.
func LinearGradient(angle int, start, end Color) string {
	return fmt.Sprintf("linear-gradient(%ddeg, %s, %s)", angle, gradientStop(start), gradientStop(end))
}

func gradientStop(c Color) string {
	if c.Opaque() {
		return c.Hex()
	}
	return c.Format(NotationRgba)
}

// Display is Format which does not lose alpha: translucent colors requested
// in hex or rgb come out as rgba, hsl as hsla.
func (c Color) Display(n Notation) string {
	if c.Opaque() {
		return c.Format(n)
	}
	switch n {
	case NotationHsl, NotationHsla:
		return c.Format(NotationHsla)
	default:
		return c.Format(NotationRgba)
	}
}
