package colors

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	rgbFuncRe = regexp.MustCompile(`(?i)^rgba?\(\s*([-\d.]+%?)\s*,\s*([-\d.]+%?)\s*,\s*([-\d.]+%?)(?:\s*,\s*([-\d.]+%?)\s*)?\)$`)
	hslFuncRe = regexp.MustCompile(`(?i)^hsla?\(\s*([-+]?\d+(?:\.\d+)?)\s*,\s*([\d.]+)%\s*,\s*([\d.]+)%(?:\s*,\s*([-\d.]+%?)\s*)?\)$`)
)

// parsed is the raw outcome of a single parser branch, before normalization.
// Channels may be fractional or out of range at this point.
type parsed struct {
	r, g, b  float64
	a        float64
	hasAlpha bool
}

// Parse converts free-form color text into a Color. Accepted forms, tried in
// this order:
//
//   - hex: "#RGB", "#RGBA", "#RRGGBB", "#RRGGBBAA" (leading "#" optional)
//   - "rgb(r, g, b)" / "rgba(r, g, b, a)", channels and alpha may be percentages
//   - "hsl(h, s%, l%)" / "hsla(h, s%, l%, a)"
//   - CSS named colors and "transparent"
//
// ok is false when the text is not understood. Alpha defaults to 1.
func Parse(text string) (c Color, ok bool) {
	input := strings.TrimSpace(text)
	if input == "" {
		return Color{}, false
	}

	for _, try := range [...]func(string) (parsed, bool){
		parseHex,
		parseRGBFunc,
		parseHSLFunc,
		parseNamed,
	} {
		if p, ok := try(input); ok {
			return p.normalize(), true
		}
	}
	return Color{}, false
}

// normalize is the single place where parser output is rounded and clamped.
func (p parsed) normalize() Color {
	c := Color{
		R: ClampChannel(p.r),
		G: ClampChannel(p.g),
		B: ClampChannel(p.b),
		A: 1,
	}
	if p.hasAlpha {
		c.A = ClampAlpha(p.a)
	}
	return c
}

func parseHex(s string) (parsed, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 || len(s) == 4 {
		var sb strings.Builder
		for i := 0; i < len(s); i++ {
			sb.WriteByte(s[i])
			sb.WriteByte(s[i])
		}
		s = sb.String()
	}
	if len(s) != 6 && len(s) != 8 {
		return parsed{}, false
	}

	var vals [4]uint8
	for i := 0; i < len(s)/2; i++ {
		v, ok := hexByte(s[2*i], s[2*i+1])
		if !ok {
			return parsed{}, false
		}
		vals[i] = v
	}

	p := parsed{r: float64(vals[0]), g: float64(vals[1]), b: float64(vals[2])}
	if len(s) == 8 {
		p.a, p.hasAlpha = round3(float64(vals[3])/255), true
	}
	return p, true
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok := hexDigit(hi)
	if !ok {
		return 0, false
	}
	l, ok := hexDigit(lo)
	if !ok {
		return 0, false
	}
	return h<<4 | l, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func parseRGBFunc(s string) (parsed, bool) {
	m := rgbFuncRe.FindStringSubmatch(s)
	if m == nil {
		return parsed{}, false
	}

	var ch [3]float64
	for i, tok := range m[1:4] {
		v, pct, ok := parseNumber(tok)
		if !ok {
			return parsed{}, false
		}
		if pct {
			v = v / 100 * 255
		}
		ch[i] = v
	}

	p := parsed{r: ch[0], g: ch[1], b: ch[2]}
	if m[4] != "" {
		a, ok := parseAlpha(m[4])
		if !ok {
			return parsed{}, false
		}
		p.a, p.hasAlpha = a, true
	}
	return p, true
}

func parseHSLFunc(s string) (parsed, bool) {
	m := hslFuncRe.FindStringSubmatch(s)
	if m == nil {
		return parsed{}, false
	}

	var v [3]float64
	for i, tok := range m[1:4] {
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return parsed{}, false
		}
		v[i] = f
	}

	r, g, b, ok := HSLToRGB(v[0], v[1], v[2])
	if !ok {
		return parsed{}, false
	}

	p := parsed{r: float64(r), g: float64(g), b: float64(b)}
	if m[4] != "" {
		a, ok := parseAlpha(m[4])
		if !ok {
			return parsed{}, false
		}
		p.a, p.hasAlpha = a, true
	}
	return p, true
}

// parseNumber parses a numeric token with an optional trailing percent sign.
// Tokens like "1.2.3" or "-" are rejected.
func parseNumber(tok string) (v float64, pct, ok bool) {
	num, pct := strings.CutSuffix(tok, "%")
	f, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false, false
	}
	return f, pct, true
}

func parseAlpha(tok string) (float64, bool) {
	v, pct, ok := parseNumber(tok)
	if !ok {
		return 0, false
	}
	if pct {
		v /= 100
	}
	return v, true
}
