package colors

import (
	"regexp"
	"sort"

	"github.com/maruel/natural"
	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Transparent is the only named color which is not part of the SVG 1.1
// table.
const Transparent = "transparent"

// blackLiteralRe matches inputs that legitimately resolve to black, any other
// input resolving to pure black is treated as unknown.
var blackLiteralRe = regexp.MustCompile(`(?i)^#?0{3,6}$`)

// Lookup resolves a CSS color name, case insensitively.
func Lookup(name string) (Color, bool) {
	p, ok := parseNamed(name)
	if !ok {
		return Color{}, false
	}
	return p.normalize(), true
}

// Names returns all known color names in natural order.
func Names() []string {
	names := make([]string, 0, len(colornames.Names)+1)
	names = append(names, colornames.Names...)
	names = append(names, Transparent)
	sort.Sort(natural.StringSlice(names))
	return names
}

func parseNamed(s string) (parsed, bool) {
	key := fold(s)
	if key == Transparent {
		return parsed{a: 0, hasAlpha: true}, true
	}

	nc, ok := colornames.Map[key]
	if !ok {
		return parsed{}, false
	}
	if nc.R == 0 && nc.G == 0 && nc.B == 0 && !isBlackLiteral(s) {
		return parsed{}, false
	}
	return parsed{r: float64(nc.R), g: float64(nc.G), b: float64(nc.B)}, true
}

func isBlackLiteral(s string) bool {
	return fold(s) == "black" || blackLiteralRe.MatchString(s)
}

// fold returns case folded s. Casers keep state, so one is made per call.
func fold(s string) string {
	return cases.Fold().String(s)
}
