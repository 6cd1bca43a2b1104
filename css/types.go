package css

import (
	"strings"

	"colorkit/colors"
)

// Occurrence is a single color value found in a style sheet or inline style.
type Occurrence struct {
	AtRule   string // enclosing at-rules, e.g. "@media (prefers-color-scheme:dark)"
	Selector string // empty for inline styles
	Property string // declaration name, custom properties included
	Raw      string // color as written in source
	Color    colors.Color
}

// Context returns human readable location of the occurrence inside the style.
func (o Occurrence) Context() string {
	var parts []string
	if o.AtRule != "" {
		parts = append(parts, o.AtRule)
	}
	if o.Selector != "" {
		parts = append(parts, o.Selector)
	}
	parts = append(parts, o.Property)
	return strings.Join(parts, " > ")
}

// Sheet is the result of scanning a single style source.
type Sheet struct {
	Source   string
	Colors   []Occurrence
	Warnings []string // unparsable color functions, syntax errors
}

// Unique returns distinct colors in order of first appearance.
func (s *Sheet) Unique() []colors.Color {
	seen := make(map[colors.Color]struct{}, len(s.Colors))
	res := make([]colors.Color, 0, len(s.Colors))
	for _, o := range s.Colors {
		if _, ok := seen[o.Color]; ok {
			continue
		}
		seen[o.Color] = struct{}{}
		res = append(res, o.Color)
	}
	return res
}

// colorFunctions are CSS functions whose whole text is a color.
var colorFunctions = map[string]bool{
	"rgb":  true,
	"rgba": true,
	"hsl":  true,
	"hsla": true,
}

// colorPropertyPrefixes select declarations where bare identifiers are
// looked up as color names. Hex and functional colors are accepted in any
// declaration.
var colorPropertyPrefixes = []string{
	"color",
	"background",
	"border",
	"outline",
	"fill",
	"stroke",
	"stop-color",
	"flood-color",
	"lighting-color",
	"caret-color",
	"accent-color",
	"column-rule",
	"text-decoration",
	"text-emphasis",
	"text-shadow",
	"box-shadow",
	"scrollbar-color",
	"--",
}

// IsColorProperty reports whether named colors are expected in the value of
// the property.
func IsColorProperty(name string) bool {
	name = strings.ToLower(strings.TrimPrefix(name, "*"))
	for _, p := range colorPropertyPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
