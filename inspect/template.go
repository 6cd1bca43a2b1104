package inspect

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"colorkit/colors"
	"colorkit/config"
)

// Values is a struct that holds variables we make available for color
// template expansion.
type Values struct {
	Input     string
	Hex       string
	RGB, RGBA string
	HSL, HSLA string
	R, G, B   int
	A         float64
	H, S, L   int
	Notations map[string]string
}

func newValues(input string, c colors.Color) Values {
	h, s, l := c.HSL().Int()
	v := Values{
		Input:     input,
		Hex:       c.Format(colors.NotationHex),
		RGB:       c.Format(colors.NotationRgb),
		RGBA:      c.Format(colors.NotationRgba),
		HSL:       c.Format(colors.NotationHsl),
		HSLA:      c.Format(colors.NotationHsla),
		R:         int(c.R),
		G:         int(c.G),
		B:         int(c.B),
		A:         c.A,
		H:         h,
		S:         s,
		L:         l,
		Notations: make(map[string]string),
	}
	for n, f := range c.Notations() {
		v.Notations[n.String()] = f
	}
	return v
}

// prepareTemplate parses user template once so it could be applied to every
// color on the command line.
func prepareTemplate(field string) (*template.Template, error) {
	tmpl, err := template.New(string(config.PaletteTemplateFieldName)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return nil, fmt.Errorf("unable to parse template field %s: %w", config.PaletteTemplateFieldName, err)
	}
	return tmpl, nil
}

func expandTemplate(tmpl *template.Template, input string, c colors.Color) (string, error) {
	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, newValues(input, c)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
