// Package swatch renders variations strip of a color as an image.
package swatch

import (
	"strconv"

	"github.com/beevik/etree"

	"colorkit/colors"
)

const (
	svgNS = "http://www.w3.org/2000/svg"

	// labels are laid out for basicfont.Face7x13 so raster and vector
	// versions look the same
	fontSize      = 13
	labelBaseline = 22 // distance from the bottom of the cell
	hexBaseline   = 8
)

// Document builds SVG with a cell per variation placed left to right.
// When labels are requested every cell gets variation label and its hex
// value printed in contrasting color.
func Document(vars []colors.Variation, cellW, cellH int, labels bool, title string) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	w := cellW * len(vars)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNS)
	svg.CreateAttr("width", strconv.Itoa(w))
	svg.CreateAttr("height", strconv.Itoa(cellH))
	svg.CreateAttr("viewBox", "0 0 "+strconv.Itoa(w)+" "+strconv.Itoa(cellH))
	if title != "" {
		svg.CreateElement("title").SetText(title)
	}

	for i, v := range vars {
		x := i * cellW

		g := svg.CreateElement("g")
		g.CreateAttr("id", "cell"+strconv.Itoa(i))

		rect := g.CreateElement("rect")
		rect.CreateAttr("x", strconv.Itoa(x))
		rect.CreateAttr("y", "0")
		rect.CreateAttr("width", strconv.Itoa(cellW))
		rect.CreateAttr("height", strconv.Itoa(cellH))
		rect.CreateAttr("fill", v.Color.Hex())
		if !v.Color.Opaque() {
			rect.CreateAttr("fill-opacity", strconv.FormatFloat(v.Color.A, 'f', -1, 64))
		}

		if !labels {
			continue
		}
		fg := contrast(v.Color).Hex()
		for _, l := range []struct {
			text     string
			baseline int
		}{
			{v.Label, cellH - labelBaseline},
			{v.Color.Hex(), cellH - hexBaseline},
		} {
			text := g.CreateElement("text")
			text.CreateAttr("x", strconv.Itoa(x+cellW/2))
			text.CreateAttr("y", strconv.Itoa(l.baseline))
			text.CreateAttr("font-family", "monospace")
			text.CreateAttr("font-size", strconv.Itoa(fontSize))
			text.CreateAttr("text-anchor", "middle")
			text.CreateAttr("fill", fg)
			text.SetText(l.text)
		}
	}

	doc.Indent(2)
	return doc
}

// contrast returns black or white, whichever is easier to read on top of c.
// Translucent colors are assumed to be on white background.
func contrast(c colors.Color) colors.Color {
	blend := func(v uint8) float64 {
		return float64(v)*c.A + 255*(1-c.A)
	}
	if 0.299*blend(c.R)+0.587*blend(c.G)+0.114*blend(c.B) > 150 {
		return colors.RGB(0, 0, 0)
	}
	return colors.RGB(255, 255, 255)
}
