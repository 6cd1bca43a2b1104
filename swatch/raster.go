package swatch

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"colorkit/colors"
)

// maxRasterDim is the maximum pixel dimension (width or height) of rendered
// image, scale is reduced to fit.
var maxRasterDim = 8192

// rasterize draws SVG at its intrinsic size over white background.
func rasterize(svgData []byte) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svgData), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("unable to read svg: %w", err)
	}

	w, h := int(icon.ViewBox.W), int(icon.ViewBox.H)
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svg has no size (%dx%d)", w, h)
	}
	if w > maxRasterDim || h > maxRasterDim {
		return nil, fmt.Errorf("svg is too large (%dx%d)", w, h)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, dst, dst.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.Draw(dasher, 1.0)
	return dst, nil
}

// drawLabels prints the same labels Document puts into SVG text elements,
// oksvg does not render text.
func drawLabels(dst draw.Image, vars []colors.Variation, cellW, cellH int) {
	for i, v := range vars {
		d := &font.Drawer{
			Dst:  dst,
			Src:  image.NewUniform(contrast(v.Color)),
			Face: basicfont.Face7x13,
		}
		for _, l := range []struct {
			text     string
			baseline int
		}{
			{v.Label, cellH - labelBaseline},
			{v.Color.Hex(), cellH - hexBaseline},
		} {
			x := i*cellW + (cellW-d.MeasureString(l.text).Ceil())/2
			d.Dot = fixed.P(x, l.baseline)
			d.DrawString(l.text)
		}
	}
}

// Image renders variations strip as raster image upscaled by scale.
func Image(vars []colors.Variation, cellW, cellH, scale int, labels bool) (image.Image, error) {
	if len(vars) == 0 {
		return nil, errors.New("nothing to render")
	}
	svg, err := Document(vars, cellW, cellH, false, "").WriteToBytes()
	if err != nil {
		return nil, err
	}
	img, err := rasterize(svg)
	if err != nil {
		return nil, err
	}
	if labels {
		drawLabels(img, vars, cellW, cellH)
	}

	b := img.Bounds()
	for scale > 1 && (b.Dx()*scale > maxRasterDim || b.Dy()*scale > maxRasterDim) {
		scale--
	}
	if scale <= 1 {
		return img, nil
	}
	return imaging.Resize(img, b.Dx()*scale, b.Dy()*scale, imaging.NearestNeighbor), nil
}
