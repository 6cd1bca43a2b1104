// Package common keeps enums shared between configuration and commands.
package common

// Specification of swatch output format.
// ENUM(png, jpeg, svg)
type SwatchFormat int

func (f SwatchFormat) Ext() string {
	switch f {
	case SwatchFormatPng:
		return ".png"
	case SwatchFormatJpeg:
		return ".jpg"
	case SwatchFormatSvg:
		return ".svg"
	default:
		// this should never happen
		panic("unsupported swatch format requested")
	}
}

// Raster reports whether format requires rasterization.
func (f SwatchFormat) Raster() bool {
	return f == SwatchFormatPng || f == SwatchFormatJpeg
}

// Kind of source colors were extracted from.
// ENUM(css, html, svg, image)
type SourceKind int
