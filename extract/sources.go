package extract

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/beevik/etree"
	"github.com/disintegration/imaging"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	// additional image formats for imaging.Decode
	_ "golang.org/x/image/webp"

	"colorkit/colors"
	"colorkit/css"
)

// legacyAttrs maps presentational HTML attributes to equivalent properties.
var legacyAttrs = map[string]string{
	"bgcolor":        "background-color",
	"color":          "color",
	"text":           "color",
	"link":           "color",
	"vlink":          "color",
	"alink":          "color",
	"fill":           "fill",
	"stroke":         "stroke",
	"stop-color":     "stop-color",
	"flood-color":    "flood-color",
	"lighting-color": "lighting-color",
}

// metaColors are <meta name=...> values with color content.
var metaColors = map[string]bool{
	"theme-color":                   true,
	"msapplication-tilecolor":       true,
	"msapplication-navbutton-color": true,
}

// svgPresentationAttrs are SVG attributes which may carry color.
var svgPresentationAttrs = map[string]bool{
	"fill":           true,
	"stroke":         true,
	"stop-color":     true,
	"flood-color":    true,
	"lighting-color": true,
	"solid-color":    true,
	"color":          true,
}

func fromSheet(sheet *css.Sheet, prefix string) []Finding {
	res := make([]Finding, 0, len(sheet.Colors))
	for _, o := range sheet.Colors {
		ctx := o.Context()
		if prefix != "" {
			ctx = prefix + " > " + ctx
		}
		res = append(res, Finding{Context: ctx, Raw: o.Raw, Color: o.Color})
	}
	return res
}

func fromValue(p *css.Parser, ctx, property, value string) []Finding {
	var res []Finding
	for _, o := range p.ParseValue(property, value) {
		res = append(res, Finding{Context: ctx, Raw: o.Raw, Color: o.Color})
	}
	return res
}

func (e *Extractor) scanCSS(data []byte, src string) ([]Finding, []string) {
	sheet := e.css.Parse(data, src)
	return fromSheet(sheet, ""), sheet.Warnings
}

// scanHTML looks at <style> elements, style attributes, presentational
// attributes and theme color meta tags.
func (e *Extractor) scanHTML(data []byte, src string) ([]Finding, []string, error) {
	enc, name, certain := charset.DetermineEncoding(data, "text/html")
	if !certain && e.markup != nil {
		enc = e.markup
		if n, err := ianaindex.IANA.Name(enc); err == nil {
			name = n
		}
	}
	e.log.Debug("Decoding markup", zap.String("source", src), zap.String("charset", name), zap.Bool("declared", certain))

	var (
		res     []Finding
		warns   []string
		inStyle bool
	)

	z := html.NewTokenizer(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return res, warns, err
			}
			return res, warns, nil

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			inStyle = tag == "style"

			var metaName, metaContent string
			for hasAttr {
				var k, v []byte
				k, v, hasAttr = z.TagAttr()
				key, val := string(k), string(v)
				switch {
				case key == "style":
					sheet := e.css.ParseInline(v)
					res = append(res, fromSheet(sheet, tag+"[style]")...)
					warns = append(warns, sheet.Warnings...)
				case legacyAttrs[key] != "":
					res = append(res, fromValue(e.css, tag+"["+key+"]", legacyAttrs[key], val)...)
				case tag == "meta" && key == "name":
					metaName = strings.ToLower(val)
				case tag == "meta" && key == "content":
					metaContent = val
				}
			}
			if metaColors[metaName] {
				res = append(res, fromValue(e.css, "meta["+metaName+"]", "color", metaContent)...)
			}

		case html.TextToken:
			if inStyle {
				sheet := e.css.Parse(z.Text())
				res = append(res, fromSheet(sheet, "style")...)
				warns = append(warns, sheet.Warnings...)
			}

		case html.EndTagToken:
			inStyle = false
		}
	}
}

// scanSVG looks at <style> elements, style and presentation attributes.
func (e *Extractor) scanSVG(data []byte) ([]Finding, []string, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	doc.ReadSettings.Permissive = true
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, nil, fmt.Errorf("unable to parse svg: %w", err)
	}

	var (
		res   []Finding
		warns []string
	)
	for _, el := range doc.FindElements("//*") {
		path := el.GetPath()
		if el.Tag == "style" {
			sheet := e.css.Parse([]byte(el.Text()))
			res = append(res, fromSheet(sheet, path)...)
			warns = append(warns, sheet.Warnings...)
		}
		for _, a := range el.Attr {
			switch {
			case a.Space == "" && a.Key == "style":
				sheet := e.css.ParseInline([]byte(a.Value))
				res = append(res, fromSheet(sheet, path+"[style]")...)
				warns = append(warns, sheet.Warnings...)
			case a.Space == "" && svgPresentationAttrs[a.Key]:
				res = append(res, fromValue(e.css, path+"["+a.Key+"]", a.Key, a.Value)...)
			}
		}
	}
	return res, warns, nil
}

// maxImagePixels limits decoded size of raster images, small compressed file
// could expand to a huge bitmap.
var maxImagePixels = 50_000_000

// scanImage reports average color of raster image.
func (e *Extractor) scanImage(data []byte) ([]Finding, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, errors.New("image is empty")
	}
	if cfg.Width > maxImagePixels/cfg.Height {
		return nil, fmt.Errorf("%s image is too large to process: %dx%d", format, cfg.Width, cfg.Height)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("unable to decode image: %w", err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, errors.New("image is empty")
	}

	avg := colors.FromColor(imaging.Resize(img, 1, 1, imaging.Box).NRGBAAt(0, 0))
	return []Finding{{
		Context: fmt.Sprintf("average of %dx%d", b.Dx(), b.Dy()),
		Raw:     avg.Format(colors.NotationRgba),
		Color:   avg,
	}}, nil
}
