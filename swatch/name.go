package swatch

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"
	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"colorkit/colors"
	"colorkit/common"
	"colorkit/config"
)

// Values is a struct that holds variables we make available for file name
// template expansion.
type Values struct {
	Input     string
	Hex       string
	Format    string
	Timestamp int64 // unix milliseconds
	UUID      string
}

func expandTemplate(name config.TemplateFieldName, field string, values Values) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildFileName returns output file name (no directory) for the swatch. User
// template is used when configured, otherwise "swatch_<input>_<millis>".
func buildFileName(cfg *config.SwatchConfig, input string, c colors.Color, format common.SwatchFormat, now time.Time) (string, error) {
	values := Values{
		Input:     strings.TrimSpace(input),
		Hex:       strings.TrimPrefix(c.Hex(), "#"),
		Format:    format.String(),
		Timestamp: now.UnixMilli(),
	}
	if strings.Contains(cfg.FileNameTemplate, ".UUID") {
		id, err := uuid.NewV7()
		if err != nil {
			return "", fmt.Errorf("unable to generate uuid: %w", err)
		}
		values.UUID = id.String()
	}

	var name string
	if cfg.FileNameTemplate != "" {
		expanded, err := expandTemplate(config.SwatchFileNameFieldName, cfg.FileNameTemplate, values)
		if err != nil {
			return "", err
		}
		name = strings.TrimSpace(expanded)
		if cfg.Transliterate {
			name = slug.Make(name)
		}
	} else {
		s := slug.Make(values.Input)
		if s == "" {
			s = values.Hex
		}
		name = fmt.Sprintf("swatch_%s_%d", s, values.Timestamp)
	}
	return config.CleanFileName(name) + format.Ext(), nil
}
