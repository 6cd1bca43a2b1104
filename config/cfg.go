package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v3"

	"github.com/rupor-github/gencfg"

	"colorkit/colors"
	"colorkit/common"
)

//go:embed config.yaml.tmpl
var ConfigTmpl []byte

type (
	TemplateFieldName string

	PaletteConfig struct {
		Factors       []float64       `yaml:"factors" validate:"min=1,max=9,dive,gt=0,lt=1"`
		Notation      colors.Notation `yaml:"notation" validate:"gte=0"`
		GradientAngle int             `yaml:"gradient_angle" validate:"gte=-360,lte=360"`
		Template      string          `yaml:"template"`
	}

	SwatchConfig struct {
		Format           common.SwatchFormat `yaml:"format" validate:"gte=0"`
		Width            int                 `yaml:"cell_width" validate:"min=16,max=1024"`
		Height           int                 `yaml:"cell_height" validate:"min=16,max=1024"`
		Scale            int                 `yaml:"scale" validate:"min=1,max=8"`
		Labels           bool                `yaml:"labels"`
		JPEGQuality      int                 `yaml:"jpeq_quality_level" validate:"min=40,max=100"`
		DPI              int                 `yaml:"dpi" validate:"min=0,max=2400"`
		FileNameTemplate string              `yaml:"file_name_template"`
		Transliterate    bool                `yaml:"file_name_transliterate"`
	}

	ExtractConfig struct {
		SummaryOnly bool `yaml:"summary_only"`
		MinCount    int  `yaml:"min_count" validate:"min=1"`
		NamedColors bool `yaml:"named_colors"`
		Images      bool `yaml:"images"`
	}

	Config struct {
		Version   int            `yaml:"version" validate:"eq=1"`
		Palette   PaletteConfig  `yaml:"palette"`
		Swatch    SwatchConfig   `yaml:"swatch"`
		Extract   ExtractConfig  `yaml:"extract"`
		Logging   LoggingConfig  `yaml:"logging"`
		Reporting ReporterConfig `yaml:"reporting"`
	}
)

const (
	// NOTE: must match yaml field names above
	PaletteTemplateFieldName TemplateFieldName = "template"
	SwatchFileNameFieldName  TemplateFieldName = "file_name_template"
)

var requiredOptions = append([]func(*gencfg.ProcessingOptions){},
	gencfg.WithDoNotExpandField(string(PaletteTemplateFieldName)),
	gencfg.WithDoNotExpandField(string(SwatchFileNameFieldName)),
)

func unmarshalConfig(data []byte, cfg *Config, process bool) (*Config, error) {
	// Only fields we defined are allowed, so no yaml.Unmarshal here
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration data: %w", err)
	}
	if process {
		if err := gencfg.Sanitize(cfg); err != nil {
			return nil, err
		}
		if err := gencfg.Validate(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// LoadConfiguration reads the configuration from the file at the given path,
// superimposes its values on top of expanded configuration template to
// provide sane defaults and performs validation.
func LoadConfiguration(path string, options ...func(*gencfg.ProcessingOptions)) (*Config, error) {
	haveFile := len(path) > 0

	data, err := gencfg.Process(ConfigTmpl, append(requiredOptions, options...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	cfg, err := unmarshalConfig(data, &Config{}, !haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration template: %w", err)
	}
	if !haveFile {
		return cfg, nil
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err = unmarshalConfig(data, cfg, haveFile)
	if err != nil {
		return nil, fmt.Errorf("failed to process configuration file: %w", err)
	}
	return cfg, nil
}

// Prepare generates configuration file from template and returns it as a byte
// slice.
func Prepare() ([]byte, error) {
	return gencfg.Process(ConfigTmpl, requiredOptions...)
}

func Dump(cfg *Config) ([]byte, error) {
	data, err := yaml.Marshal(*cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config to yaml: %v", err)
	}
	return data, nil
}
