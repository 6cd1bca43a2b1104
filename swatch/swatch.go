package swatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/disintegration/imaging"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"colorkit/colors"
	"colorkit/common"
	"colorkit/config"
	"colorkit/state"
)

// Render returns swatch encoded in requested format together with SVG
// source it was produced from.
func Render(title string, c colors.Color, factors []float64, cfg *config.SwatchConfig) (data, svg []byte, err error) {
	vars := colors.Variations(c, factors...)

	svg, err = Document(vars, cfg.Width, cfg.Height, cfg.Labels, title).WriteToBytes()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to serialize svg: %w", err)
	}
	if !cfg.Format.Raster() {
		return svg, svg, nil
	}

	img, err := Image(vars, cfg.Width, cfg.Height, cfg.Scale, cfg.Labels)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to render image: %w", err)
	}

	switch cfg.Format {
	case common.SwatchFormatJpeg:
		data, err = encodeJPEG(img, cfg.JPEGQuality, cfg.DPI)
	default:
		buf := new(bytes.Buffer)
		err = imaging.Encode(buf, img, imaging.PNG)
		data = buf.Bytes()
	}
	if err != nil {
		return nil, nil, fmt.Errorf("unable to encode %s: %w", cfg.Format, err)
	}
	return data, svg, nil
}

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("swatch")

	input := cmd.Args().Get(0)
	if len(input) == 0 {
		return errors.New("no color has been specified")
	}
	c, ok := colors.Parse(input)
	if !ok {
		return fmt.Errorf("unable to understand color %q", input)
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = "."
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return fmt.Errorf("unable to clean destination path: %w", err)
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	cfg := env.Cfg.Swatch
	if cmd.IsSet("to") {
		if cfg.Format, err = common.ParseSwatchFormat(cmd.String("to")); err != nil {
			return fmt.Errorf("unknown output format: %w", err)
		}
	}
	if cmd.IsSet("scale") {
		cfg.Scale = max(1, min(cmd.Int("scale"), 8))
	}
	if cmd.Bool("no-labels") {
		cfg.Labels = false
	}
	env.Overwrite = cmd.Bool("overwrite")

	log.Debug("Swatch rendering starting", zap.Stringer("color", c), zap.Stringer("format", cfg.Format), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Debug("Swatch rendering completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create destination directory: %w", err)
	}
	name, err := buildFileName(&cfg, input, c, cfg.Format, time.Now())
	if err != nil {
		return fmt.Errorf("unable to prepare output file name: %w", err)
	}
	path := filepath.Join(dst, name)
	if _, err := os.Stat(path); err == nil && !env.Overwrite {
		return fmt.Errorf("output file already exists: %s", path)
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	data, svg, err := Render(input, c, env.Cfg.Palette.Factors, &cfg)
	if err != nil {
		return err
	}
	env.Rpt.StoreData("swatch.svg", svg)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("unable to write swatch: %w", err)
	}
	log.Debug("Swatch saved", zap.String("file", path), zap.Int("bytes", len(data)))
	fmt.Fprintln(env.Out, path)
	return nil
}
