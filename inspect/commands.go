package inspect

import (
	"context"
	"errors"
	"fmt"
	"text/template"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"colorkit/colors"
	"colorkit/state"
)

func printer(ctx context.Context, cmd *cli.Command) (Printer, error) {
	env := state.EnvFromContext(ctx)
	p := Printer{Notation: env.Cfg.Palette.Notation, Preview: env.Preview}
	if cmd.IsSet("to") {
		n, err := colors.ParseNotation(cmd.String("to"))
		if err != nil {
			return p, fmt.Errorf("unknown notation: %w", err)
		}
		p.Notation = n
	}
	return p, nil
}

func parseArg(log *zap.Logger, arg string) (colors.Color, error) {
	c, ok := colors.Parse(arg)
	if !ok {
		log.Debug("Unable to understand color", zap.String("input", arg))
		return c, fmt.Errorf("unable to understand color %q", arg)
	}
	return c, nil
}

// Parse prints every color from the command line. All arguments are
// processed, errors are reported together.
func Parse(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("parse")

	if cmd.Args().Len() == 0 {
		return errors.New("no color has been specified")
	}
	p, err := printer(ctx, cmd)
	if err != nil {
		return err
	}

	// explicit flags win over configuration
	var tmpl *template.Template
	text := env.Cfg.Palette.Template
	switch {
	case cmd.IsSet("template"):
		text = cmd.String("template")
	case cmd.IsSet("to"):
		text = ""
	}
	if text != "" {
		if tmpl, err = prepareTemplate(text); err != nil {
			return err
		}
	}

	for _, arg := range cmd.Args().Slice() {
		if err := ctx.Err(); err != nil {
			return err
		}

		c, perr := parseArg(log, arg)
		if perr != nil {
			err = multierr.Append(err, perr)
			continue
		}

		switch {
		case tmpl != nil:
			s, terr := expandTemplate(tmpl, arg, c)
			if terr != nil {
				err = multierr.Append(err, fmt.Errorf("unable to expand template for %q: %w", arg, terr))
				continue
			}
			err = multierr.Append(err, p.WriteLine(env.Out, s, c))
		case cmd.IsSet("to"):
			err = multierr.Append(err, p.WriteLine(env.Out, c.Format(p.Notation), c))
		default:
			err = multierr.Append(err, p.WriteNotations(env.Out, arg, c))
		}
	}
	return err
}

// Variations prints tints and shades of a color.
func Variations(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("variations")

	arg := cmd.Args().Get(0)
	if len(arg) == 0 {
		return errors.New("no color has been specified")
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many colors", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	p, err := printer(ctx, cmd)
	if err != nil {
		return err
	}
	c, err := parseArg(log, arg)
	if err != nil {
		return err
	}
	return p.WriteVariations(env.Out, colors.Variations(c, env.Cfg.Palette.Factors...))
}

// Gradient prints CSS linear gradient between two colors.
func Gradient(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("gradient")

	if cmd.Args().Len() < 2 {
		return errors.New("start and end colors have to be specified")
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many colors", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}
	p, err := printer(ctx, cmd)
	if err != nil {
		return err
	}

	angle := env.Cfg.Palette.GradientAngle
	if cmd.IsSet("angle") {
		angle = cmd.Int("angle")
	}

	start, serr := parseArg(log, cmd.Args().Get(0))
	end, eerr := parseArg(log, cmd.Args().Get(1))
	if err = multierr.Combine(serr, eerr); err != nil {
		return err
	}
	return p.WriteLine(env.Out, colors.LinearGradient(angle, start, end), start, end)
}

// Names prints known color names.
func Names(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("names")

	p, err := printer(ctx, cmd)
	if err != nil {
		return err
	}
	names := matchNames(colors.Names(), cmd.String("match"))
	log.Debug("Listing color names", zap.String("match", cmd.String("match")), zap.Int("count", len(names)))
	if len(names) == 0 {
		return fmt.Errorf("no color names contain %q", cmd.String("match"))
	}
	return p.WriteNames(env.Out, names)
}
