package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"colorkit/colors"
	"colorkit/common"
	"colorkit/config"
	"colorkit/extract"
	"colorkit/inspect"
	"colorkit/misc"
	"colorkit/state"
	"colorkit/swatch"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		// save complete processed configuration if external configuration was provided
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Preview = !cmd.Bool("no-preview") && config.EnableColorOutput(os.Stdout)

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()

	// log is synced now and result can be used in report if necessary, errors
	// must be reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// reporting is closed now - remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Commands return regular errors, cli.Exit() is not used.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Warn("Unknown command, nothing to do", zap.String("command", name))
	}
}

func notationFlag() cli.Flag {
	return &cli.StringFlag{Name: "to",
		Usage: "print colors in `NOTATION` (supported: " + strings.Join(colors.NotationNames(), ", ") + ")"}
}

const colorHelp = `
COLOR:
    CSS color: "#rgb", "#rgba", "#rrggbb", "#rrggbbaa" (leading "#" is optional),
    "rgb(r, g, b)", "rgba(r, g, b, a)", "hsl(h, s%, l%)", "hsla(h, s%, l%, a)"
    or one of the color names (see "names" command). Quote arguments so shell
    does not interpret "#" and parentheses.
`

func main() {

	// allow graceful shutdown on interrupt
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "color parsing, variations, swatches and color extraction",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
			&cli.BoolFlag{Name: "no-preview", Aliases: []string{"np"}, Usage: "do not print color samples even when output is a terminal"},
		},
		Commands: []*cli.Command{
			{
				Name:         "parse",
				Usage:        "Parses color(s) and prints them in all or selected notation",
				OnUsageError: usageErrorHandler,
				Action:       inspect.Parse,
				Flags: []cli.Flag{
					notationFlag(),
					&cli.StringFlag{Name: "template", Aliases: []string{"t"},
						Usage: "print colors using `TEMPLATE` (Go text/template with sprig functions)"},
				},
				ArgsUsage: "COLOR [COLOR...]",
				CustomHelpTemplate: fmt.Sprintf(`%s%s
TEMPLATE:
    available fields: .Input, .Hex, .RGB, .RGBA, .HSL, .HSLA, .R, .G, .B, .A,
    .H, .S, .L and .Notations (map by notation name), for example
        --template '{{ .Input }} {{ .HSL | upper }}'

All arguments are processed, program fails at the end if any of them was not
understood.
`, cli.CommandHelpTemplate, colorHelp),
			},
			{
				Name:               "variations",
				Usage:              "Prints tints and shades of the color",
				OnUsageError:       usageErrorHandler,
				Action:             inspect.Variations,
				Flags:              []cli.Flag{notationFlag()},
				ArgsUsage:          "COLOR",
				CustomHelpTemplate: fmt.Sprintf("%s%s", cli.CommandHelpTemplate, colorHelp),
			},
			{
				Name:         "gradient",
				Usage:        "Prints CSS linear gradient between two colors",
				OnUsageError: usageErrorHandler,
				Action:       inspect.Gradient,
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "angle", Aliases: []string{"a"}, Usage: "gradient direction in `DEGREES` (default from configuration)"},
				},
				ArgsUsage:          "START END",
				CustomHelpTemplate: fmt.Sprintf("%s%s", cli.CommandHelpTemplate, colorHelp),
			},
			{
				Name:         "names",
				Usage:        "Lists known color names",
				OnUsageError: usageErrorHandler,
				Action:       inspect.Names,
				Flags: []cli.Flag{
					notationFlag(),
					&cli.StringFlag{Name: "match", Aliases: []string{"m"}, Usage: "list only names containing `TEXT`"},
				},
			},
			{
				Name:         "swatch",
				Usage:        "Renders tints and shades of the color to image file",
				OnUsageError: usageErrorHandler,
				Action:       swatch.Run,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "to",
						Usage: "output `FORMAT` (supported: " + strings.Join(common.SwatchFormatNames(), ", ") + ", default from configuration)"},
					&cli.IntFlag{Name: "scale", Usage: "upscale raster images by `FACTOR` (1-8)"},
					&cli.BoolFlag{Name: "no-labels", Usage: "do not print labels"},
					&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite existing output file"},
				},
				ArgsUsage: "COLOR [DESTINATION]",
				CustomHelpTemplate: fmt.Sprintf(`%s%s
DESTINATION:
    always a directory (created if absent), if absent - current working directory
    output file name is "swatch_<color>_<unix milliseconds>.<ext>" unless
    file name template is set in configuration
`, cli.CommandHelpTemplate, colorHelp),
			},
			{
				Name:         "extract",
				Usage:        "Finds colors used by style sheets, markup and images",
				OnUsageError: usageErrorHandler,
				Action:       extract.Run,
				Flags: []cli.Flag{
					notationFlag(),
					&cli.BoolFlag{Name: "summary", Aliases: []string{"s"}, Usage: "print only per color summary"},
					&cli.IntFlag{Name: "min-count", Usage: "omit colors seen less than `N` times from summary"},
					&cli.BoolFlag{Name: "no-names", Usage: "do not recognize named colors"},
					&cli.BoolFlag{Name: "no-images", Usage: "do not compute average color of raster images"},
					&cli.StringFlag{Name: "codepage",
						Usage: "use `ENCODING` for markup without declared charset and non UTF-8 file names in archives (see IANA.org for character set names)"},
				},
				ArgsUsage: "SOURCE",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to file(s) to process, following formats are supported:
        path to a file: "[path_to_file]file.css"
        path to a directory: "[path_to_directory]directory" - recursively process all files under directory (symbolic links are not followed)
        path to archive with path inside archive to a particular file: "[path_to_archive]archive.zip[path_in_archive]/file.css"
        path to archive with path inside archive: "[path_to_archive]archive.zip[path_in_archive]" - recursively process all files under archive path

    Style sheets (.css), markup (.html, .htm, .xhtml, .svg or content starting
    with html or svg tags) and raster images (by content) are considered,
    processing of archives inside archives is not supported.
`, cli.CommandHelpTemplate),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := env.Out
	if len(fname) > 0 {
		f, err := os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer f.Close()
		out = f
	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Debug("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
