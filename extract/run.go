package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"colorkit/archive"
	"colorkit/colors"
	"colorkit/common"
	"colorkit/config"
	"colorkit/css"
	"colorkit/state"
)

// maxSourceSize limits amount of data read from a single source.
const maxSourceSize = 64 << 20

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("extract")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many sources", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	cfg := env.Cfg.Extract
	if cmd.IsSet("summary") {
		cfg.SummaryOnly = cmd.Bool("summary")
	}
	if cmd.IsSet("min-count") {
		if cfg.MinCount = cmd.Int("min-count"); cfg.MinCount < 1 {
			cfg.MinCount = 1
		}
	}
	if cmd.Bool("no-names") {
		cfg.NamedColors = false
	}
	if cmd.Bool("no-images") {
		cfg.Images = false
	}

	p := Printer{SummaryOnly: cfg.SummaryOnly, MinCount: cfg.MinCount, Notation: env.Cfg.Palette.Notation}
	if cmd.IsSet("to") {
		if p.Notation, err = colors.ParseNotation(cmd.String("to")); err != nil {
			return fmt.Errorf("unknown notation: %w", err)
		}
	}

	// Since zip "standard" does not define file name encoding and markup
	// may not declare its charset we may need to force archaic code page
	var names encoding.Encoding
	if cp := cmd.String("codepage"); len(cp) > 0 {
		enc, err := ianaindex.IANA.Encoding(cp)
		if err != nil || enc == nil {
			log.Warn("Unknown character set specification. Ignoring...", zap.String("charset", cp), zap.Error(err))
		} else {
			env.CodePage, names = enc, enc
			n, _ := ianaindex.IANA.Name(enc)
			log.Debug("Using code page for non UTF-8 names and undeclared markup", zap.String("charset", n))
		}
	}

	log.Debug("Extraction starting", zap.String("source", src), zap.Bool("summary", cfg.SummaryOnly))
	defer func(start time.Time) {
		log.Debug("Extraction completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	res, err := New(&cfg, env.CodePage, names, log).Process(ctx, src)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		log.Debug("Extraction warning", zap.String("warning", w))
	}
	if len(res.Warnings) > 0 {
		log.Warn("Some color values were not understood", zap.Int("count", len(res.Warnings)))
	}

	if env.Rpt != nil {
		var buf bytes.Buffer
		if err := p.Write(&buf, res); err == nil {
			env.Rpt.StoreData("extract.txt", buf.Bytes())
		}
	}
	p.Preview = env.Preview
	return p.Write(env.Out, res)
}

// Extractor finds colors in style sheets, markup and images located in
// files, directories and zip archives.
type Extractor struct {
	cfg    *config.ExtractConfig
	css    *css.Parser
	markup encoding.Encoding // for markup without declared charset
	names  encoding.Encoding // for non UTF-8 names in archives, may be nil
	log    *zap.Logger
}

func New(cfg *config.ExtractConfig, markup, names encoding.Encoding, log *zap.Logger) *Extractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Extractor{
		cfg:    cfg,
		css:    css.NewParser(log, cfg.NamedColors),
		markup: markup,
		names:  names,
		log:    log,
	}
}

// Process determines the input type (directory, archive, path inside
// archive or single file) and scans it accordingly.
func (e *Extractor) Process(ctx context.Context, src string) (*Result, error) {
	res := &Result{}

	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exists - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := e.processDir(ctx, head, res); err != nil {
				return nil, fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return nil, fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		arc, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return nil, fmt.Errorf("unable to check archive type: %w", err)
		}
		if arc {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := e.processArchive(ctx, head, filepath.ToSlash(tail), res); err != nil {
				return nil, fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if len(tail) != 0 {
			return nil, fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}
		data, err := readFile(head)
		if err != nil {
			return nil, err
		}
		if !e.scan(data, head, res) {
			return nil, fmt.Errorf("input was not recognized as style sheet, markup or image (%s)", head)
		}
		break
	}
	if len(head) == 0 {
		return nil, fmt.Errorf("input source was not found (%s)", src)
	}
	return res, nil
}

// processDir walks directory tree scanning all recognized files and
// archives.
func (e *Extractor) processDir(ctx context.Context, dir string, res *Result) (err error) {
	count := res.Sources
	defer func() {
		if err == nil && count == res.Sources {
			e.log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			e.log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		arc, err := isArchiveFile(path)
		if err != nil {
			e.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if arc {
			if err := e.processArchive(ctx, path, "", res); err != nil {
				e.log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		data, err := readFile(path)
		if err != nil {
			e.log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		e.scan(data, path, res)
		return nil
	})
}

// processArchive scans all recognized files inside archive under "pathIn".
func (e *Extractor) processArchive(ctx context.Context, path, pathIn string, res *Result) (err error) {
	count := res.Sources
	defer func() {
		if err == nil && count == res.Sources {
			e.log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	return archive.Walk(path, pathIn, e.names, func(arc string, entry archive.Entry) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		data, err := entry.ReadAll(maxSourceSize)
		if err != nil {
			e.log.Warn("Skipping file in archive", zap.String("archive", arc), zap.String("path", entry.Name), zap.Error(err))
			return nil
		}
		e.scan(data, filepath.Join(arc, filepath.FromSlash(entry.Name)), res)
		return nil
	})
}

// scan detects kind of the source and collects its colors. It returns false
// if source was not recognized.
func (e *Extractor) scan(data []byte, src string, res *Result) bool {
	kind, ok := detectKind(src, data)
	if !ok {
		e.log.Debug("Skipping file, not recognized", zap.String("file", src))
		return false
	}
	if kind == common.SourceKindImage && !e.cfg.Images {
		e.log.Debug("Skipping image", zap.String("file", src))
		return true
	}

	var (
		found []Finding
		warns []string
		err   error
	)
	switch kind {
	case common.SourceKindCss:
		found, warns = e.scanCSS(data, src)
	case common.SourceKindHtml:
		found, warns, err = e.scanHTML(data, src)
	case common.SourceKindSvg:
		found, warns, err = e.scanSVG(data)
	case common.SourceKindImage:
		found, err = e.scanImage(data)
	}
	if err != nil {
		e.log.Warn("Unable to scan file", zap.String("file", src), zap.Stringer("kind", kind), zap.Error(err))
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s: %v", src, err))
	}

	res.Sources++
	for i := range found {
		found[i].Source, found[i].Kind = src, kind
	}
	res.Findings = append(res.Findings, found...)
	for _, w := range warns {
		res.Warnings = append(res.Warnings, src+": "+w)
	}
	e.log.Debug("Scanned", zap.String("file", src), zap.Stringer("kind", kind), zap.Int("colors", len(found)))
	return true
}

func readFile(path string) ([]byte, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.Size() > maxSourceSize {
		return nil, fmt.Errorf("file is too large (%d bytes)", fi.Size())
	}
	return os.ReadFile(path)
}
