package config

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"maps"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"colorkit/misc"
)

type ReporterConfig struct {
	Destination string `yaml:"destination" sanitize:"path_clean,assure_dir_exists_for_file" validate:"required,filepath"`
}

// Prepare creates initialized empty report. If destination cannot be created
// report goes to temporary directory.
func (conf *ReporterConfig) Prepare() (*Report, error) {
	r := &Report{items: make(map[string]item), created: time.Now()}

	f, err := os.Create(conf.Destination)
	if err != nil {
		if f, err = os.CreateTemp("", misc.GetAppName()+"-report.*.zip"); err != nil {
			return nil, fmt.Errorf("unable to create report: %w", err)
		}
	}
	r.file = f
	return r, nil
}

// item is either a file to be picked up on Close or data captured in memory.
type item struct {
	src   string // as requested
	abs   string
	added time.Time
	data  []byte
}

func (it item) inMemory() bool {
	return it.src == ""
}

// Report collects log files, effective configuration and command artifacts
// (swatch SVG, extraction listing) into a single zip archive for bug
// reports. Methods could be called on nil *Report when no report was
// requested. Not safe for concurrent use.
type Report struct {
	items   map[string]item
	file    *os.File
	created time.Time
}

// Close writes the archive.
func (r *Report) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	defer r.file.Close()
	return r.write()
}

// Name returns absolute name of underlying file.
func (r *Report) Name() string {
	if r == nil || r.file == nil {
		return ""
	}
	if n, err := filepath.Abs(r.file.Name()); err == nil {
		return n
	}
	return r.file.Name()
}

// Store registers file to be archived under name. File is read on Close so
// logs are complete. Registering different file under the same name is a
// programming error.
func (r *Report) Store(name, src string) {
	if r == nil {
		return
	}
	if old, exists := r.items[name]; exists && old.src != src {
		panic(fmt.Sprintf("report entry %q already refers to %s, cannot store %s", name, old.src, src))
	}

	it := item{src: src, abs: src, added: time.Now()}
	if p, err := filepath.Abs(src); err == nil {
		it.abs = p
	}
	r.items[name] = it
}

// StoreData keeps a copy of data to be archived under name. When name is
// taken a counter is added before extension: swatch.svg, swatch-2.svg, ...
func (r *Report) StoreData(name string, data []byte) {
	if r == nil {
		return
	}
	unique := name
	ext := path.Ext(name)
	for i := 2; ; i++ {
		if _, exists := r.items[unique]; !exists {
			break
		}
		unique = fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), i, ext)
	}
	r.items[unique] = item{data: slices.Clone(data), added: time.Now()}
}

func (r *Report) write() error {
	arc := zip.NewWriter(r.file)
	defer arc.Close()

	names := slices.Sorted(maps.Keys(r.items))

	var manifest bytes.Buffer
	fmt.Fprintf(&manifest, "%s %s (%s), report created %s\n\n",
		misc.GetAppName(), misc.GetVersion(), misc.GetGitHash(), r.created.UTC().Format(time.RFC3339))

	for _, name := range names {
		it := r.items[name]
		if it.inMemory() {
			fmt.Fprintf(&manifest, "%s\t%d bytes\tcaptured %s\n", name, len(it.data), it.added.UTC().Format(time.RFC3339))
			if err := addToArchive(arc, name, it.added, bytes.NewReader(it.data)); err != nil {
				return err
			}
			continue
		}

		// log file may never have been created
		info, err := os.Stat(it.abs)
		if err != nil || !info.Mode().IsRegular() {
			fmt.Fprintf(&manifest, "%s\tmissing\t%s\n", name, it.abs)
			continue
		}
		fmt.Fprintf(&manifest, "%s\t%d bytes\t%s\n", name, info.Size(), it.abs)
		f, err := os.Open(it.abs)
		if err != nil {
			return err
		}
		err = addToArchive(arc, name, info.ModTime(), f)
		f.Close()
		if err != nil {
			return err
		}
	}
	return addToArchive(arc, "MANIFEST", time.Now(), &manifest)
}

func addToArchive(arc *zip.Writer, name string, t time.Time, src io.Reader) error {
	w, err := arc.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: t})
	if err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	if _, err = io.Copy(w, src); err != nil {
		return fmt.Errorf("unable to add %s to report: %w", name, err)
	}
	return nil
}
