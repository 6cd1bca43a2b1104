//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

// CleanFileName removes characters not allowed in file names and leading dots
// so result is never hidden.
func CleanFileName(in string) string {
	return cleanFileName(in, string(os.PathSeparator)+string(os.PathListSeparator))
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
