package state

import (
	"os"
	"time"

	"golang.org/x/text/encoding/charmap"
)

// newLocalEnv creates a new LocalEnv instance with default values.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		Out:   os.Stdout,
		// what browsers assume for markup without charset
		CodePage: charmap.Windows1252,
	}
}
