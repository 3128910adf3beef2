package app

import (
	"io"

	"marsdome/internal/config"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Settings *config.Config // loaded settings; defaults apply when nil
	In       io.Reader      // shell input, e.g. os.Stdin
	Out      io.Writer      // results, e.g. os.Stdout
	Err      io.Writer      // logs, e.g. os.Stderr
}
