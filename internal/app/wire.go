package app

import (
	"io"
	"os"

	"marsdome/internal/config"
	"marsdome/internal/platform/logger"
	domesvc "marsdome/internal/services/dome"
)

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	settings := config.Default()
	if cfg.Settings != nil {
		settings = *cfg.Settings
	}
	if err := config.Validate(&settings); err != nil {
		return nil, err
	}

	// Missing streams fall back to the process's own.
	var in io.Reader = os.Stdin
	if cfg.In != nil {
		in = cfg.In
	}
	var out io.Writer = os.Stdout
	if cfg.Out != nil {
		out = cfg.Out
	}
	var errw io.Writer = os.Stderr
	if cfg.Err != nil {
		errw = cfg.Err
	}

	log := logger.Setup(errw, settings.Log)
	return New(domesvc.New(log), log, settings, in, out), nil
}
