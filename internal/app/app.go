package app

import (
	"io"
	"log/slog"

	"marsdome/internal/config"
	"marsdome/internal/domain"
	"marsdome/internal/shell"
)

// App bundles the services and streams commands need.
type App struct {
	Dome     domain.DomeService
	Log      *slog.Logger
	Settings config.Config
	In       io.Reader
	Out      io.Writer
}

// New returns an App from already built parts.
func New(dome domain.DomeService, log *slog.Logger, settings config.Config, in io.Reader, out io.Writer) *App {
	return &App{
		Dome:     dome,
		Log:      log,
		Settings: settings,
		In:       in,
		Out:      out,
	}
}

// Shell returns an interactive shell over the app's streams.
func (a *App) Shell() *shell.Shell {
	return shell.New(a.Dome, a.In, a.Out,
		shell.WithExitWord(a.Settings.Shell.ExitWord),
		shell.WithLogger(a.Log))
}
