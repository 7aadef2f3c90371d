package app

import (
	"io"
	"os"

	"github.com/firefly-engineering/sshconf/internal/audit"
	"github.com/firefly-engineering/sshconf/internal/config"
)

// App holds the application dependencies
type App struct {
	// Stdout receives formatted config text
	Stdout io.Writer

	// Files reads and writes config files
	Files Files

	// History records written edits. Nil disables it.
	History *audit.Logger
}

// Option is a function that configures the App
type Option func(*App)

// WithStdout sets the writer for formatted output
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		a.Stdout = w
	}
}

// WithFiles sets a custom file backend
func WithFiles(f Files) Option {
	return func(a *App) {
		a.Files = f
	}
}

// WithHistory sets the edit history logger
func WithHistory(h *audit.Logger) Option {
	return func(a *App) {
		a.History = h
	}
}

// New creates a new App with the given options.
func New(opts ...Option) *App {
	app := &App{
		Stdout: os.Stdout,
		Files:  OSFiles{},
	}
	if dir, err := config.StateDir(); err == nil {
		app.History = audit.NewLogger(dir)
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
