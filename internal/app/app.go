package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/specialistvlad/swimgen/internal/config"
	"github.com/specialistvlad/swimgen/internal/hcl"
	"github.com/specialistvlad/swimgen/internal/yamlcfg"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	now    func() time.Time
}

// Option customizes an App.
type Option func(*App)

// WithClock replaces the wall clock handed to the builder for dynamic series.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}

// NewApp is the constructor for the main application. It returns an App
// with its own isolated logger writing to outW.
func NewApp(outW io.Writer, cfg *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// DefaultLoader returns a loader that understands every supported
// definition format.
func DefaultLoader() *config.MultiLoader {
	loaders := map[string]config.Loader{
		hcl.Extension: hcl.NewLoader(),
	}
	yl := yamlcfg.NewLoader()
	for _, ext := range yamlcfg.Extensions {
		loaders[ext] = yl
	}
	return config.NewMultiLoader(loaders)
}

// Config returns the application's configuration. This is primarily for testing.
func (a *App) Config() *Config {
	return a.config
}
