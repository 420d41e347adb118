package app

import (
	"io"
	"log/slog"
)

// App runs one search described by a Config.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// New returns an App that prints matches to outW and logs to logW. cfg is
// expected to come from NewConfig.
func New(outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Config returns the configuration the App was built with. This is primarily
// for testing.
func (a *App) Config() *Config {
	return a.config
}
