// Package logging constructs the process-wide slog logger.
package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/andrewnakas/Yellowstone-Club-Weather-Stations/internal/config"
)

// New returns a colorized console logger in development and a JSON logger
// in production.
func New(cfg *config.Config) *slog.Logger {
	if cfg.IsProduction() {
		h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
		return slog.New(h).With("app", "ycweather", "env", cfg.Environment)
	}

	h := tint.NewHandler(os.Stdout, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h).With("app", "ycweather")
}
