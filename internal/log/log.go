package log

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/tuanvumaihuynh/hvac-catalog/internal/config"
)

// NewSlogLogger creates a new slog logger writing to stdout and installs it as
// the slog default.
func NewSlogLogger(cfg config.Log) *slog.Logger {
	log := New(os.Stdout, cfg)
	slog.SetDefault(log)

	return log
}

// New builds a logger for the given configuration writing to w.
func New(w io.Writer, cfg config.Log) *slog.Logger {
	var handler slog.Handler

	if cfg.Format == config.LogFormatJSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     cfg.Level,
			AddSource: cfg.AddSource,
		})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      cfg.Level,
			AddSource:  cfg.AddSource,
			NoColor:    cfg.NoColor,
			TimeFormat: time.RFC3339,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Value.Kind() == slog.KindAny {
					if _, ok := a.Value.Any().(error); ok {
						return tint.Attr(9, a)
					}
				}
				return a
			},
		})
	}

	return slog.New(newEnrichedHandler(handler))
}

// Discard returns a logger that drops every record. Used by tests.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
