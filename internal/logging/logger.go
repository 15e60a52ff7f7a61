package logging

import (
	"io"
	"log/slog"
	"os"
)

// New creates the application logger on Stderr, so that reports and diagrams
// written to Stdout stay machine-readable.
func New(level slog.Level) *slog.Logger {
	return NewWriter(os.Stderr, level)
}

// NewWriter creates a text logger on w.
// It standardizes common keys (e.g., "error" -> "err") and trims float noise from
// angle and coordinate attributes.
func NewWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			if a.Value.Kind() == slog.KindFloat64 {
				a.Value = slog.Float64Value(round6(a.Value.Float64()))
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ForDebug returns a debug logger when enabled and a no-op logger otherwise.
func ForDebug(debug bool) *slog.Logger {
	if debug {
		return New(slog.LevelDebug)
	}
	return NewNop()
}

func round6(v float64) float64 {
	const scale = 1e6
	if v > 1e12 || v < -1e12 {
		return v
	}
	r := v * scale
	if r < 0 {
		return float64(int64(r-0.5)) / scale
	}
	return float64(int64(r+0.5)) / scale
}
