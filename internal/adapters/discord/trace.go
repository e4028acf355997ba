package discord

import (
	"log/slog"
	"time"
)

func step(l *slog.Logger, label string) func() {
	start := time.Now()
	return func() { l.Debug("trace", "step", label, "dur", time.Since(start)) }
}
