package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/curtain/internal/bridge"
	"github.com/five82/curtain/internal/ui"
)

const (
	defaultLoadTime = 3 * time.Second
	loadTicks       = 20
)

var loadSteps = []string{
	"reading config",
	"opening database",
	"warming caches",
	"rendering first screen",
}

// loadedReporter is the part of the bridge the loader needs.
type loadedReporter interface {
	AppLoaded()
}

// StartLoader launches a background goroutine that simulates application
// start-up: it reports progress to the UI at a fixed cadence and calls
// AppLoaded when done. It returns immediately.
func StartLoader(ctx context.Context, sender bridge.Sender, reporter loadedReporter, total time.Duration, logger *slog.Logger) {
	if total <= 0 {
		total = defaultLoadTime
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	interval := total / loadTicks
	if interval <= 0 {
		interval = time.Millisecond
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		start := time.Now()
		for tick := 1; tick <= loadTicks; tick++ {
			select {
			case <-ctx.Done():
				logger.Debug("loader cancelled", "tick", tick)
				return
			case <-ticker.C:
			}
			sender.Send(progressAt(tick, loadTicks))
		}
		logger.Info("application loaded", "elapsed", time.Since(start))
		reporter.AppLoaded()
	}()
}

func progressAt(tick, ticks int) ui.LoadProgressMsg {
	if ticks <= 0 {
		return ui.LoadProgressMsg{Percent: 1, Step: loadSteps[len(loadSteps)-1]}
	}
	idx := tick * len(loadSteps) / ticks
	if idx >= len(loadSteps) {
		idx = len(loadSteps) - 1
	}
	return ui.LoadProgressMsg{
		Percent: float64(tick) / float64(ticks),
		Step:    loadSteps[idx],
	}
}
