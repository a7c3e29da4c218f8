package workers

import (
	"chat-gate/contract"
	"context"
	"log/slog"
	"time"
)

type IClockSweeper interface {
	EvictIdleClocks(now time.Time, idle time.Duration) int
	ActiveClocks() int
}

// ClockJanitor drops the per-conversation ordering state of quiet
// conversations so memory follows recent activity, not history.
type ClockJanitor struct {
	log      *slog.Logger
	sweeper  IClockSweeper
	clock    contract.Clock
	interval time.Duration
	idle     time.Duration
}

func NewClockJanitor(log *slog.Logger, sweeper IClockSweeper, clock contract.Clock, interval, idle time.Duration) *ClockJanitor {
	return &ClockJanitor{log: log, sweeper: sweeper, clock: clock, interval: interval, idle: idle}
}

func (w *ClockJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping clock janitor")
			return nil
		case <-ticker.C:
			if evicted := w.sweeper.EvictIdleClocks(w.clock.Now(), w.idle); evicted > 0 {
				w.log.Debug("Evicted idle conversation clocks", "evicted", evicted, "remaining", w.sweeper.ActiveClocks())
			}
		}
	}
}
