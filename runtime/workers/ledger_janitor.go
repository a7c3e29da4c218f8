package workers

import (
	"chat-gate/contract"
	"chat-gate/policy"
	"context"
	"log/slog"
	"time"
)

// LedgerJanitor evicts rate-limit ledgers whose window has fully elapsed,
// keeping the limiter map bounded by the number of recently active clients.
type LedgerJanitor struct {
	log      *slog.Logger
	limiter  *policy.RateLimiter
	clock    contract.Clock
	interval time.Duration
}

func NewLedgerJanitor(log *slog.Logger, limiter *policy.RateLimiter, clock contract.Clock, interval time.Duration) *LedgerJanitor {
	return &LedgerJanitor{log: log, limiter: limiter, clock: clock, interval: interval}
}

func (w *LedgerJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping ledger janitor")
			return nil
		case <-ticker.C:
			if evicted := w.limiter.Sweep(w.clock.Now()); evicted > 0 {
				w.log.Debug("Evicted idle rate-limit ledgers", "evicted", evicted, "remaining", w.limiter.Len())
			}
		}
	}
}
