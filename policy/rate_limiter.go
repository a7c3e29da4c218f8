package policy

import (
	"chat-gate/errors"
	"slices"
	"sync"
	"time"
)

const (
	DefaultRateLimit  = 5
	DefaultRateWindow = time.Minute
)

// RateLimiter is a sliding-window limiter keyed by client key.
//
// State is process-local: several instances behind a load balancer each keep
// their own ledgers, so the effective limit multiplies with the instance count.
type RateLimiter struct {
	limit  int
	window time.Duration

	mu      sync.RWMutex
	ledgers map[string]*ledger
}

// ledger holds the admitted timestamps of one client key, oldest first.
type ledger struct {
	mu    sync.Mutex
	stamp []time.Time
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		ledgers: make(map[string]*ledger),
	}
}

// Admit records now for the key unless the key already used its quota
// within the trailing window. Rejected attempts are not recorded.
//
// The map read lock is held for the whole admission so Sweep can never
// evict a ledger that an admission is writing to.
func (r *RateLimiter) Admit(clientKey string, now time.Time) error {
	r.mu.RLock()
	if l, ok := r.ledgers[clientKey]; ok {
		defer r.mu.RUnlock()
		return l.admit(clientKey, now, r.limit, r.window)
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.ledgers[clientKey]
	if !ok {
		l = &ledger{}
		r.ledgers[clientKey] = l
	}
	return l.admit(clientKey, now, r.limit, r.window)
}

// Sweep drops ledgers with no timestamp left in the window and returns how
// many were evicted.
func (r *RateLimiter) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	evicted := 0
	for key, l := range r.ledgers {
		l.mu.Lock()
		l.prune(now, r.window)
		empty := len(l.stamp) == 0
		l.mu.Unlock()
		if empty {
			delete(r.ledgers, key)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of live ledgers.
func (r *RateLimiter) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ledgers)
}

func (l *ledger) admit(clientKey string, now time.Time, limit int, window time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.prune(now, window)
	if len(l.stamp) >= limit {
		return errors.RateLimited(clientKey)
	}
	// Concurrent requests may carry slightly out of order clocks
	i, _ := slices.BinarySearchFunc(l.stamp, now, func(a, b time.Time) int { return a.Compare(b) })
	l.stamp = slices.Insert(l.stamp, i, now)
	return nil
}

// prune keeps timestamps strictly younger than the window.
func (l *ledger) prune(now time.Time, window time.Duration) {
	i := 0
	for i < len(l.stamp) && now.Sub(l.stamp[i]) >= window {
		i++
	}
	if i > 0 {
		l.stamp = append(l.stamp[:0], l.stamp[i:]...)
	}
}
