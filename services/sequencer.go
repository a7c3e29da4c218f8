package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// conversationClock orders the messages of one conversation.
// It is seeded lazily from the newest stored message so ordering survives
// restarts and eviction.
type conversationClock struct {
	mu     sync.Mutex
	seeded bool
	last   time.Time
	seq    uint64

	// Guarded by sequencer.mu.
	holders  int
	lastUsed time.Time
}

// next returns the ordering key for a message posted at now.
// SentAt never goes backwards even if the wall clock does.
func (c *conversationClock) next(now time.Time) (time.Time, uint64) {
	if now.Before(c.last) {
		now = c.last
	}
	return now, c.seq + 1
}

func (c *conversationClock) commit(sentAt time.Time, seq uint64) {
	c.last, c.seq = sentAt, seq
}

// sequencer hands out one clock per conversation.
type sequencer struct {
	mu     sync.Mutex
	clocks map[uuid.UUID]*conversationClock
}

func newSequencer() *sequencer {
	return &sequencer{clocks: make(map[uuid.UUID]*conversationClock)}
}

// acquire locks the clock of the conversation, the caller must release it.
func (s *sequencer) acquire(conversationID uuid.UUID) *conversationClock {
	s.mu.Lock()
	clock, ok := s.clocks[conversationID]
	if !ok {
		clock = &conversationClock{}
		s.clocks[conversationID] = clock
	}
	clock.holders++
	s.mu.Unlock()

	clock.mu.Lock()
	return clock
}

// release unlocks a clock returned by acquire.
func (s *sequencer) release(clock *conversationClock, now time.Time) {
	clock.mu.Unlock()

	s.mu.Lock()
	clock.holders--
	clock.lastUsed = now
	s.mu.Unlock()
}

// sweep forgets the clocks nobody holds or waits for and that were last
// used at least idle ago. It returns how many were dropped.
func (s *sequencer) sweep(now time.Time, idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, clock := range s.clocks {
		if clock.holders == 0 && now.Sub(clock.lastUsed) >= idle {
			delete(s.clocks, id)
			evicted++
		}
	}
	return evicted
}

func (s *sequencer) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clocks)
}
