package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSequencer_Sweep_Keeps_Held_Clocks(t *testing.T) {
	req := require.New(t)
	s := newSequencer()
	at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	held, released := uuid.New(), uuid.New()

	clock := s.acquire(released)
	clock.commit(at, 3)
	s.release(clock, at)
	holding := s.acquire(held)

	req.Equal(1, s.sweep(at.Add(time.Hour), time.Minute))
	req.Equal(1, s.len())

	s.release(holding, at.Add(time.Hour))
	req.Zero(s.sweep(at.Add(time.Hour), time.Minute))
	req.Equal(1, s.sweep(at.Add(2*time.Hour), time.Minute))
	req.Zero(s.len())

	// A fresh clock starts unseeded
	again := s.acquire(released)
	req.False(again.seeded)
	req.Zero(again.seq)
	s.release(again, at)
}
