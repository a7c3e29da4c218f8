// Package domain contains core concepts of the chat system.
// This file defines Participant sets and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"bytes"
	"slices"

	"github.com/google/uuid"
)

// ParticipantSet is an immutable set of user ids.
// Additions go through With, which returns a new set, so a reader holding
// a set never observes a partial update.
type ParticipantSet struct {
	ids []uuid.UUID // sorted, unique
}

func NewParticipantSet(ids ...uuid.UUID) ParticipantSet {
	return ParticipantSet{}.With(ids...)
}

func (s ParticipantSet) With(ids ...uuid.UUID) ParticipantSet {
	merged := make([]uuid.UUID, 0, len(s.ids)+len(ids))
	merged = append(merged, s.ids...)
	merged = append(merged, ids...)
	slices.SortFunc(merged, compareIDs)
	return ParticipantSet{ids: slices.CompactFunc(merged, func(a, b uuid.UUID) bool { return a == b })}
}

func (s ParticipantSet) Contains(id uuid.UUID) bool {
	_, found := slices.BinarySearchFunc(s.ids, id, compareIDs)
	return found
}

func (s ParticipantSet) Len() int { return len(s.ids) }

// IDs returns a sorted copy.
func (s ParticipantSet) IDs() []uuid.UUID {
	return slices.Clone(s.ids)
}

func compareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
