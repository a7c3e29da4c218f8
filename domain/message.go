// Package domain contains core concepts of the chat system.
// This file defines Message entities and related rules.
// Messages are immutable once stored.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxBodyLength = 1000

// Message represents an immutable chat entry.
// Seq breaks ties between messages sharing the same SentAt inside a
// conversation, it follows insertion order.
type Message struct {
	ID             uuid.UUID
	ConversationID uuid.UUID
	SenderID       uuid.UUID
	Body           string
	SentAt         time.Time
	Seq            uint64
}

// MessageFilter narrows a message listing. Zero values disable a criterion.
// Time bounds are inclusive and Contains is a case-sensitive substring match.
type MessageFilter struct {
	SenderID   *uuid.UUID
	SentAfter  *time.Time
	SentBefore *time.Time
	Contains   string
}

func (f MessageFilter) Matches(m Message) bool {
	if f.SenderID != nil && m.SenderID != *f.SenderID {
		return false
	}
	if f.SentAfter != nil && m.SentAt.Before(*f.SentAfter) {
		return false
	}
	if f.SentBefore != nil && m.SentAt.After(*f.SentBefore) {
		return false
	}
	if f.Contains != "" && !strings.Contains(m.Body, f.Contains) {
		return false
	}
	return true
}
