package domain

import (
	"time"

	"github.com/google/uuid"
)

// Conversation always holds at least one participant once created.
type Conversation struct {
	ID           uuid.UUID
	Participants ParticipantSet
	CreatedAt    time.Time
}

func NewConversation(creatorID uuid.UUID, participantIDs []uuid.UUID, at time.Time) Conversation {
	return Conversation{
		ID:           uuid.New(),
		Participants: NewParticipantSet(participantIDs...).With(creatorID),
		CreatedAt:    at,
	}
}

func IsParticipant(conversation Conversation, userID uuid.UUID) bool {
	return conversation.Participants.Contains(userID)
}

// WithParticipants returns a copy of the conversation with the ids added.
func (c Conversation) WithParticipants(ids ...uuid.UUID) Conversation {
	c.Participants = c.Participants.With(ids...)
	return c
}
