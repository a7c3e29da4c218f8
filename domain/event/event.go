package event

import (
	"chat-gate/domain"

	"github.com/google/uuid"
)

type DomainEvent interface {
	ConversationID() uuid.UUID
}

// MessagePosted is published once a message has been persisted.
type MessagePosted struct {
	Message domain.Message
}

func (m MessagePosted) ConversationID() uuid.UUID {
	return m.Message.ConversationID
}
