package policy

import (
	"chat-gate/domain"
	"chat-gate/errors"
)

// Target is an object a participant check can be made against.
type Target interface {
	OwningConversation() domain.Conversation
}

type ConversationTarget struct {
	Conversation domain.Conversation
}

func (t ConversationTarget) OwningConversation() domain.Conversation { return t.Conversation }

// MessageTarget pairs a message with the conversation that owns it.
type MessageTarget struct {
	Message      domain.Message
	Conversation domain.Conversation
}

func (t MessageTarget) OwningConversation() domain.Conversation { return t.Conversation }

// ParticipantPolicy scopes access to the members of a conversation.
// It is used both as a pipeline stage and as a post-hoc check on objects
// returned by listing or search operations.
type ParticipantPolicy struct{}

func (ParticipantPolicy) Authenticated(user *domain.User) error {
	if user == nil {
		return errors.ErrUnauthenticated
	}
	return nil
}

func (p ParticipantPolicy) Authorize(user *domain.User, target Target) error {
	if err := p.Authenticated(user); err != nil {
		return err
	}
	conversation := target.OwningConversation()
	if !domain.IsParticipant(conversation, user.ID) {
		return errors.NotParticipant(conversation.ID.String())
	}
	return nil
}
