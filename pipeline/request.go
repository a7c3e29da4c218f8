// Package pipeline composes the request gates into an explicit, ordered list
// of stages run in front of the chat service.
package pipeline

import (
	"chat-gate/domain"
	"chat-gate/policy"
	"time"

	"github.com/google/uuid"
)

type Resource int

const (
	ResourceConversation Resource = iota
	ResourceMessage
)

func (r Resource) String() string {
	switch r {
	case ResourceConversation:
		return "conversation"
	case ResourceMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Request is everything a stage may look at. Identity is nil for anonymous
// callers. MessageID targets an existing message, ConversationID a
// conversation (posting a message targets its conversation). Both are nil
// when the operation has no single target yet, like listings.
type Request struct {
	Identity       *domain.User
	Method         policy.Method
	Resource       Resource
	ConversationID *uuid.UUID
	MessageID      *uuid.UUID
	ClientKey      string
	Now            time.Time
}

// IsMessageCreation is true for requests that post a new message.
func (r Request) IsMessageCreation() bool {
	return r.Method == policy.MethodCreate && r.Resource == ResourceMessage
}

// Outcome is the verdict of a stage or of the whole pipeline.
type Outcome struct {
	Admitted bool
	Stage    string
	Cause    error
}

func Admit() Outcome {
	return Outcome{Admitted: true}
}

func Reject(cause error) Outcome {
	return Outcome{Cause: cause}
}

// Err returns nil for an admitted outcome and the cause otherwise.
func (o Outcome) Err() error {
	if o.Admitted {
		return nil
	}
	return o.Cause
}
