package errors

import (
	stderrors "errors"
	"fmt"
)

var (
	ErrWorkerPanic = fmt.Errorf("worker panic")

	ErrUnauthenticated      = fmt.Errorf("unauthenticated")
	ErrNotParticipant       = fmt.Errorf("not a participant of the conversation")
	ErrForbiddenRole        = fmt.Errorf("insufficient role")
	ErrOutsideAllowedHours  = fmt.Errorf("access outside allowed hours")
	ErrRateLimited          = fmt.Errorf("rate limit exceeded")
	ErrUserNotFound         = fmt.Errorf("user not found")
	ErrConversationNotFound = fmt.Errorf("conversation not found")
	ErrMessageNotFound      = fmt.Errorf("message not found")
	ErrValidation           = fmt.Errorf("validation failed")
	ErrTimeout              = fmt.Errorf("request deadline exceeded")

	// ErrStoreUnavailable is transient: the caller may retry, the core never does.
	ErrStoreUnavailable = fmt.Errorf("store unavailable")
	ErrInvalidRecord    = fmt.Errorf("invalid stored record")
)

// Rejection is a request-scoped failure carrying its cause kind and the
// offending field, so the edge can render a precise response.
type Rejection struct {
	Kind   error
	Field  string
	Detail string
}

func (r *Rejection) Error() string {
	switch {
	case r.Field != "" && r.Detail != "":
		return fmt.Sprintf("%v: %s: %s", r.Kind, r.Field, r.Detail)
	case r.Field != "":
		return fmt.Sprintf("%v: %s", r.Kind, r.Field)
	case r.Detail != "":
		return fmt.Sprintf("%v: %s", r.Kind, r.Detail)
	default:
		return r.Kind.Error()
	}
}

func (r *Rejection) Unwrap() error { return r.Kind }

func reject(kind error, field, detail string) error {
	return &Rejection{Kind: kind, Field: field, Detail: detail}
}

func Validation(field, detail string) error {
	return reject(ErrValidation, field, detail)
}

func UserNotFound(id string) error {
	return reject(ErrUserNotFound, "user_id", id)
}

func ConversationNotFound(id string) error {
	return reject(ErrConversationNotFound, "conversation_id", id)
}

func MessageNotFound(id string) error {
	return reject(ErrMessageNotFound, "message_id", id)
}

func NotParticipant(conversationID string) error {
	return reject(ErrNotParticipant, "conversation_id", conversationID)
}

func ForbiddenRole(role, method string) error {
	return reject(ErrForbiddenRole, "role", fmt.Sprintf("%s cannot %s", role, method))
}

func RateLimited(clientKey string) error {
	return reject(ErrRateLimited, "client_key", clientKey)
}

func OutsideAllowedHours(hour int) error {
	return reject(ErrOutsideAllowedHours, "hour", fmt.Sprint(hour))
}

func Timeout(stage string) error {
	return reject(ErrTimeout, "stage", stage)
}

// StoreUnavailable wraps a storage failure so it is never confused with an
// authorization outcome.
func StoreUnavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}

// AsRejection extracts the typed rejection, if any.
func AsRejection(err error) (*Rejection, bool) {
	var r *Rejection
	if stderrors.As(err, &r) {
		return r, true
	}
	return nil, false
}
