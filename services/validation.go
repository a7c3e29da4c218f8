package services

import (
	"chat-gate/errors"
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type createConversationRequest struct {
	ParticipantIDs []uuid.UUID `json:"participant_ids" validate:"required,min=1"`
}

type postMessageRequest struct {
	Body string `json:"body" validate:"required,max=1000"`
}

type addParticipantsRequest struct {
	ParticipantIDs []uuid.UUID `json:"participant_ids" validate:"required,min=1"`
}

type searchMessagesRequest struct {
	Text string `json:"text" validate:"required,max=256"`
}

// newValidator reports fields under their json names so rejections match
// what clients sent.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validate converts the first failed constraint into a validation rejection.
func validate(v *validator.Validate, request any) error {
	err := v.Struct(request)
	if err == nil {
		return nil
	}
	var failures validator.ValidationErrors
	if !stderrors.As(err, &failures) || len(failures) == 0 {
		return errors.Validation("", err.Error())
	}
	failure := failures[0]
	return errors.Validation(fieldName(failure), describe(failure))
}

// fieldName keeps the json name of the field, dropping the struct prefix.
func fieldName(failure validator.FieldError) string {
	namespace := failure.Namespace()
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		namespace = rest
	}
	name, _, _ := strings.Cut(namespace, "[")
	return name
}

func describe(failure validator.FieldError) string {
	switch failure.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must contain at least %s element(s)", failure.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", failure.Param())
	case "email":
		return "must be a valid email address"
	case "oneof":
		return fmt.Sprintf("must be one of %s", failure.Param())
	default:
		return fmt.Sprintf("failed on %s", failure.Tag())
	}
}
