package errors

import (
	"context"
	stderrors "errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError converts a domain or pipeline error into a gRPC status.
// Errors that already carry a status are returned untouched.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}
	return status.Error(codeFor(err), err.Error())
}

func codeFor(err error) codes.Code {
	switch {
	case stderrors.Is(err, ErrUnauthenticated):
		return codes.Unauthenticated
	case stderrors.Is(err, ErrNotParticipant),
		stderrors.Is(err, ErrForbiddenRole),
		stderrors.Is(err, ErrOutsideAllowedHours):
		return codes.PermissionDenied
	case stderrors.Is(err, ErrRateLimited):
		return codes.ResourceExhausted
	case stderrors.Is(err, ErrUserNotFound),
		stderrors.Is(err, ErrConversationNotFound),
		stderrors.Is(err, ErrMessageNotFound):
		return codes.NotFound
	case stderrors.Is(err, ErrValidation):
		return codes.InvalidArgument
	case stderrors.Is(err, ErrStoreUnavailable):
		return codes.Unavailable
	case stderrors.Is(err, ErrTimeout), stderrors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case stderrors.Is(err, context.Canceled):
		return codes.Canceled
	default:
		return codes.Internal
	}
}
