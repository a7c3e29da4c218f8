package server

import (
	"chat-gate/auth"
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// TokenValidator turns a bearer token into verified claims.
type TokenValidator interface {
	Validate(token string) (*auth.CustomClaims, error)
}

// AuthInterceptor puts the user id of a valid bearer token in the context.
// A missing or invalid token leaves the request anonymous: rejecting it is
// the pipeline's job, after the time window and the rate limiter had a say.
func AuthInterceptor(log *slog.Logger, tokens TokenValidator) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		token, ok := bearerToken(ctx)
		if !ok {
			return handler(ctx, req)
		}
		claims, err := tokens.Validate(token)
		if err != nil {
			log.Debug("Ignoring invalid token", "method", info.FullMethod, "error", err)
			return handler(ctx, req)
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			return handler(ctx, req)
		}
		return handler(auth.WithUserID(ctx, userID), req)
	}
}

func bearerToken(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	values := md.Get("authorization")
	if len(values) == 0 {
		return "", false
	}
	scheme, token, found := strings.Cut(values[0], " ")
	if !found || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}
