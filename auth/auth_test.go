package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokens_Generate_And_Validate(t *testing.T) {
	req := require.New(t)
	tokens := NewTokens("a-long-enough-test-secret", "")
	userID := uuid.New()

	token, err := tokens.Generate(userID, []string{"host"}, time.Minute)
	req.NoError(err)

	claims, err := tokens.Validate(token)
	req.NoError(err)
	req.Equal(userID.String(), claims.UserID)
	req.Equal([]string{"host"}, claims.Roles)
	req.Equal(DefaultIssuer, claims.Issuer)
}

func TestTokens_Rejections(t *testing.T) {
	req := require.New(t)
	tokens := NewTokens("a-long-enough-test-secret", "chat-gate")

	t.Run("expired", func(t *testing.T) {
		token, err := tokens.Generate(uuid.New(), nil, -time.Minute)
		req.NoError(err)
		_, err = tokens.Validate(token)
		req.ErrorIs(err, jwt.ErrTokenExpired)
	})

	t.Run("other secret", func(t *testing.T) {
		token, err := NewTokens("another-secret", "chat-gate").Generate(uuid.New(), nil, time.Minute)
		req.NoError(err)
		_, err = tokens.Validate(token)
		req.ErrorIs(err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("other issuer", func(t *testing.T) {
		token, err := NewTokens("a-long-enough-test-secret", "someone-else").Generate(uuid.New(), nil, time.Minute)
		req.NoError(err)
		_, err = tokens.Validate(token)
		req.ErrorIs(err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := tokens.Validate("invalid-token-string")
		req.Error(err)
	})
}

func TestUserID_Context(t *testing.T) {
	req := require.New(t)

	_, ok := UserIDFrom(context.Background())
	req.False(ok)

	id := uuid.New()
	got, ok := UserIDFrom(WithUserID(context.Background(), id))
	req.True(ok)
	req.Equal(id, got)
}
