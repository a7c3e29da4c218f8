package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const DefaultIssuer = "chat-gate"

// CustomClaims defines the structure of the data stored inside the JWT.
// Roles are informative only, the stored user record is authoritative.
type CustomClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// Tokens signs and validates HS256 tokens with a shared secret.
// Issuing credentials belongs to the identity provider, Generate exists for
// tooling and tests.
type Tokens struct {
	secret []byte
	issuer string
}

func NewTokens(secret, issuer string) Tokens {
	if issuer == "" {
		issuer = DefaultIssuer
	}
	return Tokens{secret: []byte(secret), issuer: issuer}
}

// Generate creates a signed JWT for a specific user.
func (t Tokens) Generate(userID uuid.UUID, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: userID.String(),
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    t.issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Validate parses and validates the signature, issuer and expiration of a JWT string.
func (t Tokens) Validate(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(t.issuer),
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrSignatureInvalid
	}
	if _, err = uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("%w: user_id: %v", jwt.ErrTokenInvalidClaims, err)
	}
	return claims, nil
}
