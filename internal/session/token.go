package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid or expired session token")
	ErrMissingToken = errors.New("session token required")
)

// TokenManager mints and validates the HS256 tokens that bind an HTTP
// caller to its session workspace. Sessions are anonymous: the only
// claim that matters is the session id.
type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
}

// Claims are the custom JWT claims for a session token.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// NewTokenManager creates a token manager. secretKey should be a
// strong random string (e.g. 32 bytes); ttl is how long a session
// token stays valid.
func NewTokenManager(secretKey string, ttl time.Duration) *TokenManager {
	return &TokenManager{secretKey: []byte(secretKey), ttl: ttl}
}

// Generate creates a signed token for the given session id.
func (m *TokenManager) Generate(sessionID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Validate parses and validates a token, returning its claims.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&Claims{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secretKey, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
