package service

import (
	"errors"
	"time"
)

// Decode failures. They are terminal: callers map them and never retry.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token has expired")
	ErrTokenScopeMismatch    = errors.New("token scope mismatch")
)

// Claims is the verified payload of a token.
type Claims struct {
	Subject   string
	Scope     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService signs and verifies compact JWS tokens.
type TokenService interface {
	// Issue signs a token for subject that expires ttl from now. An empty scope omits the claim.
	Issue(subject string, ttl time.Duration, scope string) (string, error)

	// Decode verifies token and returns its claims. A non-empty expectedScope must equal
	// the signed scope claim; an empty one accepts any scope.
	Decode(token string, expectedScope string) (*Claims, error)
}
