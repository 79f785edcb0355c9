package auth

import (
	"strings"
	"time"

	"contacts/config"
	"contacts/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tokenClaims is the signed payload. Email-verification tokens omit the scope.
type tokenClaims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte
	method jwt.SigningMethod
	clock  service.Clock
}

// NewJWTService is the constructor for jwtService.
// Only HMAC algorithms are accepted since every token is signed with the shared server secret.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	algorithm := cfg.SecretKey.Algorithm
	if algorithm == "" {
		algorithm = jwt.SigningMethodHS256.Alg()
	}

	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, errors.Errorf("unsupported jwt algorithm: %s", algorithm)
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Secret),
		method: method,
		clock:  clock,
	}, nil
}

// Issue signs a token for subject that expires ttl from now.
func (s *jwtService) Issue(subject string, ttl time.Duration, scope string) (string, error) {
	now := s.clock.Now()
	claims := tokenClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			// Unique per token, so two issued within the same second still differ.
			ID:        uuid.NewString(),
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Decode verifies the segment count, then the signature, then exp, then the scope.
func (s *jwtService) Decode(tokenString string, expectedScope string) (*service.Claims, error) {
	if strings.Count(tokenString, ".") != 2 {
		return nil, errors.WithStack(service.ErrTokenMalformed)
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, s.keyFunc,
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithTimeFunc(s.clock.Now),
		jwt.WithExpirationRequired(),
		// jwt treats now == exp as expired; a token expires only once now passes exp.
		jwt.WithLeeway(time.Nanosecond),
	)
	if err != nil {
		return nil, mapParseError(err)
	}

	if claims.Subject == "" {
		return nil, errors.Wrap(service.ErrTokenMalformed, "missing subject")
	}

	if expectedScope != "" && claims.Scope != expectedScope {
		return nil, errors.Wrapf(service.ErrTokenScopeMismatch, "expected %q, got %q", expectedScope, claims.Scope)
	}

	result := &service.Claims{
		Subject:   claims.Subject,
		Scope:     claims.Scope,
		ExpiresAt: claims.ExpiresAt.Time,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}

	return result, nil
}

func (s *jwtService) keyFunc(token *jwt.Token) (any, error) {
	// Ensure the signing method is what we expect.
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}

	return s.secret, nil
}

// mapParseError translates jwt errors into the codec's sentinels.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return errors.Wrap(service.ErrTokenInvalidSignature, err.Error())
	case errors.Is(err, jwt.ErrTokenExpired):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	default:
		return errors.Wrap(service.ErrTokenMalformed, err.Error())
	}
}
