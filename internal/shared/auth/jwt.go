package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed validity window of a session token.
const TokenTTL = 7 * 24 * time.Hour

// ErrInvalidToken is returned for any token that fails verification: bad
// signature, malformed payload, wrong algorithm, or past expiry. A token is
// binary valid/invalid at check time.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the identity carried by a session token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
	Name   string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and verifies HS256 session tokens. It is stateless; the
// secret is injected once at construction and never read from ambient state.
type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService constructs a token service with the fixed 7-day TTL.
func NewService(secret string) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	return &Service{
		secret: []byte(secret),
		ttl:    TokenTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token embedding the user's identity, expiring TTL from now.
func (s *Service) Issue(userID, email, name string) (string, error) {
	if userID == "" {
		return "", errors.New("user id is required")
	}
	now := s.now().UTC()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates a token, returning its claims.
func (s *Service) Verify(token string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)

	var claims Claims
	parsed, err := parser.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil || parsed == nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	if claims.UserID == "" {
		return Claims{}, ErrInvalidToken
	}
	return claims, nil
}
