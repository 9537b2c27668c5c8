// Package auth issues and verifies bearer tokens and hashes passwords.
// Tokens are HS256 JWTs whose subject is the user's email address.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "globetrotter"

// ErrInvalidToken is returned by Verify for any token that cannot be trusted:
// malformed, badly signed, expired, or missing a subject.
var ErrInvalidToken = errors.New("auth: invalid token")

// TokenService signs and verifies access tokens with a shared HMAC secret.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService returns a TokenService. The secret must be at least 16
// characters and ttl must be positive.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if len(secret) < 16 {
		return nil, errors.New("auth: JWT secret must be at least 16 characters")
	}
	if ttl <= 0 {
		return nil, errors.New("auth: token TTL must be positive")
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs a token binding identity (an email) for the configured TTL.
func (s *TokenService) Issue(identity string) (string, error) {
	return s.issue(identity, s.ttl)
}

func (s *TokenService) issue(identity string, ttl time.Duration) (string, error) {
	if identity == "" {
		return "", errors.New("auth: identity is required")
	}
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   identity,
		Issuer:    issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("auth: signing token: %w", err)
	}
	return signed, nil
}

// Verify checks the signature, issuer and expiry of token and returns the
// identity it was issued for. Every failure wraps ErrInvalidToken.
func (s *TokenService) Verify(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: token has no subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
