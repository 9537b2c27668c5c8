package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// TokenIssuer issues and verifies bearer tokens bound to an email identity.
// *auth.TokenService satisfies it.
type TokenIssuer interface {
	Issue(identity string) (string, error)
	Verify(token string) (string, error)
}

// PasswordHasher hashes and checks passwords. *auth.PasswordService satisfies it.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) error
}

// AuthService registers users, logs them in, and resolves bearer tokens
// back to users.
type AuthService struct {
	users     repo.UserRepo
	tokens    TokenIssuer
	passwords PasswordHasher
	// dummyHash is checked against on unknown logins so they cost the same
	// as a wrong password.
	dummyHash string
}

// NewAuthService constructs an AuthService.
func NewAuthService(users repo.UserRepo, tokens TokenIssuer, passwords PasswordHasher) *AuthService {
	dummy, _ := passwords.Hash("globetrotter-unknown-user")
	return &AuthService{users: users, tokens: tokens, passwords: passwords, dummyHash: dummy}
}

// Register creates a user account. Returns domain.ErrConflict if the email
// or username is taken.
func (s *AuthService) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	email := strings.TrimSpace(reg.Email)
	username := strings.TrimSpace(reg.Username)
	switch {
	case email == "":
		return domain.User{}, fmt.Errorf("%w: email is required", domain.ErrValidation)
	case username == "":
		return domain.User{}, fmt.Errorf("%w: username is required", domain.ErrValidation)
	case reg.Password == "":
		return domain.User{}, fmt.Errorf("%w: password is required", domain.ErrValidation)
	}

	hash, err := s.passwords.Hash(reg.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w: %s", domain.ErrValidation, err)
	}

	u := domain.User{Email: email, Username: username, HashedPassword: hash}
	if name := strings.TrimSpace(reg.FullName); name != "" {
		u.FullName = &name
	}

	created, err := s.users.Create(ctx, u)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Register: %w", err)
	}
	return created, nil
}

// Login checks credentials and returns a signed access token. login may be
// the user's email or username. Unknown users and wrong passwords are both
// reported as domain.ErrUnauthorized.
func (s *AuthService) Login(ctx context.Context, login, password string) (string, error) {
	u, err := s.users.GetByLogin(ctx, login)
	if errors.Is(err, domain.ErrNotFound) {
		_ = s.passwords.Verify(s.dummyHash, password)
		return "", fmt.Errorf("service.AuthService.Login: %w: incorrect username or password", domain.ErrUnauthorized)
	}
	if err != nil {
		return "", fmt.Errorf("service.AuthService.Login: %w", err)
	}

	if err := s.passwords.Verify(u.HashedPassword, password); err != nil {
		return "", fmt.Errorf("service.AuthService.Login: %w: incorrect username or password", domain.ErrUnauthorized)
	}

	token, err := s.tokens.Issue(u.Email)
	if err != nil {
		return "", fmt.Errorf("service.AuthService.Login: %w", err)
	}
	return token, nil
}

// Authenticate resolves a bearer token to the user it was issued for.
// An invalid token, or one naming a user that no longer exists, yields
// domain.ErrUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, token string) (domain.User, error) {
	email, err := s.tokens.Verify(token)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w: %s", domain.ErrUnauthorized, err.Error())
	}

	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w: unknown subject", domain.ErrUnauthorized)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AuthService.Authenticate: %w", err)
	}
	return u, nil
}
