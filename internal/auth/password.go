package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordMismatch is returned by Verify when the password is wrong.
var ErrPasswordMismatch = errors.New("auth: password does not match")

// MaxPasswordBytes is bcrypt's input limit. Longer passwords are rejected
// rather than silently truncated.
const MaxPasswordBytes = 72

// PasswordService hashes and checks passwords with bcrypt.
type PasswordService struct {
	cost int
}

// NewPasswordService returns a PasswordService using bcrypt.DefaultCost.
func NewPasswordService() *PasswordService {
	return &PasswordService{cost: bcrypt.DefaultCost}
}

// NewPasswordServiceWithCost is for tests in other packages; bcrypt.MinCost
// keeps them fast.
func NewPasswordServiceWithCost(cost int) *PasswordService {
	return &PasswordService{cost: cost}
}

// Hash returns the bcrypt hash of plaintext.
func (p *PasswordService) Hash(plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordBytes {
		return "", fmt.Errorf("auth: password must be %d bytes or fewer", MaxPasswordBytes)
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), p.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hashing password: %w", err)
	}
	return string(hashed), nil
}

// Verify returns nil if plaintext matches hash and ErrPasswordMismatch if not.
func (p *PasswordService) Verify(hash, plaintext string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrPasswordMismatch
	}
	if err != nil {
		return fmt.Errorf("auth: comparing password hash: %w", err)
	}
	return nil
}
