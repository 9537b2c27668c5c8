package service

import (
	"context"
	"fmt"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// UserService implements the caller's own profile operations.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided UserRepo.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// GetSelf returns the caller's user record as resolved for this request.
func (s *UserService) GetSelf(_ context.Context, caller domain.User) domain.User {
	return caller
}

// UpdateSelf overwrites the caller's full name and profile photo with the
// non-empty fields of upd. Empty fields leave the stored value alone, so
// this cannot clear a field.
func (s *UserService) UpdateSelf(ctx context.Context, caller domain.User, upd domain.ProfileUpdate) (domain.User, error) {
	fullName, photo := caller.FullName, caller.ProfilePhoto
	if upd.FullName != "" {
		fullName = &upd.FullName
	}
	if upd.ProfilePhoto != "" {
		photo = &upd.ProfilePhoto
	}

	updated, err := s.users.UpdateProfile(ctx, caller.ID, fullName, photo)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.UserService.UpdateSelf: %w", err)
	}
	return updated, nil
}
