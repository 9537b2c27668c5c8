package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// UserRepo defines the persistence operations for Users.
type UserRepo interface {
	// Create inserts a new user. Returns domain.ErrConflict if the email or
	// username is already taken.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByID retrieves a user by primary key.
	GetByID(ctx context.Context, id int64) (domain.User, error)

	// GetByEmail retrieves a user by exact email. Token subjects are emails,
	// so this is the lookup behind every authenticated request.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// GetByLogin retrieves a user whose email or username equals login.
	GetByLogin(ctx context.Context, login string) (domain.User, error)

	// UpdateProfile overwrites full_name and profile_photo for a user.
	UpdateProfile(ctx context.Context, id int64, fullName, profilePhoto *string) (domain.User, error)
}

type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

const userColumns = `id, email, username, hashed_password, full_name, profile_photo, created_at`

func (r *pgUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (email, username, hashed_password, full_name)
		VALUES (@email, @username, @hashed_password, @full_name)
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"email":           user.Email,
		"username":        user.Username,
		"hashed_password": user.HashedPassword,
		"full_name":       user.FullName,
	}

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email = @email`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgUserRepo) GetByLogin(ctx context.Context, login string) (domain.User, error) {
	// Email wins over username when one user's username equals another's email.
	const q = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = @login OR username = @login
		ORDER BY (email = @login) DESC
		LIMIT 1`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"login": login}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByLogin: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgUserRepo) UpdateProfile(ctx context.Context, id int64, fullName, profilePhoto *string) (domain.User, error) {
	const q = `
		UPDATE users
		SET full_name     = @full_name,
		    profile_photo = @profile_photo
		WHERE id = @id
		RETURNING ` + userColumns

	args := pgx.NamedArgs{"id": id, "full_name": fullName, "profile_photo": profilePhoto}

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.UpdateProfile: %w", mapErr(err))
	}
	return result, nil
}

func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	err := s.Scan(&u.ID, &u.Email, &u.Username, &u.HashedPassword, &u.FullName, &u.ProfilePhoto, &u.CreatedAt)
	return u, err
}
