package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/quillbox/quillbox-go/internal/model"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrDuplicateProfileName = errors.New("profile name already exists")
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, email, password_hash, user_name, profile_name, dob, bio, country, gender, profile_img, created_at, updated_at`

// Create inserts a new user. Duplicate email or profile name surface as
// ErrDuplicateEmail / ErrDuplicateProfileName via the unique indexes.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (user_id, email, password_hash, user_name, profile_name, dob, bio, country, gender, profile_img)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.UserName,
		user.ProfileName,
		user.DOB,
		user.Bio,
		user.Country,
		user.Gender,
		user.ProfileImg,
	)
	if err != nil {
		switch {
		case isDuplicateEntryError(err, "email"):
			return ErrDuplicateEmail
		case isDuplicateEntryError(err, "profile_name"):
			return ErrDuplicateProfileName
		}
		return err
	}
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

// GetByID retrieves a user by their ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

// GetByProfileName retrieves a user by their profile name.
func (r *UserRepository) GetByProfileName(ctx context.Context, profileName string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE profile_name = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, query, profileName))
}

// Update overwrites the mutable profile fields of a user.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `UPDATE users
		SET user_name = ?, profile_name = ?, dob = ?, bio = ?, country = ?, gender = ?, profile_img = ?, updated_at = NOW()
		WHERE user_id = ?`

	_, err := r.db.ExecContext(ctx, query,
		user.UserName,
		user.ProfileName,
		user.DOB,
		user.Bio,
		user.Country,
		user.Gender,
		user.ProfileImg,
		user.ID,
	)
	if err != nil && isDuplicateEntryError(err, "profile_name") {
		return ErrDuplicateProfileName
	}
	return err
}

func (r *UserRepository) scanOne(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.UserName,
		&user.ProfileName,
		&user.DOB,
		&user.Bio,
		&user.Country,
		&user.Gender,
		&user.ProfileImg,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
