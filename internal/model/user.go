package model

import "time"

// User represents a user in the database.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	UserName     string
	ProfileName  string
	DOB          string
	Bio          string
	Country      string
	Gender       string
	ProfileImg   string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	UserName    string `json:"user_name"`
	ProfileName string `json:"profile_name" validate:"required"`
	DOB         string `json:"dob"`
	Bio         string `json:"bio"`
	Country     string `json:"country"`
	Gender      string `json:"gender"`
	ProfileImg  string `json:"profile_img"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest represents a profile update request.
type UpdateUserRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	UserName    string `json:"user_name"`
	ProfileName string `json:"profile_name" validate:"required"`
	DOB         string `json:"dob"`
	Bio         string `json:"bio"`
	Country     string `json:"country"`
	Gender      string `json:"gender"`
	ProfileImg  string `json:"profile_img"`
}

// RegisteredUser is the subset of user fields returned after registration.
type RegisteredUser struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	ProfileName string `json:"profile_name"`
}

// LoginResponse is the login response body. The refresh token travels in a
// cookie, never in the body.
type LoginResponse struct {
	UserID      string `json:"user_id"`
	Email       string `json:"email"`
	UserName    string `json:"user_name"`
	ProfileName string `json:"profile_name"`
	AccessToken string `json:"accessToken"`
}

// UserProfile represents user data safe for API responses (no credentials).
type UserProfile struct {
	UserID      string    `json:"user_id"`
	Email       string    `json:"email,omitempty"`
	UserName    string    `json:"user_name"`
	ProfileName string    `json:"profile_name"`
	DOB         string    `json:"dob,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Country     string    `json:"country,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	ProfileImg  string    `json:"profile_img,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Profile converts a User to its public representation.
func (u *User) Profile() UserProfile {
	return UserProfile{
		UserID:      u.ID,
		Email:       u.Email,
		UserName:    u.UserName,
		ProfileName: u.ProfileName,
		DOB:         u.DOB,
		Bio:         u.Bio,
		Country:     u.Country,
		Gender:      u.Gender,
		ProfileImg:  u.ProfileImg,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

// RefreshToken represents a stored refresh token row. The row is the sole
// source of truth for whether a refresh token is still live; revocation is
// deletion or overwrite of the row, not token-side state.
type RefreshToken struct {
	UserID    string
	Token     string
	CreatedAt time.Time
}
