package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/quillbox/quillbox-go/internal/apperr"
	"github.com/quillbox/quillbox-go/internal/config"
	"github.com/quillbox/quillbox-go/internal/crypto"
	"github.com/quillbox/quillbox-go/internal/model"
	"github.com/quillbox/quillbox-go/internal/repository"
)

// UserStore is the user persistence surface the auth workflow needs.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByProfileName(ctx context.Context, profileName string) (*model.User, error)
	Update(ctx context.Context, user *model.User) error
}

// RefreshTokenStore is the persisted refresh token surface.
type RefreshTokenStore interface {
	Insert(ctx context.Context, userID, token string) error
	Rotate(ctx context.Context, userID, oldToken, newToken string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// AuthService orchestrates registration, login, token rotation and logout.
type AuthService struct {
	users  UserStore
	tokens RefreshTokenStore

	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewAuthService creates a new AuthService.
func NewAuthService(users UserStore, tokens RefreshTokenStore, cfg config.Config) *AuthService {
	return &AuthService{
		users:         users,
		tokens:        tokens,
		accessSecret:  cfg.AccessTokenSecret,
		refreshSecret: cfg.RefreshTokenSecret,
		accessTTL:     cfg.AccessTokenTTL,
		refreshTTL:    cfg.RefreshTokenTTL,
	}
}

// Register creates a new user account. The password hash never leaves the
// service; only id, email and profile name are returned.
func (s *AuthService) Register(ctx context.Context, req model.RegisterRequest) (*model.RegisteredUser, error) {
	if req.Email == "" || req.Password == "" || req.ProfileName == "" {
		return nil, apperr.New(apperr.CodeMissingFields)
	}

	if _, err := s.users.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperr.New(apperr.CodeEmailExists)
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}

	if _, err := s.users.GetByProfileName(ctx, req.ProfileName); err == nil {
		return nil, apperr.New(apperr.CodeProfileExists)
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: hash,
		UserName:     req.UserName,
		ProfileName:  req.ProfileName,
		DOB:          req.DOB,
		Bio:          req.Bio,
		Country:      req.Country,
		Gender:       req.Gender,
		ProfileImg:   req.ProfileImg,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique indexes are the authority; the pre-checks above only
		// order the two conflict errors deterministically.
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, apperr.New(apperr.CodeEmailExists)
		case errors.Is(err, repository.ErrDuplicateProfileName):
			return nil, apperr.New(apperr.CodeProfileExists)
		}
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}

	return &model.RegisteredUser{
		UserID:      user.ID,
		Email:       user.Email,
		ProfileName: user.ProfileName,
	}, nil
}

// Login authenticates a user and issues an access/refresh token pair. The
// refresh token is persisted and returned separately so the handler can set
// it as a cookie; it never appears in the response body.
func (s *AuthService) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, string, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Same error as a wrong password; do not leak which check failed.
			return nil, "", apperr.New(apperr.CodeInvalidCredentials)
		}
		return nil, "", apperr.Wrap(apperr.CodeServerError, err)
	}

	if !crypto.VerifyPassword(req.Password, user.PasswordHash) {
		return nil, "", apperr.New(apperr.CodeInvalidCredentials)
	}

	accessToken, refreshToken, err := s.issuePair(user.ID, user.Email)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.CodeServerError, err)
	}

	if err := s.tokens.Insert(ctx, user.ID, refreshToken); err != nil {
		return nil, "", apperr.Wrap(apperr.CodeServerError, err)
	}

	return &model.LoginResponse{
		UserID:      user.ID,
		Email:       user.Email,
		UserName:    user.UserName,
		ProfileName: user.ProfileName,
		AccessToken: accessToken,
	}, refreshToken, nil
}

// Refresh exchanges a live refresh token for a new access/refresh pair,
// rotating the stored row in place. A token whose signature still verifies
// but whose row is gone (already rotated, or logged out) is rejected.
func (s *AuthService) Refresh(ctx context.Context, cookieToken string) (newAccess, newRefresh string, err error) {
	claims, err := crypto.ValidateToken(cookieToken, s.refreshSecret)
	if err != nil {
		return "", "", apperr.New(apperr.CodeInvalidRefreshToken)
	}

	newAccess, newRefresh, err = s.issuePair(claims.UserID, claims.Email)
	if err != nil {
		return "", "", apperr.Wrap(apperr.CodeServerError, err)
	}

	replaced, err := s.tokens.Rotate(ctx, claims.UserID, cookieToken, newRefresh)
	if err != nil {
		return "", "", apperr.Wrap(apperr.CodeServerError, err)
	}
	if !replaced {
		return "", "", apperr.New(apperr.CodeRefreshTokenNotFound)
	}

	return newAccess, newRefresh, nil
}

// Logout revokes the stored refresh token. Logging out with an absent or
// already-revoked token is not an error.
func (s *AuthService) Logout(ctx context.Context, cookieToken string) error {
	if cookieToken == "" {
		return nil
	}
	if err := s.tokens.Delete(ctx, cookieToken); err != nil {
		// The cookie is cleared regardless; losing the row delete only
		// leaves a dead token that the signature expiry bounds.
		slog.Error("logout: deleting refresh token", "error", err)
	}
	return nil
}

// GetUser returns the public profile of a user.
func (s *AuthService) GetUser(ctx context.Context, userID string) (*model.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.New(apperr.CodeUserNotFound)
		}
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}
	profile := user.Profile()
	return &profile, nil
}

// UpdateUser updates a user's profile. The profile name uniqueness re-check
// tolerates the user keeping their own current name.
func (s *AuthService) UpdateUser(ctx context.Context, req model.UpdateUserRequest) (*model.UserProfile, error) {
	if req.UserID == "" || req.ProfileName == "" {
		return nil, apperr.New(apperr.CodeProfileUpdateFieldMissing)
	}

	user, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperr.New(apperr.CodeUserNotFound)
		}
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}

	owner, err := s.users.GetByProfileName(ctx, req.ProfileName)
	if err == nil && owner.ID != req.UserID {
		return nil, apperr.New(apperr.CodeProfileExists)
	} else if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}

	user.UserName = req.UserName
	user.ProfileName = req.ProfileName
	user.DOB = req.DOB
	user.Bio = req.Bio
	user.Country = req.Country
	user.Gender = req.Gender
	user.ProfileImg = req.ProfileImg

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateProfileName) {
			return nil, apperr.New(apperr.CodeProfileExists)
		}
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}

	updated, err := s.users.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeServerError, err)
	}
	profile := updated.Profile()
	return &profile, nil
}

func (s *AuthService) issuePair(userID, email string) (access, refresh string, err error) {
	access, err = crypto.GenerateToken(userID, email, s.accessSecret, s.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = crypto.GenerateToken(userID, email, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
