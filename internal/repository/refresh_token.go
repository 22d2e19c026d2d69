package repository

import (
	"context"
	"database/sql"
)

// RefreshTokenRepository handles the persisted refresh token rows. A refresh
// token is live only while a matching (user_id, token) row exists.
type RefreshTokenRepository struct {
	db *sql.DB
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository.
func NewRefreshTokenRepository(db *sql.DB) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// Insert stores a freshly issued refresh token for a login session.
func (r *RefreshTokenRepository) Insert(ctx context.Context, userID, token string) error {
	query := `INSERT INTO user_refresh_tokens (user_id, token) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, userID, token)
	return err
}

// Rotate atomically replaces oldToken with newToken for the given owner.
// Returns false when no matching row exists, meaning oldToken was already
// rotated out, logged out, or never issued; the caller must treat that as a
// revoked token even if its signature still verifies.
func (r *RefreshTokenRepository) Rotate(ctx context.Context, userID, oldToken, newToken string) (bool, error) {
	query := `UPDATE user_refresh_tokens SET token = ?, created_at = NOW() WHERE user_id = ? AND token = ?`

	result, err := r.db.ExecContext(ctx, query, newToken, userID, oldToken)
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

// Delete removes the row holding token. Deleting an absent token is not an
// error; logout is idempotent.
func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM user_refresh_tokens WHERE token = ?`
	_, err := r.db.ExecContext(ctx, query, token)
	return err
}
