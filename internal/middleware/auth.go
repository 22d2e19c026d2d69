package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/quillbox/quillbox-go/internal/apperr"
	"github.com/quillbox/quillbox-go/internal/crypto"
)

type contextKey string

const authUserKey contextKey = "authUser"

// AuthUser is the decoded owner identity attached to authenticated requests.
type AuthUser struct {
	ID    string
	Email string
}

// AccessGate returns middleware that validates a Bearer access token from
// the Authorization header and injects the owner identity into the context.
func AccessGate(accessSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeTaxonomyError(w, apperr.New(apperr.CodeMissingAccessToken))
				return
			}

			token, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || token == "" {
				writeTaxonomyError(w, apperr.New(apperr.CodeMissingAccessToken))
				return
			}

			claims, err := crypto.ValidateToken(token, accessSecret)
			if err != nil {
				writeTaxonomyError(w, apperr.New(apperr.CodeInvalidAccessToken))
				return
			}

			ctx := context.WithValue(r.Context(), authUserKey, AuthUser{
				ID:    claims.UserID,
				Email: claims.Email,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (AuthUser, bool) {
	u, ok := ctx.Value(authUserKey).(AuthUser)
	return u, ok
}

func writeTaxonomyError(w http.ResponseWriter, e *apperr.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	json.NewEncoder(w).Encode(map[string]string{"message": e.Message})
}
