package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/quillbox/quillbox-go/internal/apperr"
	"github.com/quillbox/quillbox-go/internal/model"
	"github.com/quillbox/quillbox-go/internal/service"
)

const (
	refreshCookieName = "jid"
	refreshCookiePath = "/api/auth/refresh"
)

// AuthHandler handles HTTP requests for registration, login and sessions.
type AuthHandler struct {
	service      *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{service: svc, cookieSecure: cookieSecure}
}

// HandleRegister handles POST /api/auth/register requests.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, apperr.New(apperr.CodeMissingFields))
		return
	}

	user, err := h.service.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

// HandleLogin handles POST /api/auth/login requests. On success the refresh
// token is set as an HTTP-only cookie scoped to the refresh endpoint and the
// access token is returned in the body.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	resp, refreshToken, err := h.service.Login(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setRefreshCookie(w, refreshToken)
	writeJSON(w, http.StatusOK, resp)
}

// HandleRefresh handles POST /api/auth/refresh requests, rotating the
// refresh token on every use.
func (h *AuthHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		writeError(w, apperr.New(apperr.CodeMissingRefreshToken))
		return
	}

	newAccess, newRefresh, err := h.service.Refresh(r.Context(), cookie.Value)
	if err != nil {
		writeError(w, err)
		return
	}

	h.setRefreshCookie(w, newRefresh)
	writeJSON(w, http.StatusOK, map[string]string{"accessToken": newAccess})
}

// HandleLogout handles POST /api/auth/logout requests. The cookie is cleared
// whether or not a stored token existed.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(refreshCookieName); err == nil {
		token = cookie.Value
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	h.clearRefreshCookie(w)
	writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// HandleGetUser handles GET /api/auth/user/{userId} requests.
func (h *AuthHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	profile, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":    profile,
		"message": "User data fetched successfully",
	})
}

// HandleUpdateUser handles PUT /api/auth/user/update requests.
func (h *AuthHandler) HandleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, err)
		return
	}

	profile, err := h.service.UpdateUser(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"data":    profile,
		"message": "Profile updated successfully",
	})
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     refreshCookiePath,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieSecure,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     refreshCookieName,
		Value:    "",
		Path:     refreshCookiePath,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cookieSecure,
		MaxAge:   -1,
	})
}
