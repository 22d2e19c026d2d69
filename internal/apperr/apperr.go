// Package apperr defines the closed set of errors the API can surface.
// Every user-visible failure maps to one Code carrying a fixed message and
// HTTP status; raw storage errors never reach a response body.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies one member of the error taxonomy.
type Code string

const (
	CodeMissingFields             Code = "MISSING_REQUIRED_FIELDS"
	CodeMissingAccessToken        Code = "MISSING_ACCESS_TOKEN"
	CodeMissingRefreshToken       Code = "MISSING_REFRESH_TOKEN"
	CodeInvalidAccessToken        Code = "INVALID_ACCESS_TOKEN"
	CodeInvalidRefreshToken       Code = "INVALID_REFRESH_TOKEN"
	CodeRefreshTokenNotFound      Code = "REFRESH_TOKEN_NOT_FOUND"
	CodeInvalidCredentials        Code = "INVALID_CREDENTIALS"
	CodeUserNotFound              Code = "USER_NOT_FOUND"
	CodeBlogNotFound              Code = "BLOG_NOT_FOUND"
	CodeEmailExists               Code = "EMAIL_ALREADY_EXISTS"
	CodeProfileExists             Code = "PROFILE_ALREADY_EXISTS"
	CodeProfileUpdateFieldMissing Code = "PROFILE_UPDATE_FIELD_MISSING"
	CodeServerError               Code = "SERVER_ERROR"
)

type entry struct {
	status  int
	message string
}

// taxonomy is the single place a code is bound to its status and the fixed
// user-facing message for it.
var taxonomy = map[Code]entry{
	CodeMissingFields:             {http.StatusBadRequest, "Required fields are missing"},
	CodeMissingAccessToken:        {http.StatusUnauthorized, "Access token is missing"},
	CodeMissingRefreshToken:       {http.StatusUnauthorized, "Refresh token is missing"},
	CodeInvalidAccessToken:        {http.StatusForbidden, "Invalid access token"},
	CodeInvalidRefreshToken:       {http.StatusForbidden, "Invalid refresh token"},
	CodeRefreshTokenNotFound:      {http.StatusForbidden, "Refresh token not found"},
	CodeInvalidCredentials:        {http.StatusUnauthorized, "Invalid credentials"},
	CodeUserNotFound:              {http.StatusNotFound, "User not found"},
	CodeBlogNotFound:              {http.StatusNotFound, "Blog not found"},
	CodeEmailExists:               {http.StatusConflict, "User with this Email already exists"},
	CodeProfileExists:             {http.StatusConflict, "User with this Profile name already exists"},
	CodeProfileUpdateFieldMissing: {http.StatusBadRequest, "User ID or Profile name is missing"},
	CodeServerError:               {http.StatusInternalServerError, "Oops! Server error. Please try again later."},
}

// Error is a tagged error carrying an HTTP status and a fixed user-facing
// message. An optional cause is kept for logging but never serialized.
type Error struct {
	Code    Code
	Status  int
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.cause)
	}
	return string(e.Code)
}

func (e *Error) Unwrap() error { return e.cause }

// Is makes two taxonomy errors with the same code equal under errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New returns the taxonomy error for code.
func New(code Code) *Error {
	ent, ok := taxonomy[code]
	if !ok {
		ent = taxonomy[CodeServerError]
	}
	return &Error{Code: code, Status: ent.status, Message: ent.message}
}

// Wrap returns the taxonomy error for code with cause attached for logging.
func Wrap(code Code, cause error) *Error {
	e := New(code)
	e.cause = cause
	return e
}

// WithStatus overrides the status of a copy of e. Used where an endpoint
// contract pins a different status than the taxonomy default.
func (e *Error) WithStatus(status int) *Error {
	clone := *e
	clone.Status = status
	return &clone
}

// From extracts the taxonomy error from err, or wraps err as a server error.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(CodeServerError, err)
}
