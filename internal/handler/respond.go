package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/quillbox/quillbox-go/internal/apperr"
)

// validate checks request structs against their binding tags at the HTTP
// boundary, before anything reaches a workflow.
var validate = validator.New()

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps any error onto the closed taxonomy and writes its fixed
// message. Causes of server errors are logged, never returned.
func writeError(w http.ResponseWriter, err error) {
	e := apperr.From(err)
	if e.Status >= http.StatusInternalServerError {
		slog.Error("request failed", "code", e.Code, "error", err)
	}
	writeJSON(w, e.Status, map[string]string{"message": e.Message})
}

// decodeJSON decodes a bounded request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperr.New(apperr.CodeMissingFields)
	}
	return nil
}
