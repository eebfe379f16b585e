package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/bookshelf/internal/common"
)

const maxBodyBytes = 1 << 20

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageBody{Message: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON body")
		return false
	}
	return true
}

// writeError maps service errors onto status codes. Validation errors carry
// their own text; anything unrecognized is logged and reported as 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		writeMessage(w, http.StatusBadRequest, "Email already registered")
	case errors.Is(err, common.ErrorUnauthorized):
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, common.ErrorForbidden):
		writeMessage(w, http.StatusForbidden, "Not authorized to access this book")
	case errors.Is(err, common.ErrorNotFound):
		writeMessage(w, http.StatusNotFound, "Book not found")
	default:
		h.logger.Error(r.Context(), "request failed", "path", r.URL.Path, "error", err.Error())
		writeMessage(w, http.StatusInternalServerError, "Internal server error")
	}
}
