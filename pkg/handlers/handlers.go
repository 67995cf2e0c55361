// Package handlers provides HTTP response utilities for JSON APIs.
// These stateless functions standardize response formatting across handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// InternalErrorMessage is the only detail a client sees for a 500.
const InternalErrorMessage = "Something went wrong!"

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs the error and writes a JSON error response.
// Client errors carry {"error": "<error message>"}; any 5xx status is
// handed to RespondInternalError so internals never reach the client.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		RespondInternalError(w, logger, err)
		return
	}
	logger.Warn("request rejected", "error", err, "status", status)
	RespondJSON(w, status, map[string]string{"error": err.Error()})
}

// RespondInternalError logs err and writes a 500 with a generic
// {"message": "Something went wrong!"} body.
func RespondInternalError(w http.ResponseWriter, logger *slog.Logger, err error) {
	logger.Error("handler error", "error", err, "status", http.StatusInternalServerError)
	RespondJSON(w, http.StatusInternalServerError, map[string]string{"message": InternalErrorMessage})
}
