package web

// errors.go provides unified error response handling for the web layer.
// Technical errors are logged server-side with the request id for
// correlation; clients receive a stable JSON shape.

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError logs the technical error and writes a JSON error body.
func respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int, code string) {
	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"code", code,
		"request_id", middleware.GetReqID(r.Context()),
	)
	writeErrorCode(w, statusCode, err.Error(), code)
}

// writeError writes a JSON error body without logging. Used for client
// mistakes that carry no server-side context worth recording.
func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeErrorCode(w, statusCode, msg, "bad_request")
}

func writeErrorCode(w http.ResponseWriter, statusCode int, msg, code string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg, Code: code})
}

// writeJSON encodes v as the response body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already written; nothing to do but log.
		slog.Error("response encode failed", "error", err)
	}
}
