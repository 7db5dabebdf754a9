package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

// statusBody is the envelope used by every response on this API.
// Successful list responses add a Data field; everything else carries only
// the status string, which clients surface verbatim.
type statusBody struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

// writeJSON encodes body as JSON with the given HTTP status code.
// Encoding failures are logged rather than propagated: headers are already
// written, so there is nothing useful left to send the client.
func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// writeStatus writes a bare status envelope, e.g. {"status":"invalid request"}.
func writeStatus(w http.ResponseWriter, code int, status string) {
	writeJSON(w, code, statusBody{Status: status})
}

// serverError logs an unexpected failure and writes a generic 500 envelope.
// The wrapped error chain stays in the log; clients only see "internal error".
func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	writeStatus(w, http.StatusInternalServerError, "internal error")
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.RecordService.Upsert: validation error: key is required" →
// "key is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
