package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msoren/trip-atlas/internal/middleware"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

// TestAuthHandler_CorrectKey_PassesThrough verifies that a request carrying the
// configured shared key reaches the next handler.
func TestAuthHandler_CorrectKey_PassesThrough(t *testing.T) {
	h := middleware.NewAuthHandler("sekrit")(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/storage/collection", nil)
	req.Header.Set("x-auth", "sekrit")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

// TestAuthHandler_WrongKey_Returns401 verifies the unauthorized envelope for a
// request with a wrong key.
func TestAuthHandler_WrongKey_Returns401(t *testing.T) {
	h := middleware.NewAuthHandler("sekrit")(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/storage/collection", nil)
	req.Header.Set("x-auth", "wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"status":"unauthorized"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

// TestAuthHandler_MissingHeader_Returns401 verifies that an absent x-auth
// header is rejected the same way as a wrong one.
func TestAuthHandler_MissingHeader_Returns401(t *testing.T) {
	h := middleware.NewAuthHandler("sekrit")(okHandler)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/storage/collection", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestAuthHandler_HeaderNameIsCaseInsensitive verifies clients can send the
// header with any casing — net/http canonicalizes header names.
func TestAuthHandler_HeaderNameIsCaseInsensitive(t *testing.T) {
	h := middleware.NewAuthHandler("sekrit")(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/storage/collection", nil)
	req.Header.Set("X-Auth", "sekrit")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
