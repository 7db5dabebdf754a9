package middleware

import (
	"crypto/subtle"
	"net/http"
)

// authHeader is the request header carrying the shared key.
const authHeader = "x-auth"

// NewAuthHandler returns a middleware that rejects requests whose x-auth
// header does not match key. Mount it on the storage routes only; health
// probes stay unauthenticated. The comparison is constant-time so response
// timing does not leak how much of the key matched.
func NewAuthHandler(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(authHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				w.Write([]byte(`{"status":"unauthorized"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
