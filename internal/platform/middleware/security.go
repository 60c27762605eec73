package middleware

import "net/http"

// Security sets response headers that are safe for a public, cross-origin API.
//
// Headers set:
//   - Cache-Control: no-store
//   - Cross-Origin-Resource-Policy: cross-origin (responses are readable from any origin)
//   - Referrer-Policy: no-referrer
//   - X-Content-Type-Options: nosniff
func Security() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set("Cache-Control", "no-store")
			h.Set("Cross-Origin-Resource-Policy", "cross-origin")
			h.Set("Referrer-Policy", "no-referrer")
			h.Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	}
}
