package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS returns a fully permissive middleware: any origin, any method, any
// request header, and every response header exposed. Credentials are not
// allowed, so the wildcard origin is always valid.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodHead,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
