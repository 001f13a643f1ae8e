package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the frontend dev server and any deployed origin to call
// the API. Credentials stay off since there is no session model.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}
