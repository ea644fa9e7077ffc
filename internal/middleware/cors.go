// Package middleware provides the HTTP middleware shared by the Fletes API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// exposedHeaders are readable by browser clients. Report downloads need the
// file name and the report id.
var exposedHeaders = []string{"Content-Disposition", "X-Report-Id", "X-Request-Id"}

// NewCORSHandler returns a middleware that applies CORS headers for the given
// origins. Each origin must be scheme + host with no trailing slash.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
		ExposedHeaders: exposedHeaders,
	})
	return c.Handler
}
