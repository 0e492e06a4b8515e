package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS creates a new CORS middleware with the given allowed origins
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			UserIDHeader,
			RequestIDHeader,
		},
		ExposedHeaders:   []string{"Content-Type", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
