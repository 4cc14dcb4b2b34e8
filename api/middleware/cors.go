package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

var defaultCORSOrigins = []string{
	"http://localhost:5173",               // local dev (vite)
	"https://hub.terramaster.ph",          // production console
	"https://terramaster-hub.vercel.app",  // Vercel domain
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   defaultCORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-TMH-Token", "Idempotency-Key", "X-Requested-With"},
		ExposedHeaders:   []string{"X-TMH-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
