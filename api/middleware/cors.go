package middleware

import (
	"net/http"

	"github.com/eshop-labs/storefront-api/pkg/config"
	"github.com/go-chi/cors"
)

// CORS applies the configured allowed-origin policy. The storefront web
// client sends credentials, so a wildcard origin list is only usable in dev.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           cfg.MaxAgeSeconds,
	}).Handler
}
