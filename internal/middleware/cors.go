package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

func Cors(allowedOrigins ...string) Middleware {
	options := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"X-Game-Token"},
	}
	if len(allowedOrigins) == 0 {
		options.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	return cors.New(options).Handler
}
