package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

type CtxKey int

const (
	CtxGameClaims CtxKey = iota
)

// bearerToken reads the token from the Authorization header, falling
// back to the token query parameter browsers use for WebSockets.
func bearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		token, ok := strings.CutPrefix(h, "Bearer ")
		if ok {
			return strings.TrimSpace(token)
		}
		return ""
	}
	return r.URL.Query().Get("token")
}

// Auth attaches the game claims of a valid token to the request
// context. Requests without a valid token pass through unchanged; the
// handlers decide whether they need one.
func Auth(log logrus.FieldLogger, j *config.JWT) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				h.ServeHTTP(w, r)
				return
			}
			claims, err := j.ParseGameClaims(token)
			if err != nil {
				log.WithError(err).Debug("rejected game token")
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxGameClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GameClaims(ctx context.Context) (*config.GameClaims, bool) {
	claims, ok := ctx.Value(CtxGameClaims).(*config.GameClaims)
	return claims, ok
}
