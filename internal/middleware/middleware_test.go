package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

func TestWrapOrder(t *testing.T) {
	var order []string
	mark := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}
	h := Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}),
		mark("inner"), mark("outer"),
	)
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	h := Logging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/game/1", nil))

	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"uri":"/game/1"`)
}

func TestAuth(t *testing.T) {
	j := config.NewJWTWithSecret([]byte("secret"), time.Minute)
	token, err := j.Sign(j.NewGameClaims("game-1"))
	require.NoError(t, err)

	log := logrus.New()
	var got *config.GameClaims
	h := Auth(log, j)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = GameClaims(r.Context())
	}))

	tests := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{name: "header", header: "Bearer " + token, want: "game-1"},
		{name: "query", query: "?token=" + token, want: "game-1"},
		{name: "none"},
		{name: "garbage", header: "Bearer nope"},
		{name: "wrong scheme", header: "Basic " + token},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			r := httptest.NewRequest(http.MethodGet, "/game/1"+tt.query, nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), r)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.GameId)
		})
	}
}

func TestCorsPreflight(t *testing.T) {
	h := Cors()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	r := httptest.NewRequest(http.MethodOptions, "/game", nil)
	r.Header.Set("Origin", "http://example.com")
	r.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, "http://example.com", w.Header().Get("Access-Control-Allow-Origin"))
}
