package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	t.Setenv("APP_ADDR", "9000")
	t.Setenv("APP_BASE_PATH", "/mines/")
	t.Setenv("DEVELOPMENT", "1")

	app, err := NewApp()
	require.NoError(t, err)
	assert.Equal(t, ":9000", app.Addr)
	assert.Equal(t, "/mines", app.BasePath)
	assert.True(t, app.Development)
}

func TestNewGamesDefaults(t *testing.T) {
	games, err := NewGames()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, games.TTL)
	assert.Equal(t, time.Minute, games.SweepInterval)
	assert.Equal(t, 100, games.MaxWidth)
	assert.Equal(t, 100, games.MaxHeight)
}

func TestNewGamesInvalid(t *testing.T) {
	tests := map[string]string{
		"GAME_TTL":            "soon",
		"GAME_SWEEP_INTERVAL": "-1s",
		"GAME_MAX_WIDTH":      "wide",
		"GAME_MAX_HEIGHT":     "0",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := NewGames()
			assert.ErrorContains(t, err, key)
		})
	}
}

func TestNewLogging(t *testing.T) {
	t.Setenv("DEVELOPMENT", "0")
	t.Setenv("LOG_FILE", "/tmp/mines.log")

	logging, err := NewLogging()
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, logging.Level)
	assert.Equal(t, "/tmp/mines.log", logging.File)
	assert.True(t, logging.JSON)

	t.Setenv("LOG_LEVEL", "loud")
	_, err = NewLogging()
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWTWithSecret([]byte("secret"), time.Minute)

	token, err := j.Sign(j.NewGameClaims("abc"))
	require.NoError(t, err)

	claims, err := j.ParseGameClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "abc", claims.GameId)

	other := NewJWTWithSecret([]byte("other"), time.Minute)
	_, err = other.ParseGameClaims(token)
	assert.ErrorIs(t, err, jwt.ErrSignatureInvalid)
}

func TestJWTExpired(t *testing.T) {
	j := NewJWTWithSecret([]byte("secret"), -time.Minute)
	token, err := j.Sign(j.NewGameClaims("abc"))
	require.NoError(t, err)

	_, err = j.ParseGameClaims(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "secret")
	require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))
	t.Setenv("SESSION_SECRET_FILE", path)

	j, err := NewJWT(time.Minute)
	require.NoError(t, err)
	assert.Equal(t, []byte("from-file"), j.secret)
}
