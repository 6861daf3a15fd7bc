package config

import (
	"crypto/rand"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GameClaims ties a token to the single game it was issued for.
type GameClaims struct {
	GameId string `json:"game_id"`
	jwt.RegisteredClaims
}

type JWT struct {
	secret        []byte
	signingMethod jwt.SigningMethod
	tokenLifetime time.Duration
}

func loadSecret() ([]byte, error) {
	secret, ok := os.LookupEnv("SESSION_SECRET")
	if ok {
		return []byte(secret), nil
	}
	secretPath, ok := os.LookupEnv("SESSION_SECRET_FILE")
	if ok {
		data, err := os.ReadFile(secretPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read session secret: %w", err)
		}
		return []byte(strings.TrimSpace(string(data))), nil
	}
	// Games live in memory only, so a per-process secret is enough.
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("unable to generate session secret: %w", err)
	}
	return b, nil
}

func NewJWT(tokenLifetime time.Duration) (*JWT, error) {
	secret, err := loadSecret()
	if err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret is empty")
	}
	return NewJWTWithSecret(secret, tokenLifetime), nil
}

func NewJWTWithSecret(secret []byte, tokenLifetime time.Duration) *JWT {
	return &JWT{
		secret:        secret,
		signingMethod: jwt.SigningMethodHS256,
		tokenLifetime: tokenLifetime,
	}
}

func (j *JWT) NewGameClaims(gameId string) *GameClaims {
	now := time.Now()
	return &GameClaims{
		GameId: gameId,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenLifetime)),
		},
	}
}

func (j *JWT) Sign(claims jwt.Claims) (string, error) {
	return jwt.NewWithClaims(j.signingMethod, claims).SignedString(j.secret)
}

func (j *JWT) ParseGameClaims(tokenString string) (*GameClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&GameClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return j.secret, nil
		},
		jwt.WithValidMethods([]string{j.signingMethod.Alg()}),
	)
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*GameClaims)
	if !ok || claims.GameId == "" {
		return nil, fmt.Errorf("malformed claims")
	}
	return claims, nil
}
