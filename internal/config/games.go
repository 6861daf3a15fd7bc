package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Games struct {
	TTL           time.Duration
	SweepInterval time.Duration
	MaxWidth      int
	MaxHeight     int
}

func lookupDuration(key string, fallback time.Duration) (time.Duration, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return d, nil
}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%s must be positive", key)
	}
	return n, nil
}

func NewGames() (*Games, error) {
	ttl, err := lookupDuration("GAME_TTL", time.Hour)
	if err != nil {
		return nil, err
	}
	sweep, err := lookupDuration("GAME_SWEEP_INTERVAL", time.Minute)
	if err != nil {
		return nil, err
	}
	maxWidth, err := lookupInt("GAME_MAX_WIDTH", 100)
	if err != nil {
		return nil, err
	}
	maxHeight, err := lookupInt("GAME_MAX_HEIGHT", 100)
	if err != nil {
		return nil, err
	}

	games := &Games{
		TTL:           ttl,
		SweepInterval: sweep,
		MaxWidth:      maxWidth,
		MaxHeight:     maxHeight,
	}

	return games, nil
}
