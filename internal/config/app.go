package config

import (
	"os"
	"strings"
)

type App struct {
	Addr        string
	BasePath    string
	Development bool
}

func NewApp() (*App, error) {
	addr, ok := os.LookupEnv("APP_ADDR")
	if !ok || addr == "" {
		addr = ":8080"
	}
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	app := &App{
		Addr:        addr,
		BasePath:    strings.TrimSuffix(os.Getenv("APP_BASE_PATH"), "/"),
		Development: Development(),
	}
	return app, nil
}
