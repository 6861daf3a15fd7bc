package app

import (
	"github.com/vancomm/minesweeper-engine/internal/handlers"
)

func (a *App) loadRoutes() {
	prefix := a.config.BasePath

	game := handlers.NewGameHandler(a.logger, a.store, a.jwt, a.ws, a.games)
	game.Mount(a.router, prefix)

	a.router.HandleFunc("GET "+prefix+"/health", handlers.Health)
}
