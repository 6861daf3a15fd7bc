package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	logger *logrus.Logger
	router *http.ServeMux
	config *config.App
	games  *config.Games
	jwt    *config.JWT
	ws     *config.WebSocket
	store  *session.Store
}

func New(logger *logrus.Logger) *App {
	router := http.NewServeMux()

	app := &App{
		logger: logger,
		router: router,
	}

	return app
}

// configure loads every config concern and prepares the router.
func (a *App) configure() error {
	cfg, err := config.NewApp()
	if err != nil {
		return err
	}
	a.config = cfg

	games, err := config.NewGames()
	if err != nil {
		return err
	}
	a.games = games

	jwt, err := config.NewJWT(games.TTL)
	if err != nil {
		return fmt.Errorf("unable to set up game tokens: %w", err)
	}
	a.jwt = jwt

	ws, err := config.NewWebSocket()
	if err != nil {
		return err
	}
	a.ws = ws

	a.store = session.NewStore(games.TTL)

	a.loadRoutes()

	return nil
}

func (a *App) handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Auth(a.logger, a.jwt),
		middleware.Cors(),
		middleware.Logging(a.logger),
	)
}

func (a *App) Start(ctx context.Context) error {
	if err := a.configure(); err != nil {
		return err
	}

	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.handler(),
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.logger.WithField("addr", a.config.Addr).Info("server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("unable to listen and serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	})

	g.Go(func() error {
		return a.store.Run(gCtx, a.games.SweepInterval, a.logger.WithField("component", "janitor"))
	})

	return g.Wait()
}
