package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/app"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/logging"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func main() {
	cfg, err := config.NewLogging()
	if err != nil {
		logrus.WithError(err).Fatal("failed to read logging config")
	}

	logger, err := logging.New(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("failed to set up logging")
	}

	mines.Log.SetLevel(logger.Level)
	mines.Log.SetFormatter(logger.Formatter)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	a := app.New(logger)
	if err := a.Start(ctx); err != nil {
		logger.WithError(err).Error("failed to start app")
		os.Exit(1)
	}
	logger.Info("server stopped")
}
