package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

// New builds the process logger. Output goes to stderr and, when a log
// file is configured, to a rotated JSON file as well.
func New(cfg *config.Logging) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(cfg.Level)

	if cfg.JSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true, FullTimestamp: true})
	}

	if cfg.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   cfg.File,
			MaxSize:    50, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      cfg.Level,
			Formatter: &logrus.JSONFormatter{
				TimestampFormat: time.RFC3339,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("unable to open log file %s: %w", cfg.File, err)
		}
		log.AddHook(hook)
	}

	return log, nil
}
