package config

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

type Logging struct {
	Level logrus.Level
	File  string
	JSON  bool
}

func NewLogging() (*Logging, error) {
	development := Development()

	level := logrus.InfoLevel
	if development {
		level = logrus.DebugLevel
	}
	if s, ok := os.LookupEnv("LOG_LEVEL"); ok {
		l, err := logrus.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("unable to parse LOG_LEVEL: %w", err)
		}
		level = l
	}

	logging := &Logging{
		Level: level,
		File:  os.Getenv("LOG_FILE"),
		JSON:  !development,
	}

	return logging, nil
}
