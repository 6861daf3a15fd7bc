package session

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Run sweeps the store every interval until ctx is done.
func (s *Store) Run(ctx context.Context, interval time.Duration, log logrus.FieldLogger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := s.Sweep(s.now()); n > 0 {
				log.WithFields(logrus.Fields{
					"evicted": n,
					"active":  s.Len(),
				}).Info("evicted idle game sessions")
			}
		}
	}
}
