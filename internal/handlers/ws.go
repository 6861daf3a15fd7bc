package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

type wsLoop struct {
	log          logrus.FieldLogger
	conn         *websocket.Conn
	session      *session.Session
	writeTimeout time.Duration
}

func (l wsLoop) write(v any) error {
	if err := l.conn.SetWriteDeadline(time.Now().Add(l.writeTimeout)); err != nil {
		return err
	}
	if err := l.conn.WriteJSON(v); err != nil {
		return fmt.Errorf("unable to write json: %w", err)
	}
	return nil
}

// run applies every text message as a batch of commands and answers with
// the resulting state. Malformed batches are answered with an error and
// leave the board untouched.
func (l wsLoop) run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		mt, buf, err := l.conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}

		cmds, err := commands.ParseBatch(string(buf))
		if err != nil {
			if err := l.write(wrapError(err)); err != nil {
				return err
			}
			continue
		}

		res, err := snapshot(l.session, func(b *mines.Board) error {
			return commands.ApplyAll(b, cmds)
		})
		if err != nil {
			if err := l.write(wrapError(err)); err != nil {
				return err
			}
			continue
		}

		l.log.WithFields(logrus.Fields{
			"commands":  len(cmds),
			"game_over": res.GameOver,
			"won":       res.Won,
		}).Debug("applied ws batch")

		if err := l.write(res); err != nil {
			return err
		}
	}
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	s, ok := g.authorize(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.log.WithError(err).Error("unable to upgrade")
		return
	}
	defer conn.Close()

	log := g.log.WithField("game_id", s.ID.String())
	log.Debug("established WS connection")

	loop := wsLoop{
		log:          log,
		conn:         conn,
		session:      s,
		writeTimeout: g.ws.WriteTimeout,
	}

	// Send the current state right away so clients can render.
	res, _ := snapshot(s, nil)
	if err := loop.write(res); err != nil {
		log.WithError(err).Warn("error in ws loop")
		return
	}

	if err := loop.run(r.Context()); err != nil {
		if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			log.Debug("ws connection closed")
			return
		}
		log.WithError(err).Warn("error in ws loop")
	}
}
