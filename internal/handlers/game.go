package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/session"
)

var (
	ErrBoardTooLarge = errors.New("board too large")
	ErrNoToken       = errors.New("missing or invalid game token")
	ErrForeignToken  = errors.New("token belongs to another game")
)

type GameHandler struct {
	log   logrus.FieldLogger
	store *session.Store
	jwt   *config.JWT
	ws    *config.WebSocket
	games *config.Games
}

func NewGameHandler(
	log logrus.FieldLogger,
	store *session.Store,
	jwt *config.JWT,
	ws *config.WebSocket,
	games *config.Games,
) *GameHandler {
	handler := &GameHandler{
		log:   log,
		store: store,
		jwt:   jwt,
		ws:    ws,
		games: games,
	}

	return handler
}

func (g GameHandler) validate(params mines.GameParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	if params.Width > g.games.MaxWidth || params.Height > g.games.MaxHeight {
		return fmt.Errorf(
			"%w: at most %dx%d", ErrBoardTooLarge, g.games.MaxWidth, g.games.MaxHeight,
		)
	}
	return nil
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dto, err := ParseCreateNewGameDTO(query)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	params := mines.GameParams(dto)
	if err := g.validate(params); err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	// The first click may come with the request.
	var first *commands.Command
	if query.Has("x") || query.Has("y") {
		pos, err := ParsePosition(query)
		if err != nil {
			sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
			return
		}
		if !params.PointInBounds(pos.X, pos.Y) {
			sendErrorOrLog(w, g.log, http.StatusBadRequest, commands.ErrOutOfBounds)
			return
		}
		first = &commands.Command{Op: commands.Open, X: pos.X, Y: pos.Y}
	}

	s := g.store.Create(params)
	log := g.log.WithFields(logrus.Fields{
		"game_id": s.ID.String(),
		"params":  params.Seed(),
	})

	token, err := g.jwt.Sign(g.jwt.NewGameClaims(s.ID.String()))
	if err != nil {
		g.store.Delete(s.ID)
		w.WriteHeader(http.StatusInternalServerError)
		log.WithError(err).Error("unable to sign game token")
		return
	}

	res, err := snapshot(s, func(b *mines.Board) error {
		if first == nil {
			return nil
		}
		return first.Apply(b)
	})
	if err != nil {
		g.store.Delete(s.ID)
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	res.Token = token

	log.Debug("created game session")

	w.Header().Set("X-Game-Token", token)
	sendJSONOrLog(w, g.log, http.StatusCreated, res)
}

// authorize resolves the session named in the path and checks that the
// request carries that game's token.
func (g GameHandler) authorize(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	id := r.PathValue("id")
	s, err := g.store.Lookup(id)
	if errors.Is(err, session.ErrNotFound) {
		sendErrorOrLog(w, g.log, http.StatusNotFound, err)
		return nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.log.WithError(err).Error("unable to look up game session")
		return nil, false
	}

	claims, ok := middleware.GameClaims(r.Context())
	if !ok {
		sendErrorOrLog(w, g.log, http.StatusUnauthorized, ErrNoToken)
		return nil, false
	}
	if claims.GameId != s.ID.String() {
		sendErrorOrLog(w, g.log, http.StatusForbidden, ErrForeignToken)
		return nil, false
	}
	return s, true
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	s, ok := g.authorize(w, r)
	if !ok {
		return
	}
	res, _ := snapshot(s, nil)
	sendJSONOrLog(w, g.log, http.StatusOK, res)
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	op, err := ParseGameMove(query.Get("move"))
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	pos, err := ParsePosition(query)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	g.run(w, r, commands.Command{Op: op, X: pos.X, Y: pos.Y})
}

func (g GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, commands.Command{Op: commands.Hint})
}

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	g.run(w, r, commands.Command{Op: commands.Forfeit})
}

func (g GameHandler) run(w http.ResponseWriter, r *http.Request, cmd commands.Command) {
	s, ok := g.authorize(w, r)
	if !ok {
		return
	}

	res, err := snapshot(s, cmd.Apply)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	if res.GameOver || res.Won {
		g.log.WithFields(logrus.Fields{
			"game_id": res.GameSessionId,
			"command": cmd.String(),
			"won":     res.Won,
		}).Debug("game finished")
	}

	sendJSONOrLog(w, g.log, http.StatusOK, res)
}

// Mount registers the game routes under prefix.
func (g GameHandler) Mount(mux *http.ServeMux, prefix string) {
	mux.HandleFunc("POST "+prefix+"/game", g.NewGame)
	mux.HandleFunc("GET "+prefix+"/game/{id}", g.Fetch)
	mux.HandleFunc("POST "+prefix+"/game/{id}/move", g.MakeAMove)
	mux.HandleFunc("POST "+prefix+"/game/{id}/hint", g.Hint)
	mux.HandleFunc("POST "+prefix+"/game/{id}/forfeit", g.Forfeit)
	mux.HandleFunc("GET "+prefix+"/game/{id}/connect", g.ConnectWS)
}
