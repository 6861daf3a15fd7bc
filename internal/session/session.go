package session

import (
	"errors"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var ErrNotFound = errors.New("game session not found")

// Session wraps one board with the lock every caller must go through.
type Session struct {
	ID        uuid.UUID
	StartedAt time.Time

	mu       sync.Mutex
	board    *mines.Board
	endedAt  *time.Time
	lastSeen time.Time
	now      func() time.Time
}

func newSession(board *mines.Board, now func() time.Time) *Session {
	t := now()
	return &Session{
		ID:        uuid.New(),
		StartedAt: t,
		board:     board,
		lastSeen:  t,
		now:       now,
	}
}

// Do runs fn with exclusive access to the board. The board must not be
// retained past fn.
func (s *Session) Do(fn func(b *mines.Board)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(s.board)

	s.lastSeen = s.now()
	if s.endedAt == nil && s.board.Terminal() {
		t := s.lastSeen
		s.endedAt = &t
	}
}

// EndedAt is nil while the game is in progress.
func (s *Session) EndedAt() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.endedAt
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	ttl      time.Duration
	now      func() time.Time
	newRand  func() *rand.Rand
}

type Option func(*Store)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithRand sets the generator factory used for each new board.
func WithRand(newRand func() *rand.Rand) Option {
	return func(s *Store) { s.newRand = newRand }
}

func NewStore(ttl time.Duration, opts ...Option) *Store {
	s := &Store{
		sessions: make(map[uuid.UUID]*Session),
		ttl:      ttl,
		now:      time.Now,
		newRand:  mines.NewRand,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Create(params mines.GameParams) *Session {
	session := newSession(mines.NewBoard(params, s.newRand()), s.now)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session, nil
}

// Lookup parses id before fetching the session.
func (s *Store) Lookup(id string) (*Session, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrNotFound
	}
	return s.Get(uid)
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Sweep drops sessions nobody touched for longer than the TTL and
// returns how many were dropped.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, session := range s.sessions {
		if now.Sub(session.idleSince()) > s.ttl {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}
