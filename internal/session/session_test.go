package session

import (
	"context"
	"io"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}

func newTestStore(ttl time.Duration) (*Store, *clock) {
	c := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := NewStore(ttl,
		WithClock(c.Now),
		WithRand(func() *rand.Rand { return rand.New(rand.NewPCG(1, 2)) }),
	)
	return s, c
}

var params = mines.GameParams{Width: 9, Height: 9, MineCount: 10}

func TestCreateAndGet(t *testing.T) {
	s, c := newTestStore(time.Hour)

	session := s.Create(params)
	assert.Equal(t, c.Now(), session.StartedAt)
	assert.Nil(t, session.EndedAt())
	assert.Equal(t, 1, s.Len())

	got, err := s.Get(session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)

	got, err = s.Lookup(session.ID.String())
	require.NoError(t, err)
	assert.Same(t, session, got)

	_, err = s.Get(uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Lookup("not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)

	s.Delete(session.ID)
	_, err = s.Get(session.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDoStampsEnd(t *testing.T) {
	s, c := newTestStore(time.Hour)
	session := s.Create(params)

	session.Do(func(b *mines.Board) { b.ToggleFlag(4, 4) })
	c.Advance(time.Minute)
	session.Do(func(b *mines.Board) { b.Forfeit() })

	ended := session.EndedAt()
	require.NotNil(t, ended)
	assert.Equal(t, c.Now(), *ended)

	c.Advance(time.Minute)
	session.Do(func(b *mines.Board) {})
	assert.Equal(t, ended, session.EndedAt())
}

func TestDoSerializes(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	session := s.Create(mines.GameParams{Width: 30, Height: 16, MineCount: 99})
	session.Do(func(b *mines.Board) { b.Reveal(0, 0) })

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				session.Do(func(b *mines.Board) { b.HintReveal() })
			}
		}()
	}
	wg.Wait()

	session.Do(func(b *mines.Board) {
		assert.True(t, b.Won())
		assert.False(t, b.GameOver())
	})
}

func TestSweep(t *testing.T) {
	s, c := newTestStore(time.Hour)
	old := s.Create(params)
	c.Advance(45 * time.Minute)
	fresh := s.Create(params)
	c.Advance(30 * time.Minute)

	assert.Equal(t, 1, s.Sweep(c.Now()))
	_, err := s.Get(old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(fresh.ID)
	assert.NoError(t, err)

	fresh.Do(func(b *mines.Board) {})
	c.Advance(45 * time.Minute)
	assert.Zero(t, s.Sweep(c.Now()))
}

func TestRunStopsWithContext(t *testing.T) {
	s, _ := newTestStore(time.Hour)
	log := logrus.New()
	log.SetOutput(io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Millisecond, log) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
