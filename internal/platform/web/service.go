// Package web exposes game sessions over a JSON HTTP API routed with chi.
// Sessions live in memory only and expire after a period of inactivity.
package web

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

// ErrNotFound is returned for unknown or expired game IDs.
var ErrNotFound = errors.New("game not found")

type game struct {
	id      string
	session *engine.Session
	created time.Time
	updated time.Time
}

// Service manages in-memory game sessions keyed by ID.
// Every session call and every delayed computer reply runs under mu.
type Service struct {
	mu    sync.Mutex
	games map[string]*game

	sched   engine.Scheduler
	aiDelay time.Duration
	ttl     time.Duration
	now     func() time.Time
	seed    func() int64
	logger  *log.Logger
}

// ServiceOption customises a Service.
type ServiceOption func(*Service)

// WithScheduler sets where delayed computer replies are scheduled.
func WithScheduler(sched engine.Scheduler) ServiceOption {
	return func(s *Service) {
		s.sched = sched
	}
}

// WithAIDelay sets the computer's thinking delay for new games.
func WithAIDelay(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.aiDelay = d
	}
}

// WithTTL sets how long an untouched game is kept. Zero keeps games forever.
func WithTTL(ttl time.Duration) ServiceOption {
	return func(s *Service) {
		s.ttl = ttl
	}
}

// WithNow overrides the wall clock used for expiry.
func WithNow(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

// WithSeed makes the computer opponents deterministic: game n uses seed+n.
func WithSeed(seed int64) ServiceOption {
	return func(s *Service) {
		next := seed
		s.seed = func() int64 {
			next++
			return next
		}
	}
}

// WithLogger sets the service logger.
func WithLogger(logger *log.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates an empty service.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{
		games:   make(map[string]*game),
		sched:   engine.RealScheduler{},
		aiDelay: 500 * time.Millisecond,
		now:     time.Now,
		seed:    func() int64 { return time.Now().UnixNano() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// lockedScheduler runs callbacks while holding the service lock, so a
// delayed reply never races a request touching the same session.
type lockedScheduler struct {
	mu    *sync.Mutex
	inner engine.Scheduler
}

func (l lockedScheduler) AfterFunc(d time.Duration, f func()) engine.Timer {
	return l.inner.AfterFunc(d, func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		f()
	})
}

// Create starts a new game and returns its first state.
func (s *Service) Create(gridSize int, mode engine.Mode, difficulty engine.Difficulty) (GameView, error) {
	cfg, err := engine.Configure(gridSize, mode, difficulty)
	if err != nil {
		return GameView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	session, err := engine.StartRound(cfg,
		engine.WithSeed(s.seed()),
		engine.WithScheduler(lockedScheduler{mu: &s.mu, inner: s.sched}),
		engine.WithAIDelay(s.aiDelay),
		engine.WithLogger(s.logger.With("game", id)),
	)
	if err != nil {
		return GameView{}, err
	}

	now := s.now()
	g := &game{id: id, session: session, created: now, updated: now}
	s.games[id] = g
	s.logger.Info("game created", "game", id, "config", cfg.String())
	return newGameView(id, session), nil
}

// Get returns the current state of a game.
func (s *Service) Get(id string) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return GameView{}, ErrNotFound
	}
	return newGameView(id, g.session), nil
}

// Move places the active player's mark. The event describes the accepted
// placement; a rejected move returns the untouched state with the error.
func (s *Service) Move(id string, index int) (GameView, engine.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return GameView{}, engine.Event{}, ErrNotFound
	}

	ev, err := g.session.ApplyMove(index)
	if err != nil {
		return newGameView(id, g.session), engine.Event{}, err
	}
	g.updated = s.now()
	if ev.Kind != engine.EventContinue {
		s.logger.Info("round finished", "game", id, "result", ev.String())
	}
	return newGameView(id, g.session), ev, nil
}

// ResetRound clears the board and keeps the scores.
func (s *Service) ResetRound(id string) (GameView, error) {
	return s.touch(id, (*engine.Session).ResetRound)
}

// ResetSession clears the board and zeroes the scores.
func (s *Service) ResetSession(id string) (GameView, error) {
	return s.touch(id, (*engine.Session).ResetSession)
}

func (s *Service) touch(id string, fn func(*engine.Session)) (GameView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return GameView{}, ErrNotFound
	}
	fn(g.session)
	g.updated = s.now()
	return newGameView(id, g.session), nil
}

// Delete drops a game and cancels any pending computer reply.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[id]
	if !ok {
		return ErrNotFound
	}
	g.session.ResetRound()
	delete(s.games, id)
	s.logger.Info("game deleted", "game", id)
	return nil
}

// Len returns the number of live games.
func (s *Service) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.games)
}

// Sweep removes games idle for longer than the TTL and returns how many it removed.
func (s *Service) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, g := range s.games {
		if g.updated.Before(cutoff) {
			g.session.ResetRound()
			delete(s.games, id)
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info("expired games removed", "count", removed, "remaining", len(s.games))
	}
	return removed
}

// RunSweeper sweeps every interval until ctx is cancelled.
func (s *Service) RunSweeper(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("web: sweep interval must be positive, got %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sweep()
		}
	}
}
