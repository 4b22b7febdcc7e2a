package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Session is the game controller for one player session: the frozen config,
// the current round and the scores that survive round resets.
//
// A Session is not safe for concurrent use. Front ends that schedule the
// computer reply on another goroutine must hold their own lock around every
// call and around the scheduled callback.
type Session struct {
	cfg    GameConfig
	board  Board
	turn   TurnManager
	winner Mark
	line   []int
	scores Scores

	strategy Strategy
	rng      *rand.Rand
	sched    Scheduler
	aiDelay  time.Duration
	listener func(Event)
	logger   *log.Logger

	pending    Timer
	generation uint64
}

// Option customises a Session.
type Option func(*Session)

// WithRand sets the random source used by the computer opponent.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSeed is WithRand with a fresh source seeded from seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithScheduler sets where delayed computer replies are scheduled.
func WithScheduler(sched Scheduler) Option {
	return func(s *Session) {
		s.sched = sched
	}
}

// WithAIDelay sets the pause before the computer replies.
// Zero plays the reply inside the human's ApplyMove call.
func WithAIDelay(d time.Duration) Option {
	return func(s *Session) {
		s.aiDelay = d
	}
}

// WithListener registers a callback receiving every accepted placement,
// human and computer, in order.
func WithListener(fn func(Event)) Option {
	return func(s *Session) {
		s.listener = fn
	}
}

// WithLogger sets the debug logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithStrategy overrides the computer strategy chosen from the config.
func WithStrategy(strategy Strategy) Option {
	return func(s *Session) {
		s.strategy = strategy
	}
}

// StartRound creates a session for cfg with an empty board and X to move.
func StartRound(cfg GameConfig, opts ...Option) (*Session, error) {
	// Re-validate: callers may build a GameConfig literal by hand.
	checked, err := Configure(cfg.GridSize, cfg.Mode, cfg.Difficulty)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   checked,
		board: NewBoard(checked.GridSize),
		turn:  NewTurnManager(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.strategy == nil {
		s.strategy = NewStrategy(checked, s.rng)
	}

	s.logger.Debug("round started", "config", checked.String())
	return s, nil
}

// ApplyMove places the active player's mark at index.
//
// Rejected moves return an error wrapping ErrInvalidMove and leave the session
// untouched: after game over, on an occupied or out-of-range cell, and in
// one-player mode while the computer is to move (including its thinking delay).
// In one-player mode an accepted human move that keeps the game going
// schedules the computer reply.
func (s *Session) ApplyMove(index int) (Event, error) {
	if s.turn.IsOver() {
		return s.reject(index, ErrGameOver)
	}

	mark := s.turn.Current()
	if s.cfg.HasAI() && mark == AIMark {
		return s.reject(index, ErrNotYourTurn)
	}

	ev, err := s.play(index, mark)
	if err != nil {
		return s.reject(index, err)
	}

	s.scheduleAI()
	return ev, nil
}

func (s *Session) reject(index int, err error) (Event, error) {
	s.logger.Debug("move rejected", "index", index, "error", err)
	return Event{}, err
}

// play places mark and resolves win, draw or turn hand-off.
func (s *Session) play(index int, mark Mark) (Event, error) {
	if err := s.board.Place(index, mark); err != nil {
		return Event{}, err
	}

	ev := Event{Kind: EventContinue, Mark: mark, Index: index}

	if res := CheckWinner(s.board, mark, s.cfg.WinStreak); res.Won {
		s.turn.Finish()
		s.winner = mark
		s.line = res.Line
		s.scores.add(mark)
		ev.Kind = EventWin
		ev.Line = cloneLine(res.Line)
		s.logger.Debug("round won", "mark", mark, "line", res.Line, "x", s.scores.X, "o", s.scores.O)
	} else if s.board.IsFull() {
		s.turn.Finish()
		ev.Kind = EventDraw
		s.logger.Debug("round drawn")
	} else {
		s.turn.Advance()
	}

	if s.listener != nil {
		s.listener(ev)
	}
	return ev, nil
}

// scheduleAI arranges the computer reply when it is the computer's turn.
func (s *Session) scheduleAI() {
	if !s.cfg.HasAI() || s.turn.Current() != AIMark {
		return
	}

	if s.aiDelay <= 0 || s.sched == nil {
		s.playAI()
		return
	}

	gen := s.generation
	s.pending = s.sched.AfterFunc(s.aiDelay, func() {
		s.firePending(gen)
	})
	s.logger.Debug("computer reply scheduled", "delay", s.aiDelay)
}

// firePending runs a scheduled reply unless the round it belongs to is gone.
func (s *Session) firePending(gen uint64) {
	if gen != s.generation {
		s.logger.Debug("stale computer reply ignored")
		return
	}
	s.pending = nil
	s.playAI()
}

func (s *Session) playAI() {
	if s.turn.IsOver() || s.turn.Current() != AIMark {
		return
	}

	idx := s.strategy.ChooseMove(s.board, AIMark, s.cfg.WinStreak)
	if idx == NoMove {
		// unreachable: a full board already ended the round
		s.logger.Error("computer found no move", "config", s.cfg.String())
		return
	}

	if _, err := s.play(idx, AIMark); err != nil {
		s.logger.Error("computer move failed", "index", idx, "error", err)
	}
}

// ResetRound clears the board and gives X the move. Scores are kept.
// A pending computer reply is cancelled.
func (s *Session) ResetRound() {
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.generation++

	s.board = NewBoard(s.cfg.GridSize)
	s.turn.Reset()
	s.winner = Empty
	s.line = nil
	s.logger.Debug("round reset", "x", s.scores.X, "o", s.scores.O)
}

// ResetSession is ResetRound with both scores set back to zero.
func (s *Session) ResetSession() {
	s.ResetRound()
	s.scores = Scores{}
}

// Config returns the frozen session config.
func (s *Session) Config() GameConfig {
	return s.cfg
}

// CurrentTurn returns the mark to move, or Empty when the round is over.
func (s *Session) CurrentTurn() Mark {
	return s.turn.Current()
}

// Phase returns the turn manager phase.
func (s *Session) Phase() Phase {
	return s.turn.Phase()
}

// IsOver reports whether the round has ended.
func (s *Session) IsOver() bool {
	return s.turn.IsOver()
}

// Scores returns the session scores.
func (s *Session) Scores() Scores {
	return s.scores
}

// Winner returns the winning mark, or Empty for a draw or an unfinished round.
func (s *Session) Winner() Mark {
	return s.winner
}

// WinningLine returns a copy of the winning cells, nil if nobody has won.
func (s *Session) WinningLine() []int {
	return cloneLine(s.line)
}

// Board returns a copy of the board.
func (s *Session) Board() Board {
	return s.board.Clone()
}

// AIThinking reports whether a computer reply is scheduled but has not run.
func (s *Session) AIThinking() bool {
	return s.pending != nil
}

// Status returns a one-line description of the round, e.g. "Turn for X".
func (s *Session) Status() string {
	switch {
	case s.turn.IsOver() && s.winner != Empty:
		return fmt.Sprintf("%s Won!", s.winner)
	case s.turn.IsOver():
		return "It's a Draw!"
	case s.AIThinking():
		return "Computer is thinking..."
	default:
		return fmt.Sprintf("Turn for %s", s.turn.Current())
	}
}

// Snapshot is a deep copy of the observable session state.
type Snapshot struct {
	Config     GameConfig
	Cells      []Mark
	Phase      Phase
	Turn       Mark
	Over       bool
	Winner     Mark
	Line       []int
	Scores     Scores
	AIThinking bool
}

// Snapshot returns the current state; safe to keep after further moves.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Config:     s.cfg,
		Cells:      s.board.Cells(),
		Phase:      s.turn.Phase(),
		Turn:       s.turn.Current(),
		Over:       s.turn.IsOver(),
		Winner:     s.winner,
		Line:       cloneLine(s.line),
		Scores:     s.scores,
		AIThinking: s.AIThinking(),
	}
}

func cloneLine(line []int) []int {
	if len(line) == 0 {
		return nil
	}
	out := make([]int, len(line))
	copy(out, line)
	return out
}
