package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scripted plays a fixed list of cells in order.
type scripted struct {
	moves []int
}

func (s *scripted) ChooseMove(b Board, _ Mark, _ int) int {
	if len(s.moves) == 0 {
		return NoMove
	}
	next := s.moves[0]
	s.moves = s.moves[1:]
	return next
}

// stickyScheduler hands out timers whose Stop always loses the race.
type stickyScheduler struct {
	fns []func()
}

type lostTimer struct{}

func (lostTimer) Stop() bool { return false }

func (s *stickyScheduler) AfterFunc(_ time.Duration, f func()) Timer {
	s.fns = append(s.fns, f)
	return lostTimer{}
}

func twoPlayer(t *testing.T, size int, opts ...Option) *Session {
	t.Helper()
	cfg, err := Configure(size, ModeTwoPlayer, DifficultyNone)
	require.NoError(t, err)
	s, err := StartRound(cfg, opts...)
	require.NoError(t, err)
	return s
}

func onePlayer(t *testing.T, size int, difficulty Difficulty, opts ...Option) *Session {
	t.Helper()
	cfg, err := Configure(size, ModeOnePlayer, difficulty)
	require.NoError(t, err)
	s, err := StartRound(cfg, opts...)
	require.NoError(t, err)
	return s
}

func playAll(t *testing.T, s *Session, moves ...int) []Event {
	t.Helper()
	var events []Event
	for _, m := range moves {
		ev, err := s.ApplyMove(m)
		require.NoError(t, err, "move %d", m)
		events = append(events, ev)
	}
	return events
}

func TestStartRound(t *testing.T) {
	s := twoPlayer(t, 5)
	assert.Equal(t, X, s.CurrentTurn())
	assert.Equal(t, PhaseXTurn, s.Phase())
	assert.Len(t, s.Board().EmptyCells(), 25)
	assert.Equal(t, Scores{}, s.Scores())
	assert.Equal(t, "Turn for X", s.Status())
}

func TestStartRoundRejectsBadConfig(t *testing.T) {
	_, err := StartRound(GameConfig{GridSize: 4, Mode: ModeTwoPlayer})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTopRowWin(t *testing.T) {
	s := twoPlayer(t, 3)
	events := playAll(t, s, 0, 4, 1, 7, 2)

	for _, ev := range events[:4] {
		assert.Equal(t, EventContinue, ev.Kind)
	}
	last := events[4]
	assert.Equal(t, EventWin, last.Kind)
	assert.Equal(t, X, last.Mark)
	assert.Equal(t, []int{0, 1, 2}, last.Line)

	assert.Equal(t, Scores{X: 1, O: 0}, s.Scores())
	assert.True(t, s.IsOver())
	assert.Equal(t, X, s.Winner())
	assert.Equal(t, []int{0, 1, 2}, s.WinningLine())
	assert.Equal(t, "X Won!", s.Status())
}

func TestFullBoardDraw(t *testing.T) {
	s := twoPlayer(t, 3)
	events := playAll(t, s, 0, 1, 2, 4, 3, 6, 7, 5, 8)

	for _, ev := range events[:8] {
		require.Equal(t, EventContinue, ev.Kind)
	}
	assert.Equal(t, EventDraw, events[8].Kind)
	assert.Equal(t, Scores{}, s.Scores())
	assert.Equal(t, Empty, s.Winner())
	assert.Nil(t, s.WinningLine())
	assert.Equal(t, "It's a Draw!", s.Status())
}

func TestFiveByFiveNeedsFour(t *testing.T) {
	s := twoPlayer(t, 5)
	events := playAll(t, s, 0, 5, 1, 6, 2, 7)
	for _, ev := range events {
		require.Equal(t, EventContinue, ev.Kind, "three in a row is not a win on 5x5")
	}

	ev, err := s.ApplyMove(3)
	require.NoError(t, err)
	assert.Equal(t, EventWin, ev.Kind)
	assert.Equal(t, []int{0, 1, 2, 3}, ev.Line)
}

func TestRejectedMovesLeaveStateUntouched(t *testing.T) {
	t.Run("occupied", func(t *testing.T) {
		s := twoPlayer(t, 3)
		playAll(t, s, 4)
		before := s.Snapshot()

		_, err := s.ApplyMove(4)
		require.ErrorIs(t, err, ErrCellOccupied)
		require.ErrorIs(t, err, ErrInvalidMove)
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("out of range", func(t *testing.T) {
		s := twoPlayer(t, 3)
		before := s.Snapshot()

		for _, idx := range []int{-1, 9, 100} {
			_, err := s.ApplyMove(idx)
			require.ErrorIs(t, err, ErrOutOfRange)
		}
		assert.Equal(t, before, s.Snapshot())
	})

	t.Run("after game over", func(t *testing.T) {
		s := twoPlayer(t, 3)
		playAll(t, s, 0, 4, 1, 7, 2)
		before := s.Snapshot()

		for _, idx := range []int{3, 5, 8} {
			_, err := s.ApplyMove(idx)
			require.ErrorIs(t, err, ErrGameOver)
		}
		assert.Equal(t, before, s.Snapshot())
		assert.Equal(t, Scores{X: 1}, s.Scores(), "score counted once")
	})
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := twoPlayer(t, 3)
	playAll(t, s, 0, 4, 1, 7, 2)

	snap := s.Snapshot()
	snap.Cells[5] = O
	snap.Line[0] = 8

	assert.Equal(t, Empty, s.Board().At(5))
	assert.Equal(t, []int{0, 1, 2}, s.WinningLine())
}

func TestResetRoundKeepsScores(t *testing.T) {
	s := twoPlayer(t, 3)
	playAll(t, s, 0, 4, 1, 7, 2)

	s.ResetRound()

	assert.Equal(t, Scores{X: 1}, s.Scores())
	assert.Equal(t, X, s.CurrentTurn())
	assert.False(t, s.IsOver())
	assert.Nil(t, s.WinningLine())
	assert.Len(t, s.Board().EmptyCells(), 9)
}

func TestResetRoundThenMoveMatchesFreshSession(t *testing.T) {
	used := twoPlayer(t, 3)
	playAll(t, used, 0, 4, 1, 7, 2)
	used.ResetRound()
	playAll(t, used, 4)

	fresh := twoPlayer(t, 3)
	playAll(t, fresh, 4)

	got := used.Snapshot()
	want := fresh.Snapshot()
	got.Scores = Scores{}
	assert.Equal(t, want, got)
}

func TestResetSessionClearsScores(t *testing.T) {
	s := twoPlayer(t, 3)
	playAll(t, s, 0, 4, 1, 7, 2)
	s.ResetRound()
	playAll(t, s, 3, 0, 4, 1, 8, 2)
	require.Equal(t, Scores{X: 1, O: 1}, s.Scores())

	s.ResetSession()

	assert.Equal(t, Scores{}, s.Scores())
	assert.Equal(t, X, s.CurrentTurn())
	assert.Len(t, s.Board().EmptyCells(), 9)
}

func TestOnePlayerInlineReply(t *testing.T) {
	var events []Event
	s := onePlayer(t, 3, DifficultyHard, WithListener(func(ev Event) {
		events = append(events, ev)
	}))

	ev, err := s.ApplyMove(0)
	require.NoError(t, err)

	assert.Equal(t, Event{Kind: EventContinue, Mark: X, Index: 0}, ev)
	require.Len(t, events, 2)
	assert.Equal(t, X, events[0].Mark)
	assert.Equal(t, O, events[1].Mark)
	assert.Equal(t, 4, events[1].Index, "only the centre holds against a corner opening")
	assert.Equal(t, X, s.CurrentTurn())
}

func TestOnePlayerComputerWinScores(t *testing.T) {
	s := onePlayer(t, 3, DifficultyHard, WithStrategy(&scripted{moves: []int{3, 4, 5}}))

	playAll(t, s, 0, 1)
	ev, err := s.ApplyMove(8)
	require.NoError(t, err)
	assert.Equal(t, EventContinue, ev.Kind)

	assert.True(t, s.IsOver())
	assert.Equal(t, O, s.Winner())
	assert.Equal(t, []int{3, 4, 5}, s.WinningLine())
	assert.Equal(t, Scores{O: 1}, s.Scores())
}

func TestOnePlayerDelayedReply(t *testing.T) {
	clock := NewManualClock()
	var events []Event
	s := onePlayer(t, 3, DifficultyHard,
		WithScheduler(clock),
		WithAIDelay(500*time.Millisecond),
		WithListener(func(ev Event) { events = append(events, ev) }),
	)

	playAll(t, s, 0)
	assert.True(t, s.AIThinking())
	assert.Equal(t, O, s.CurrentTurn())
	assert.Equal(t, "Computer is thinking...", s.Status())
	require.Len(t, events, 1)

	// the human cannot move while the computer thinks
	before := s.Snapshot()
	_, err := s.ApplyMove(1)
	require.ErrorIs(t, err, ErrNotYourTurn)
	assert.Equal(t, before, s.Snapshot())

	assert.Equal(t, 0, clock.Advance(499*time.Millisecond))
	assert.True(t, s.AIThinking())

	assert.Equal(t, 1, clock.Advance(time.Millisecond))
	assert.False(t, s.AIThinking())
	require.Len(t, events, 2)
	assert.Equal(t, O, events[1].Mark)
	assert.Equal(t, X, s.CurrentTurn())
}

func TestResetDuringDelayCancelsReply(t *testing.T) {
	clock := NewManualClock()
	var events []Event
	s := onePlayer(t, 5, DifficultyEasy,
		WithSeed(1),
		WithScheduler(clock),
		WithAIDelay(time.Second),
		WithListener(func(ev Event) { events = append(events, ev) }),
	)

	playAll(t, s, 12)
	require.True(t, s.AIThinking())

	s.ResetRound()

	assert.False(t, s.AIThinking())
	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, 0, clock.Advance(time.Hour))
	assert.Len(t, events, 1, "no computer move after reset")
	assert.Len(t, s.Board().EmptyCells(), 25)
	assert.Equal(t, X, s.CurrentTurn())
}

func TestStaleReplyIsIgnored(t *testing.T) {
	sched := &stickyScheduler{}
	s := onePlayer(t, 3, DifficultyEasy,
		WithSeed(1),
		WithScheduler(sched),
		WithAIDelay(time.Second),
	)

	playAll(t, s, 0)
	require.Len(t, sched.fns, 1)

	s.ResetRound()
	playAll(t, s, 8)
	require.Len(t, sched.fns, 2)

	// the first callback belongs to the cancelled round
	sched.fns[0]()
	assert.True(t, s.AIThinking())
	assert.Len(t, s.Board().EmptyCells(), 8)

	sched.fns[1]()
	assert.False(t, s.AIThinking())
	assert.Len(t, s.Board().EmptyCells(), 7)
	assert.Equal(t, X, s.CurrentTurn())
}

func TestTwoPlayerNeverSchedules(t *testing.T) {
	clock := NewManualClock()
	s := twoPlayer(t, 3, WithScheduler(clock), WithAIDelay(time.Second))

	playAll(t, s, 0)
	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, O, s.CurrentTurn())

	_, err := s.ApplyMove(1)
	require.NoError(t, err, "O is a human in two-player mode")
}
