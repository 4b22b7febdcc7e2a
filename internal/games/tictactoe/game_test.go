package tictactoe

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

func testConfig(mutate func(*core.RuntimeConfig)) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	cfg.TickRate = 20 // 50ms per step
	cfg.AIDelay = 0
	if mutate != nil {
		mutate(&cfg)
	}
	return cfg
}

func newGame(t *testing.T, id string, mutate func(*core.RuntimeConfig)) *Game {
	t.Helper()
	rg, err := registry.Create(id)
	require.NoError(t, err)
	g, ok := rg.(*Game)
	require.True(t, ok)
	g.Reset(testConfig(mutate))
	return g
}

func twoPlayer(cfg *core.RuntimeConfig) {
	cfg.Mode = engine.ModeTwoPlayer
	cfg.Difficulty = engine.DifficultyNone
}

func clickCell(g *Game, idx int) core.InputFrame {
	x, y := g.layout().cellRect(idx).Center()
	in := core.NewInputFrame()
	in.SetClick(x, y)
	return in
}

func action(a core.Action) core.InputFrame {
	in := core.NewInputFrame()
	in.Set(a)
	return in
}

func findRow(s *core.Screen, text string) int {
	for y := range s.Height() {
		if strings.Contains(s.Row(y), text) {
			return y
		}
	}
	return -1
}

func TestVariantsAreRegistered(t *testing.T) {
	for _, v := range Variants {
		require.True(t, registry.Exists(v.ID), v.ID)
		g, err := registry.Create(v.ID)
		require.NoError(t, err)
		assert.Equal(t, v.GridSize, g.GridSize())
		assert.Equal(t, v.Title, g.Title())
	}

	id, ok := registry.ForGridSize(5)
	require.True(t, ok)
	assert.Equal(t, "grid5", id)
}

func TestCursorMovesAndClamps(t *testing.T) {
	g := newGame(t, "classic", twoPlayer)
	assert.Equal(t, 4, g.cursor, "starts in the centre")

	g.Step(action(core.ActionUp))
	g.Step(action(core.ActionUp))
	assert.Equal(t, 1, g.cursor)

	g.Step(action(core.ActionLeft))
	g.Step(action(core.ActionLeft))
	assert.Equal(t, 0, g.cursor)

	g.Step(action(core.ActionConfirm))
	assert.Equal(t, engine.X, g.session.Board().At(0))
}

func TestTwoPlayerWinByClicks(t *testing.T) {
	g := newGame(t, "classic", twoPlayer)

	var events []engine.Event
	for _, idx := range []int{0, 4, 1, 7, 2} {
		res := g.Step(clickCell(g, idx))
		events = append(events, res.Events...)
	}

	require.Len(t, events, 5)
	last := events[4]
	assert.Equal(t, engine.EventWin, last.Kind)
	assert.Equal(t, []int{0, 1, 2}, last.Line)

	state := g.State()
	assert.True(t, state.GameOver)
	assert.Equal(t, engine.Scores{X: 1}, state.Scores)
	assert.Equal(t, "X Won!", state.Status)
}

func TestClickOnGridLineIsIgnored(t *testing.T) {
	g := newGame(t, "classic", twoPlayer)
	l := g.layout()

	_, ok := l.cellAt(l.board.X, l.board.Y)
	assert.False(t, ok, "corner")
	_, ok = l.cellAt(l.board.X+l.cellW+1, l.board.Y+2)
	assert.False(t, ok, "vertical divider")
	_, ok = l.cellAt(0, 0)
	assert.False(t, ok, "outside the board")

	for i := range 9 {
		x, y := l.cellRect(i).Center()
		got, ok := l.cellAt(x, y)
		require.True(t, ok)
		assert.Equal(t, i, got)
	}
}

func TestComputerRepliesAfterDelay(t *testing.T) {
	g := newGame(t, "classic", func(cfg *core.RuntimeConfig) {
		cfg.Difficulty = engine.DifficultyHard
		cfg.AIDelay = 100 * time.Millisecond
	})

	res := g.Step(clickCell(g, 0))
	require.Len(t, res.Events, 1)
	assert.Equal(t, engine.X, res.Events[0].Mark)
	assert.Equal(t, "Computer is thinking...", res.State.Status)

	// clicking during the delay is rejected with a hint; the same step
	// reaches 100ms and fires the reply
	res = g.Step(clickCell(g, 8))
	assert.Equal(t, "Wait for the computer", g.notice)
	require.Len(t, res.Events, 1)
	assert.Equal(t, engine.O, res.Events[0].Mark)
	assert.Equal(t, engine.Empty, g.session.Board().At(8))
	assert.Equal(t, engine.O, g.session.Board().At(4))
	assert.Equal(t, "Turn for X", g.State().Status)
}

func TestRestartDuringDelayCancelsReply(t *testing.T) {
	g := newGame(t, "grid5", func(cfg *core.RuntimeConfig) {
		cfg.Difficulty = engine.DifficultyEasy
		cfg.AIDelay = 200 * time.Millisecond
	})

	g.Step(clickCell(g, 0))
	require.True(t, g.session.AIThinking())

	g.Step(action(core.ActionRestart))
	for range 20 {
		res := g.Step(core.NewInputFrame())
		require.Empty(t, res.Events)
	}

	assert.Len(t, g.session.Board().EmptyCells(), 25)
	assert.Equal(t, engine.X, g.session.CurrentTurn())
}

func TestRestartKeepsScoresNewGameClears(t *testing.T) {
	g := newGame(t, "classic", twoPlayer)
	for _, idx := range []int{0, 4, 1, 7, 2} {
		g.Step(clickCell(g, idx))
	}
	require.Equal(t, engine.Scores{X: 1}, g.State().Scores)

	g.Step(action(core.ActionRestart))
	assert.Equal(t, engine.Scores{X: 1}, g.State().Scores)
	assert.False(t, g.State().GameOver)

	g.Step(action(core.ActionNewGame))
	assert.Equal(t, engine.Scores{}, g.State().Scores)
	assert.Equal(t, "New game, scores cleared", g.notice)
}

func TestOccupiedCellNoticeExpires(t *testing.T) {
	g := newGame(t, "classic", twoPlayer)
	g.Step(clickCell(g, 4))
	g.Step(clickCell(g, 4))
	assert.Equal(t, "That cell is taken", g.notice)

	for range noticeSeconds * 20 {
		g.Step(core.NewInputFrame())
	}
	assert.Empty(t, g.notice)
}

func TestResizeKeepsSession(t *testing.T) {
	g := newGame(t, "classic", twoPlayer)
	g.Step(clickCell(g, 4))

	g.Resize(120, 40)

	assert.Equal(t, engine.X, g.session.Board().At(4))
	assert.Equal(t, engine.O, g.session.CurrentTurn())
}

func TestRenderHighlightsWinningLine(t *testing.T) {
	g := newGame(t, "classic", twoPlayer)
	for _, idx := range []int{0, 4, 1, 7, 2} {
		g.Step(clickCell(g, idx))
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	l := g.layout()

	assert.Equal(t, '┌', screen.Get(l.board.X, l.board.Y))
	assert.Equal(t, '┘', screen.Get(l.board.Right()-1, l.board.Bottom()-1))

	for _, idx := range []int{0, 1, 2} {
		cx, cy := l.cellRect(idx).Center()
		cell := screen.GetCell(cx, cy)
		assert.Equal(t, 'X', cell.Rune)
		assert.Equal(t, colorWin, cell.Color, "cell %d", idx)
	}

	cx, cy := l.cellRect(4).Center()
	assert.Equal(t, core.Cell{Rune: '│', Color: colorO}, screen.GetCell(cx-1, cy))

	assert.GreaterOrEqual(t, findRow(screen, "X Won!"), 0)
	assert.GreaterOrEqual(t, findRow(screen, "X: 1   O: 0"), 0)
	assert.GreaterOrEqual(t, findRow(screen, "3 in a row wins"), 0)
}

func TestLargestBoardFitsDefaultTerminal(t *testing.T) {
	g := newGame(t, "grid7", func(cfg *core.RuntimeConfig) {
		cfg.ShowCoordinates = true
	})
	l := g.layout()
	require.False(t, l.tooSmall)

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	cx, _ := l.cellRect(6).Center()
	assert.Equal(t, 'G', screen.Get(cx, l.board.Y-1))
	assert.GreaterOrEqual(t, findRow(screen, "5 in a row wins"), 0)
	assert.GreaterOrEqual(t, findRow(screen, "You: 0   Computer: 0"), 0)
}

func TestSmallWindowShowsOverlay(t *testing.T) {
	g := newGame(t, "grid7", func(cfg *core.RuntimeConfig) {
		cfg.ScreenW, cfg.ScreenH = 30, 10
	})

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	assert.GreaterOrEqual(t, findRow(screen, "Window too small"), 0)

	// clicks are ignored while the board is hidden
	res := g.Step(clickCell(g, 0))
	assert.Empty(t, res.Events)
}

func TestInvalidSetupFallsBack(t *testing.T) {
	g := newGame(t, "classic", func(cfg *core.RuntimeConfig) {
		cfg.Mode = engine.ModeOnePlayer
		cfg.Difficulty = engine.DifficultyNone
	})
	assert.Equal(t, engine.DifficultyHard, g.session.Config().Difficulty)
	assert.NotEmpty(t, g.notice)
}

func TestDeterminism(t *testing.T) {
	mutate := func(cfg *core.RuntimeConfig) {
		cfg.Difficulty = engine.DifficultyEasy
		cfg.AIDelay = 150 * time.Millisecond
		cfg.Seed = 12345
	}
	g1 := newGame(t, "grid5", mutate)
	g2 := newGame(t, "grid5", mutate)

	inputs := []core.InputFrame{
		action(core.ActionConfirm),
		core.NewInputFrame(),
		core.NewInputFrame(),
		core.NewInputFrame(),
		action(core.ActionUp),
		action(core.ActionConfirm),
	}
	for range 5 {
		for _, in := range inputs {
			g1.Step(in)
			g2.Step(in)
		}
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Less(t, len(g1.session.Board().EmptyCells()), 25)
}
