package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"

	_ "github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig(mode engine.Mode, difficulty engine.Difficulty) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = 80
	cfg.ScreenH = 24
	cfg.Seed = 3
	cfg.Mode = mode
	cfg.Difficulty = difficulty
	cfg.AIDelay = 0
	return cfg
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{runes("s"), core.ActionDown},
		{runes("h"), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm},
		{runes("r"), core.ActionRestart},
		{runes("n"), core.ActionNewGame},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runes("q"), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runes("?"), core.ActionNone},
		{runes("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, keys.Action(tt.msg))
		})
	}
}

func TestSetupModelSelect(t *testing.T) {
	m := NewSetupModel(Setup{Variant: "classic", Mode: engine.ModeOnePlayer, Difficulty: engine.DifficultyHard}, 80, 24)
	assert.Nil(t, m.Selected())

	next, _ := m.Update(runes("j"))
	m = next.(SetupModel)
	next, _ = m.Update(runes("d"))
	m = next.(SetupModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SetupModel)

	require.NotNil(t, m.Selected())
	assert.Equal(t, Setup{Variant: "grid5", Mode: engine.ModeOnePlayer, Difficulty: engine.DifficultyEasy}, *m.Selected())
}

func TestSetupModelTwoPlayerDropsDifficulty(t *testing.T) {
	m := NewSetupModel(Setup{Variant: "grid7"}, 80, 24)

	next, _ := m.Update(runes("m"))
	m = next.(SetupModel)
	assert.Contains(t, m.View(), "Two players")

	// difficulty is locked in two-player mode
	next, _ = m.Update(runes("d"))
	m = next.(SetupModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(SetupModel)

	require.NotNil(t, m.Selected())
	assert.Equal(t, "grid7", m.Selected().Variant)
	assert.Equal(t, engine.ModeTwoPlayer, m.Selected().Mode)
	assert.Equal(t, engine.DifficultyNone, m.Selected().Difficulty)
}

func TestSetupModelQuit(t *testing.T) {
	m := NewSetupModel(Setup{}, 80, 24)
	next, cmd := m.Update(runes("q"))
	assert.True(t, next.(SetupModel).IsQuitting())
	assert.NotNil(t, cmd)
}

func TestModelPlaysOnTick(t *testing.T) {
	game, err := registry.Create("classic")
	require.NoError(t, err)

	m := NewModel(game, testConfig(engine.ModeTwoPlayer, engine.DifficultyNone), nil)
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, cmd := m.Update(TickMsg{})
	m = next.(Model)

	assert.NotNil(t, cmd, "tick loop continues")
	assert.Equal(t, "Turn for O", m.State().Status)
	assert.Contains(t, m.View(), "X")
}

func TestModelBackAndQuit(t *testing.T) {
	game, err := registry.Create("classic")
	require.NoError(t, err)
	m := NewModel(game, testConfig(engine.ModeOnePlayer, engine.DifficultyHard), nil)
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, next.(Model).BackToSetup())

	next, cmd := m.Update(runes("q"))
	assert.True(t, next.(Model).IsQuitting())
	assert.NotNil(t, cmd)
	assert.Empty(t, next.(Model).View())
}

func TestModelResizeKeepsGame(t *testing.T) {
	game, err := registry.Create("classic")
	require.NoError(t, err)
	m := NewModel(game, testConfig(engine.ModeTwoPlayer, engine.DifficultyNone), nil)
	m.Init()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(Model)
	next, _ = m.Update(TickMsg{})
	m = next.(Model)

	assert.Equal(t, "Turn for O", m.State().Status)
}

func TestSessionModelFlow(t *testing.T) {
	s := NewSessionModel("", testConfig(engine.ModeOnePlayer, engine.DifficultyHard),
		Setup{Variant: "classic", Mode: engine.ModeTwoPlayer}, nil)
	assert.NotEmpty(t, s.ID())
	assert.Contains(t, s.View(), "T I C - T A C - T O E")

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	require.NotNil(t, s.game, "enter starts the game")
	assert.NotNil(t, cmd)

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	assert.Equal(t, "Turn for O", s.game.State().Status)

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	assert.Nil(t, s.game, "esc returns to setup")
	assert.True(t, strings.Contains(s.View(), "Two players"), "setup keeps the last choice")

	next, _ = s.Update(TickMsg{})
	s = next.(SessionModel)
	assert.Nil(t, s.game, "stale tick is dropped on the setup screen")

	next, cmd = s.Update(runes("q"))
	s = next.(SessionModel)
	assert.NotNil(t, cmd)
	assert.Empty(t, s.View())
}
