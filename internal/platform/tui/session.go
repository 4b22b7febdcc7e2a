package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// SessionModel manages the full flow for one player: setup -> game -> setup.
// It is the top-level model for `tictactoe menu` and for every SSH session.
type SessionModel struct {
	id       string
	config   core.RuntimeConfig
	last     Setup
	setup    SetupModel
	game     *Model
	logger   *log.Logger
	quitting bool
}

// NewSessionModel creates a new session model starting on the setup screen.
// An empty id is replaced with a random one.
func NewSessionModel(id string, cfg core.RuntimeConfig, initial Setup, logger *log.Logger) SessionModel {
	if id == "" {
		id = uuid.NewString()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return SessionModel{
		id:     id,
		config: cfg,
		last:   initial,
		setup:  NewSetupModel(initial, cfg.ScreenW, cfg.ScreenH),
		logger: logger.With("session", id),
	}
}

// ID returns the session identifier.
func (m SessionModel) ID() string {
	return m.id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.setup.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateSetup(msg)
}

// updateSetup handles updates on the setup screen.
func (m SessionModel) updateSetup(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.setup.Update(msg)
	if setupModel, ok := next.(SetupModel); ok {
		m.setup = setupModel
	}

	if m.setup.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.setup.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := registry.Create(selected.Variant)
	if err != nil {
		// setup only offers registered variants
		m.logger.Error("cannot create game", "variant", selected.Variant, "error", err)
		m.setup = NewSetupModel(m.last, m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}

	m.last = *selected
	cfg := m.config
	cfg.Mode = selected.Mode
	cfg.Difficulty = selected.Difficulty
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	gameModel := NewModel(game, cfg, m.logger)
	m.game = &gameModel
	return m, m.game.Init()
}

// updateGame handles updates while a game is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gameModel, ok := next.(Model); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToSetup() {
		m.game = nil
		m.setup = NewSetupModel(m.last, m.config.ScreenW, m.config.ScreenH)
		// the pending tick lands on the setup screen and is dropped
		return m, m.setup.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.setup.View()
}

// RunSession runs the setup and game flow in the current terminal.
func RunSession(cfg core.RuntimeConfig, initial Setup, logger *log.Logger) error {
	model := NewSessionModel("", cfg, initial, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
