package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// Setup is the match chosen on the setup screen.
type Setup struct {
	Variant    string
	Mode       engine.Mode
	Difficulty engine.Difficulty
}

// SetupModel is the Bubble Tea model for choosing board, players and difficulty.
type SetupModel struct {
	variants   []registry.GameInfo
	table      table.Model
	mode       engine.Mode
	difficulty engine.Difficulty
	keys       SetupKeyMap
	help       help.Model
	width      int
	height     int
	quitting   bool
	selected   *Setup
}

// NewSetupModel creates a setup screen preselecting initial.
func NewSetupModel(initial Setup, width, height int) SetupModel {
	m := SetupModel{
		variants:   registry.List(),
		mode:       initial.Mode,
		difficulty: initial.Difficulty,
		keys:       DefaultSetupKeyMap(),
		help:       help.New(),
		width:      width,
		height:     height,
	}
	if m.mode != engine.ModeTwoPlayer {
		m.mode = engine.ModeOnePlayer
	}
	if m.difficulty != engine.DifficultyEasy {
		m.difficulty = engine.DifficultyHard
	}
	m.help.Width = width

	m.table = m.createTable()
	for i, v := range m.variants {
		if v.ID == initial.Variant {
			m.table.SetCursor(i)
		}
	}
	return m
}

// createTable builds the board list.
func (m SetupModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Board", Width: 14},
		{Title: "Grid", Width: 6},
		{Title: "To win", Width: 10},
	}

	rows := make([]table.Row, len(m.variants))
	for i, v := range m.variants {
		rows[i] = table.Row{
			v.Title,
			fmt.Sprintf("%dx%d", v.GridSize, v.GridSize),
			fmt.Sprintf("%d in a row", engine.WinStreak(v.GridSize)),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Init initializes the setup model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the setup screen.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Start):
			if len(m.variants) > 0 {
				s := m.current()
				m.selected = &s
			}
			return m, nil

		case key.Matches(msg, m.keys.Mode):
			if m.mode == engine.ModeOnePlayer {
				m.mode = engine.ModeTwoPlayer
			} else {
				m.mode = engine.ModeOnePlayer
			}
			return m, nil

		case key.Matches(msg, m.keys.Difficulty):
			if m.mode == engine.ModeOnePlayer {
				if m.difficulty == engine.DifficultyHard {
					m.difficulty = engine.DifficultyEasy
				} else {
					m.difficulty = engine.DifficultyHard
				}
			}
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.table.MoveUp(1)
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.table.MoveDown(1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

func (m SetupModel) current() Setup {
	s := Setup{Mode: m.mode, Difficulty: m.difficulty}
	if i := m.table.Cursor(); i >= 0 && i < len(m.variants) {
		s.Variant = m.variants[i].ID
	}
	if s.Mode == engine.ModeTwoPlayer {
		s.Difficulty = engine.DifficultyNone
	}
	return s
}

// View renders the setup screen.
func (m SetupModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T I C - T A C - T O E"), m.width))
	b.WriteString("\n\n")

	for _, line := range strings.Split(panelStyle.Render(m.table.View()), "\n") {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	players := "You (X) vs Computer (O)"
	difficulty := m.difficulty.String()
	if m.mode == engine.ModeTwoPlayer {
		players = "Two players, one keyboard"
		difficulty = "-"
	}
	b.WriteString(centerText(fmt.Sprintf("Players:    %s", players), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(fmt.Sprintf("Difficulty: %s", difficulty), m.width))
	b.WriteString("\n\n")

	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen setup, or nil if none selected yet.
func (m SetupModel) Selected() *Setup {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}
