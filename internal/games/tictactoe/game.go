// Package tictactoe adapts the engine session to the tick-driven platform:
// cursor and mouse input, the computer's thinking delay on a simulated clock,
// and rendering into a core.Screen.
package tictactoe

import (
	"errors"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
	"github.com/vovakirdan/tui-tictactoe/internal/registry"
)

// Variant describes one registered board size.
type Variant struct {
	ID       string
	Title    string
	GridSize int
}

// Variants lists the boards registered with the platform.
var Variants = []Variant{
	{ID: "classic", Title: "Classic 3x3", GridSize: 3},
	{ID: "grid5", Title: "Grid 5x5", GridSize: 5},
	{ID: "grid7", Title: "Grid 7x7", GridSize: 7},
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// noticeSeconds is how long a rejected-move hint stays on screen.
const noticeSeconds = 2

// Game is one player session on a fixed board size.
type Game struct {
	variant Variant
	cfg     core.RuntimeConfig

	session *engine.Session
	clock   *engine.ManualClock
	events  []engine.Event

	tick   uint64
	cursor int

	notice      string
	noticeTicks int

	screenW int
	screenH int
}

// New creates a game for the variant. Call Reset before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// GridSize returns the board side length.
func (g *Game) GridSize() int {
	return g.variant.GridSize
}

// Reset starts a fresh session with the mode and difficulty from cfg.
// An invalid combination falls back to one player on hard.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tick = 0
	g.events = nil
	g.clearNotice()

	gc, err := engine.Configure(g.variant.GridSize, cfg.Mode, cfg.Difficulty)
	if err != nil {
		gc, _ = engine.Configure(g.variant.GridSize, engine.ModeOnePlayer, engine.DifficultyHard)
		g.setNotice("Unknown setup, playing 1P hard")
	}

	g.clock = engine.NewManualClock()
	session, err := engine.StartRound(gc,
		engine.WithSeed(cfg.Seed),
		engine.WithScheduler(g.clock),
		engine.WithAIDelay(cfg.AIDelay),
		engine.WithListener(g.record),
	)
	if err != nil {
		// gc came out of Configure, so StartRound accepts it
		panic(err)
	}
	g.session = session
	g.cursor = g.centerCell()
}

// Resize updates the screen size. The session is untouched.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
}

func (g *Game) record(ev engine.Event) {
	g.events = append(g.events, ev)
}

func (g *Game) centerCell() int {
	n := g.variant.GridSize
	return (n/2)*n + n/2
}

// Step applies one tick of input and advances the computer's clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch {
	case in.Has(core.ActionNewGame):
		g.session.ResetSession()
		g.cursor = g.centerCell()
		g.setNotice("New game, scores cleared")
	case in.Has(core.ActionRestart):
		g.session.ResetRound()
		g.cursor = g.centerCell()
		g.clearNotice()
	}

	g.moveCursor(in)

	if in.HasClick {
		if idx, ok := g.layout().cellAt(in.Click.X, in.Click.Y); ok {
			g.cursor = idx
			g.place(idx)
		}
	}
	if in.Has(core.ActionConfirm) {
		g.place(g.cursor)
	}

	g.clock.Advance(g.cfg.TickInterval())

	if g.noticeTicks > 0 {
		g.noticeTicks--
		if g.noticeTicks == 0 {
			g.notice = ""
		}
	}

	events := g.events
	g.events = nil
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) moveCursor(in core.InputFrame) {
	n := g.variant.GridSize
	row, col := g.cursor/n, g.cursor%n
	if in.Has(core.ActionUp) {
		row--
	}
	if in.Has(core.ActionDown) {
		row++
	}
	if in.Has(core.ActionLeft) {
		col--
	}
	if in.Has(core.ActionRight) {
		col++
	}
	row = core.Clamp(row, 0, n-1)
	col = core.Clamp(col, 0, n-1)
	g.cursor = row*n + col
}

func (g *Game) place(idx int) {
	if _, err := g.session.ApplyMove(idx); err != nil {
		g.setNotice(noticeFor(err))
		return
	}
	g.clearNotice()
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, engine.ErrCellOccupied):
		return "That cell is taken"
	case errors.Is(err, engine.ErrNotYourTurn):
		return "Wait for the computer"
	case errors.Is(err, engine.ErrGameOver):
		return "Round over, press R for the next one"
	case errors.Is(err, engine.ErrOutOfRange):
		return "No cell there"
	default:
		return err.Error()
	}
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeTicks = noticeSeconds * max(1, g.cfg.TickRate)
}

func (g *Game) clearNotice() {
	g.notice = ""
	g.noticeTicks = 0
}

// State returns scores, status and the game-over flag.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Scores:   g.session.Scores(),
		GameOver: g.session.IsOver(),
		Status:   g.session.Status(),
	}
}
