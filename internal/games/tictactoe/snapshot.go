package tictactoe

import "github.com/vovakirdan/tui-tictactoe/internal/engine"

// Snapshot captures the game state for determinism testing.
type Snapshot struct {
	engine.Snapshot
	Tick   uint64
	Cursor int
	Notice string
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Snapshot: g.session.Snapshot(),
		Tick:     g.tick,
		Cursor:   g.cursor,
		Notice:   g.notice,
	}
}
