package web

import "github.com/vovakirdan/tui-tictactoe/internal/engine"

// GameView is the JSON form of a game's state.
type GameView struct {
	ID         string     `json:"id"`
	GridSize   int        `json:"grid_size"`
	WinStreak  int        `json:"win_streak"`
	Mode       string     `json:"mode"`
	Difficulty string     `json:"difficulty,omitempty"`
	Board      []string   `json:"board"`
	Phase      string     `json:"phase"`
	Turn       string     `json:"turn,omitempty"`
	Over       bool       `json:"over"`
	Winner     string     `json:"winner,omitempty"`
	Line       []int      `json:"winning_line,omitempty"`
	Status     string     `json:"status"`
	AIThinking bool       `json:"ai_thinking"`
	Scores     ScoresView `json:"scores"`
}

// ScoresView is the JSON form of the session scores.
type ScoresView struct {
	X int `json:"x"`
	O int `json:"o"`
}

// EventView is the JSON form of an accepted placement.
type EventView struct {
	Kind  string `json:"kind"`
	Mark  string `json:"mark"`
	Index int    `json:"index"`
	Line  []int  `json:"winning_line,omitempty"`
}

// CreateRequest is the body of POST /api/games.
type CreateRequest struct {
	GridSize   int    `json:"grid_size"`
	Mode       string `json:"mode"`
	Difficulty string `json:"difficulty"`
}

// MoveRequest is the body of POST /api/games/{id}/moves.
type MoveRequest struct {
	Index *int `json:"index"`
}

// MoveResponse is returned for an accepted move.
type MoveResponse struct {
	State GameView  `json:"state"`
	Event EventView `json:"event"`
}

// ErrorResponse carries a failed request's message and, for rejected moves,
// the unchanged state.
type ErrorResponse struct {
	Error string    `json:"error"`
	State *GameView `json:"state,omitempty"`
}

func newGameView(id string, s *engine.Session) GameView {
	snap := s.Snapshot()

	board := make([]string, len(snap.Cells))
	for i, m := range snap.Cells {
		board[i] = m.String()
	}

	v := GameView{
		ID:         id,
		GridSize:   snap.Config.GridSize,
		WinStreak:  snap.Config.WinStreak,
		Mode:       snap.Config.Mode.String(),
		Board:      board,
		Phase:      snap.Phase.String(),
		Over:       snap.Over,
		Winner:     snap.Winner.String(),
		Line:       snap.Line,
		Status:     s.Status(),
		AIThinking: snap.AIThinking,
		Scores:     ScoresView{X: snap.Scores.X, O: snap.Scores.O},
	}
	if snap.Config.HasAI() {
		v.Difficulty = snap.Config.Difficulty.String()
	}
	if !snap.Over {
		v.Turn = snap.Turn.String()
	}
	return v
}

func newEventView(ev engine.Event) EventView {
	return EventView{
		Kind:  ev.Kind.String(),
		Mark:  ev.Mark.String(),
		Index: ev.Index,
		Line:  ev.Line,
	}
}
