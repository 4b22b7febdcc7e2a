package engine

// Phase is the turn manager state.
type Phase int

const (
	PhaseXTurn Phase = iota
	PhaseOTurn
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseXTurn:
		return "XTurn"
	case PhaseOTurn:
		return "OTurn"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// TurnManager tracks whose mark is active. GameOver is terminal until Reset.
type TurnManager struct {
	phase Phase
}

// NewTurnManager returns a manager with X to move.
func NewTurnManager() TurnManager {
	return TurnManager{phase: PhaseXTurn}
}

// Phase returns the current phase.
func (t TurnManager) Phase() Phase {
	return t.phase
}

// Current returns the mark to move, or Empty once the game is over.
func (t TurnManager) Current() Mark {
	switch t.phase {
	case PhaseXTurn:
		return X
	case PhaseOTurn:
		return O
	default:
		return Empty
	}
}

// IsOver reports whether the game has ended.
func (t TurnManager) IsOver() bool {
	return t.phase == PhaseGameOver
}

// Advance hands the turn to the other mark. No-op after game over.
func (t *TurnManager) Advance() {
	switch t.phase {
	case PhaseXTurn:
		t.phase = PhaseOTurn
	case PhaseOTurn:
		t.phase = PhaseXTurn
	}
}

// Finish moves to GameOver.
func (t *TurnManager) Finish() {
	t.phase = PhaseGameOver
}

// Reset returns to XTurn; the only way out of GameOver.
func (t *TurnManager) Reset() {
	t.phase = PhaseXTurn
}
