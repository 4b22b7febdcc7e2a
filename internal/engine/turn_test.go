package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTurnManager(t *testing.T) {
	tm := NewTurnManager()
	assert.Equal(t, PhaseXTurn, tm.Phase())
	assert.Equal(t, X, tm.Current())

	tm.Advance()
	assert.Equal(t, PhaseOTurn, tm.Phase())
	assert.Equal(t, O, tm.Current())

	tm.Advance()
	assert.Equal(t, X, tm.Current())

	tm.Finish()
	assert.True(t, tm.IsOver())
	assert.Equal(t, Empty, tm.Current())

	tm.Advance()
	assert.Equal(t, PhaseGameOver, tm.Phase(), "advance is a no-op after game over")

	tm.Reset()
	assert.Equal(t, PhaseXTurn, tm.Phase())
	assert.False(t, tm.IsOver())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "XTurn", PhaseXTurn.String())
	assert.Equal(t, "OTurn", PhaseOTurn.String())
	assert.Equal(t, "GameOver", PhaseGameOver.String())
}
