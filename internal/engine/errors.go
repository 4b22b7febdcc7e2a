package engine

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the engine.
// Every move rejection satisfies errors.Is(err, ErrInvalidMove).
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrInvalidMove   = errors.New("invalid move")

	ErrOutOfRange   = fmt.Errorf("%w: cell out of range", ErrInvalidMove)
	ErrCellOccupied = fmt.Errorf("%w: cell is already occupied", ErrInvalidMove)
	ErrGameOver     = fmt.Errorf("%w: game is already over", ErrInvalidMove)
	ErrNotYourTurn  = fmt.Errorf("%w: it's not your turn", ErrInvalidMove)
)
