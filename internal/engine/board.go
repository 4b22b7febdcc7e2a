// Package engine implements the tic-tac-toe game state: board, win detection,
// turn order, computer opponents and the per-session controller.
// It has no UI dependencies; front ends call into a Session and render its events.
package engine

import "fmt"

// Mark is the content of a board cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

// String returns "X", "O" or an empty string for Empty.
func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// ParseMark converts "X" or "O" (case-insensitive) to a Mark.
func ParseMark(s string) (Mark, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	}
	return Empty, fmt.Errorf("engine: unknown mark %q", s)
}

// Board is a square grid of cells stored row-major.
type Board struct {
	size  int
	cells []Mark
}

// NewBoard returns an empty size×size board.
func NewBoard(size int) Board {
	return Board{
		size:  size,
		cells: make([]Mark, size*size),
	}
}

// Size returns the grid size (cells per side).
func (b Board) Size() int {
	return b.size
}

// Len returns the number of cells.
func (b Board) Len() int {
	return len(b.cells)
}

// At returns the mark at index i, or Empty when i is out of range.
func (b Board) At(i int) Mark {
	if i < 0 || i >= len(b.cells) {
		return Empty
	}
	return b.cells[i]
}

// Place sets the cell at index to mark.
// The board is unchanged when an error is returned.
func (b Board) Place(index int, mark Mark) error {
	if index < 0 || index >= len(b.cells) {
		return fmt.Errorf("%w: cell %d", ErrOutOfRange, index)
	}
	if mark != X && mark != O {
		return fmt.Errorf("%w: cannot place %q", ErrInvalidMove, mark.String())
	}
	if b.cells[index] != Empty {
		return fmt.Errorf("%w: cell %d", ErrCellOccupied, index)
	}
	b.cells[index] = mark
	return nil
}

// clear resets one cell; only used to undo speculative placements.
func (b Board) clear(index int) {
	b.cells[index] = Empty
}

// IsFull returns true if no cell is Empty.
func (b Board) IsFull() bool {
	for _, c := range b.cells {
		if c == Empty {
			return false
		}
	}
	return true
}

// EmptyCells returns the indices of all empty cells in ascending order.
func (b Board) EmptyCells() []int {
	out := make([]int, 0, len(b.cells))
	for i, c := range b.cells {
		if c == Empty {
			out = append(out, i)
		}
	}
	return out
}

// Cells returns a copy of the cell slice.
func (b Board) Cells() []Mark {
	out := make([]Mark, len(b.cells))
	copy(out, b.cells)
	return out
}

// Clone returns an independent copy of the board.
func (b Board) Clone() Board {
	return Board{size: b.size, cells: b.Cells()}
}

// RowCol converts a cell index to its row and column.
func (b Board) RowCol(i int) (row, col int) {
	return i / b.size, i % b.size
}

// Index converts a row and column to a cell index.
func (b Board) Index(row, col int) int {
	return row*b.size + col
}

// InBounds reports whether (row, col) lies on the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.size && col >= 0 && col < b.size
}
