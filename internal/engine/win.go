package engine

// WinResult describes a winning run, if any.
type WinResult struct {
	Won  bool
	Line []int // cell indices of the run, in walk order
}

// directions are scanned in this order; it decides which line is reported
// when several runs exist.
var directions = [4][2]int{
	{0, 1},  // row
	{1, 0},  // column
	{1, 1},  // diagonal
	{1, -1}, // anti-diagonal
}

// WinStreak returns the run length needed to win on a grid of the given size.
// Unsupported sizes yield 0.
func WinStreak(gridSize int) int {
	switch gridSize {
	case 3:
		return 3
	case 5:
		return 4
	case 7:
		return 5
	default:
		return 0
	}
}

// CheckWinner scans the board for winStreak consecutive cells holding mark.
// Cells are visited in row-major order and directions in the order above;
// the first qualifying run is returned.
func CheckWinner(b Board, mark Mark, winStreak int) WinResult {
	if mark == Empty || winStreak <= 0 {
		return WinResult{}
	}

	for i := range b.Len() {
		if b.cells[i] != mark {
			continue
		}
		row, col := b.RowCol(i)
		for _, d := range directions {
			if line, ok := walk(b, mark, row, col, d, winStreak); ok {
				return WinResult{Won: true, Line: line}
			}
		}
	}

	return WinResult{}
}

// walk follows direction d from (row, col) for n cells.
func walk(b Board, mark Mark, row, col int, d [2]int, n int) ([]int, bool) {
	line := make([]int, 0, n)
	for step := range n {
		r := row + d[0]*step
		c := col + d[1]*step
		// InBounds also rejects c < 0 for the anti-diagonal
		if !b.InBounds(r, c) {
			return nil, false
		}
		idx := b.Index(r, c)
		if b.cells[idx] != mark {
			return nil, false
		}
		line = append(line, idx)
	}
	return line, true
}

// hasWon is CheckWinner without the line allocation for the search loops.
func hasWon(b Board, mark Mark, winStreak int) bool {
	if mark == Empty || winStreak <= 0 {
		return false
	}
	for i := range b.Len() {
		if b.cells[i] != mark {
			continue
		}
		row, col := b.RowCol(i)
	dirs:
		for _, d := range directions {
			for step := range winStreak {
				r := row + d[0]*step
				c := col + d[1]*step
				if !b.InBounds(r, c) || b.cells[b.Index(r, c)] != mark {
					continue dirs
				}
			}
			return true
		}
	}
	return false
}
