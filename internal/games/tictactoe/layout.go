package tictactoe

import "github.com/vovakirdan/tui-tictactoe/internal/core"

// Screen rows around the board: title, rule line and a gap above;
// a gap, status, scores and notice below.
const (
	headerRows = 3
	footerRows = 4
)

// layout places the board on screen. Grid lines sit between and around
// cells, so a board of n cells spans n*(cell+1)+1 columns.
type layout struct {
	size   int
	cellW  int
	cellH  int
	coords bool

	title int       // y of the title line
	board core.Rect // outer grid, including border lines

	tooSmall bool
}

// cellSize returns the interior size of one cell. Larger boards use
// smaller cells so a 7x7 grid still fits in 80x24.
func cellSize(gridSize int) (w, h int) {
	switch {
	case gridSize <= 3:
		return 7, 3
	case gridSize <= 5:
		return 5, 1
	default:
		return 3, 1
	}
}

func newLayout(gridSize, screenW, screenH int, coords bool) layout {
	cw, ch := cellSize(gridSize)
	l := layout{size: gridSize, cellW: cw, cellH: ch, coords: coords}

	boardW := gridSize*(cw+1) + 1
	boardH := gridSize*(ch+1) + 1

	labelRows, labelCols := 0, 0
	if coords {
		labelRows, labelCols = 1, 2
	}

	blockH := headerRows + labelRows + boardH + footerRows
	if screenW < boardW+2*labelCols || screenH < blockH {
		l.tooSmall = true
	}

	l.title = max(0, (screenH-blockH)/2)
	l.board = core.Rect{
		X: max(labelCols, (screenW-boardW)/2),
		Y: l.title + headerRows + labelRows,
		W: boardW,
		H: boardH,
	}
	return l
}

func (g *Game) layout() layout {
	return newLayout(g.variant.GridSize, g.screenW, g.screenH, g.cfg.ShowCoordinates)
}

// cellRect returns the interior of cell i.
func (l layout) cellRect(i int) core.Rect {
	row, col := i/l.size, i%l.size
	return core.Rect{
		X: l.board.X + 1 + col*(l.cellW+1),
		Y: l.board.Y + 1 + row*(l.cellH+1),
		W: l.cellW,
		H: l.cellH,
	}
}

// cellAt maps a screen position to a cell index. Grid lines and anything
// outside the board map to no cell.
func (l layout) cellAt(x, y int) (int, bool) {
	if l.tooSmall || !l.board.Contains(x, y) {
		return 0, false
	}
	rx, ry := x-l.board.X, y-l.board.Y
	if rx%(l.cellW+1) == 0 || ry%(l.cellH+1) == 0 {
		return 0, false
	}
	row, col := ry/(l.cellH+1), rx/(l.cellW+1)
	return row*l.size + col, true
}

// footer returns the y of footer line n (0 = status).
func (l layout) footer(n int) int {
	return l.board.Bottom() + 1 + n
}

// gridRune returns the box-drawing rune for board-relative (x, y),
// or 0 if the position is inside a cell.
func (l layout) gridRune(x, y int) rune {
	stepX, stepY := l.cellW+1, l.cellH+1
	onV := x%stepX == 0
	onH := y%stepY == 0

	switch {
	case onV && onH:
		return junction(y == 0, y == l.board.H-1, x == 0, x == l.board.W-1)
	case onH:
		return '─'
	case onV:
		return '│'
	default:
		return 0
	}
}

func junction(top, bottom, left, right bool) rune {
	switch {
	case top && left:
		return '┌'
	case top && right:
		return '┐'
	case bottom && left:
		return '└'
	case bottom && right:
		return '┘'
	case top:
		return '┬'
	case bottom:
		return '┴'
	case left:
		return '├'
	case right:
		return '┤'
	default:
		return '┼'
	}
}
