package tictactoe

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-tictactoe/internal/core"
	"github.com/vovakirdan/tui-tictactoe/internal/engine"
)

var (
	colorGrid   = core.ColorGray
	colorX      = core.ColorCyan
	colorO      = core.ColorMagenta
	colorWin    = core.ColorBrightYellow
	colorCursor = core.ColorYellow
	colorTitle  = core.ColorBrightCyan
	colorNotice = core.ColorRed
)

// 3x3 glyphs for the large cells of the classic board.
var bigGlyphs = map[engine.Mark][3]string{
	engine.X: {`\ /`, ` X `, `/ \`},
	engine.O: {`╭─╮`, `│ │`, `╰─╯`},
}

// Render draws title, board, status, scores and any notice.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}

	l := g.layout()
	if l.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	dst.DrawTextCenteredColored(l.title, g.headline(), colorTitle)
	cfg := g.session.Config()
	dst.DrawTextCentered(l.title+1, fmt.Sprintf("%d in a row wins", cfg.WinStreak))

	g.renderGrid(dst, l)
	if l.coords {
		g.renderCoordinates(dst, l)
	}

	board := g.session.Board()
	winning := make(map[int]bool)
	for _, i := range g.session.WinningLine() {
		winning[i] = true
	}
	for i := range board.Len() {
		g.renderCell(dst, l, i, board.At(i), winning[i])
	}

	if !g.session.IsOver() {
		g.renderCursor(dst, l)
	}

	dst.DrawTextCenteredColored(l.footer(0), g.session.Status(), g.statusColor())
	dst.DrawTextCentered(l.footer(1), g.scoreLine())
	if g.notice != "" {
		dst.DrawTextCenteredColored(l.footer(2), g.notice, colorNotice)
	}
}

func (g *Game) headline() string {
	cfg := g.session.Config()
	if cfg.HasAI() {
		return fmt.Sprintf("%s · You (X) vs Computer (O, %s)", g.variant.Title, cfg.Difficulty)
	}
	return fmt.Sprintf("%s · X vs O", g.variant.Title)
}

func (g *Game) scoreLine() string {
	s := g.session.Scores()
	if g.session.Config().HasAI() {
		return fmt.Sprintf("You: %d   Computer: %d", s.X, s.O)
	}
	return fmt.Sprintf("X: %d   O: %d", s.X, s.O)
}

func (g *Game) statusColor() core.Color {
	switch {
	case g.session.IsOver() && g.session.Winner() != engine.Empty:
		return core.ColorBrightGreen
	case g.session.IsOver():
		return core.ColorYellow
	case g.session.AIThinking():
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

func (g *Game) renderGrid(dst *core.Screen, l layout) {
	for y := range l.board.H {
		for x := range l.board.W {
			if r := l.gridRune(x, y); r != 0 {
				dst.SetColored(l.board.X+x, l.board.Y+y, r, colorGrid)
			}
		}
	}
}

func (g *Game) renderCoordinates(dst *core.Screen, l layout) {
	for c := range l.size {
		cx, _ := l.cellRect(c).Center()
		dst.SetColored(cx, l.board.Y-1, rune('A'+c), colorGrid)
	}
	for r := range l.size {
		_, cy := l.cellRect(r * l.size).Center()
		dst.DrawTextColored(l.board.X-2, cy, strconv.Itoa(r+1), colorGrid)
	}
}

func (g *Game) renderCell(dst *core.Screen, l layout, i int, m engine.Mark, won bool) {
	if m == engine.Empty {
		return
	}

	color := colorX
	if m == engine.O {
		color = colorO
	}
	if won {
		color = colorWin
	}

	rect := l.cellRect(i)
	cx, cy := rect.Center()

	if rect.H >= 3 {
		glyph := bigGlyphs[m]
		for dy, line := range glyph {
			dst.DrawTextColored(cx-1, cy-1+dy, line, color)
		}
		return
	}
	dst.SetColored(cx, cy, []rune(m.String())[0], color)
}

func (g *Game) renderCursor(dst *core.Screen, l layout) {
	rect := l.cellRect(g.cursor)
	cx, cy := rect.Center()
	offset := 1
	if rect.H >= 3 {
		offset = 2
	}
	dst.SetColored(cx-offset, cy, '[', colorCursor)
	dst.SetColored(cx+offset, cy, ']', colorCursor)
}

func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	y := dst.Height() / 2
	dst.DrawTextCenteredColored(y-1, title, colorNotice)
	dst.DrawTextCentered(y+1, subtitle)
}
