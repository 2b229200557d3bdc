package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// layout is one candidate tile geometry, measured in characters
// including the shared border line on the top/left side.
type layout struct {
	cellWidth  int
	cellHeight int
}

// layouts are tried from roomiest to most compact.
var layouts = []layout{
	{cellWidth: 8, cellHeight: 4},
	{cellWidth: 7, cellHeight: 2},
	{cellWidth: 5, cellHeight: 2},
}

const (
	hudHeight    = 3 // Title, score line, blank
	footerHeight = 2 // Blank, controls line
)

// boardSize returns the board frame size in characters for a layout.
func (g *Game) boardSize(l layout) (w, h int) {
	return g.width*l.cellWidth + 1, g.height*l.cellHeight + 1
}

// checkScreenSize picks the roomiest layout that fits the screen.
func (g *Game) checkScreenSize() {
	for _, l := range layouts {
		w, h := g.boardSize(l)
		if w <= g.screenW && h+hudHeight+footerHeight <= g.screenH {
			g.layout = l
			g.tooSmall = false
			return
		}
	}
	g.layout = layouts[len(layouts)-1]
	g.tooSmall = true
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize(g.layout)
	board := core.NewRect((g.screenW-boardW)/2, hudHeight, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board)

	if g.grid.Terminal() {
		g.renderGameOver(dst, board)
	}

	dst.DrawTextCentered(board.Bottom()+1, g.Controls())
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")

	w, h := g.boardSize(layouts[len(layouts)-1])
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d for a %dx%d board", w, h+hudHeight+footerHeight, g.width, g.height))
}

// renderHUD draws the title, score and max tile above the board.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := g.Title()
	dst.DrawText(board.CenterX(len(title)), 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.grid.Score())
	dst.DrawText(board.X, 1, scoreStr)

	infoStr := fmt.Sprintf("Max: %d", g.grid.MaxTile())
	infoX := max(board.Right()-len(infoStr), board.X+len(scoreStr)+1)
	dst.DrawText(infoX, 1, infoStr)
}

// renderBoard draws the frame and every tile.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect) {
	l := g.layout
	dst.FillRect(board, ' ', core.ColorGray, core.ColorBoard)

	for y := range g.height + 1 {
		for x := range g.width + 1 {
			px := board.X + x*l.cellWidth
			py := board.Y + y*l.cellHeight
			dst.Set(px, py, junction(x, y, g.width, g.height))

			if x < g.width {
				for i := 1; i < l.cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < g.height {
				for i := 1; i < l.cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y := range g.height {
		for x := range g.width {
			inner := board.GridCell(x, y, l.cellWidth, l.cellHeight)
			g.renderTile(dst, inner, g.grid.CellValue(x, y))
		}
	}
}

// renderTile paints one tile interior and centers its value.
func (g *Game) renderTile(dst *core.Screen, inner core.Rect, value int) {
	bg := core.TileColor(value)
	dst.FillRect(inner, ' ', core.ColorBrightWhite, bg)
	if value == 0 {
		return
	}

	text := formatValue(value, inner.W)
	cx, cy := inner.Center()
	if inner.H%2 == 0 {
		cy--
	}
	dst.DrawTextColored(cx-len(text)/2, cy, text, core.ColorBrightWhite, bg)
}

// renderGameOver draws a red score banner over the lower half of the last tile row.
func (g *Game) renderGameOver(dst *core.Screen, board core.Rect) {
	bannerH := max(g.layout.cellHeight/2, 1)
	banner := core.NewRect(board.X, board.Bottom()-bannerH, board.W, bannerH)
	dst.FillRect(banner, ' ', core.ColorBrightWhite, core.ColorGameOver)

	text := fmt.Sprintf("GAME OVER  Score: %d", g.grid.Score())
	if len(text) > banner.W {
		text = fmt.Sprintf("Score:%d", g.grid.Score())
	}
	_, cy := banner.Center()
	dst.DrawTextColored(banner.CenterX(len(text)), cy, text, core.ColorBrightWhite, core.ColorGameOver)
}

// junction returns the box-drawing rune for a grid line intersection.
func junction(x, y, w, h int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == w:
		return '┐'
	case y == h && x == 0:
		return '└'
	case y == h && x == w:
		return '┘'
	case y == 0:
		return '┬'
	case y == h:
		return '┴'
	case x == 0:
		return '├'
	case x == w:
		return '┤'
	default:
		return '┼'
	}
}

// formatValue renders a tile value in at most width characters,
// abbreviating large values with k/M suffixes.
func formatValue(value, width int) string {
	s := strconv.Itoa(value)
	if len(s) <= width {
		return s
	}
	for _, unit := range []struct {
		div    int
		suffix string
	}{{1 << 10, "k"}, {1 << 20, "M"}, {1 << 30, "G"}} {
		if value%unit.div != 0 {
			continue
		}
		s = strconv.Itoa(value/unit.div) + unit.suffix
		if len(s) <= width {
			return s
		}
	}
	return s
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | R: Restart | N: New board | Q: Quit"
}
