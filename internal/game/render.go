package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 6 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// valueColor picks a tile color by value. High tiles run hot.
func valueColor(v int) core.Color {
	switch {
	case v <= 4:
		return core.ColorWhite
	case v <= 16:
		return core.ColorCyan
	case v <= 64:
		return core.ColorGreen
	case v <= 256:
		return core.ColorYellow
	case v <= 1024:
		return core.ColorOrange
	case v <= 4096:
		return core.ColorBrightRed
	default:
		return core.ColorBrightMagenta
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := BoardSize*cellWidth + 1
	boardH := BoardSize*cellHeight + 1
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score line above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := "2048"
	titleX := boardX + (boardW-len(title))/2
	dst.DrawTextColored(titleX, 0, title, core.ColorBrightYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	infoStr := fmt.Sprintf("Max: %d", g.board.MaxValue())
	infoX := boardX + boardW - len(infoStr)
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 1, infoStr)

	if g.won {
		wonStr := "2048 reached!"
		wonX := boardX + (boardW-len(wonStr))/2
		dst.DrawTextColored(wonX, 2, wonStr, core.ColorBrightGreen)
	}
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Grid lines
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			if x < BoardSize {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < BoardSize {
				dst.Set(px, py+1, '│')
			}
		}
	}

	// Tiles
	for row := range BoardSize {
		for col := range BoardSize {
			t := g.board.At(row, col)
			if t == nil {
				continue
			}
			g.renderTile(dst, boardX, boardY, t)
		}
	}
}

// renderTile draws one tile value centered in its cell. Hidden merge
// results show their pre-merge value in gray until the commit reveals
// them; freshly spawned tiles flash bright.
func (g *Game) renderTile(dst *core.Screen, boardX, boardY int, t *Tile) {
	value := t.Value
	color := valueColor(value)
	switch {
	case t.Hidden:
		value = t.Value / 2
		color = core.ColorGray
	case t.New:
		color = core.ColorBrightWhite
	}

	label := strconv.Itoa(value)
	cx := boardX + t.Col*cellWidth + 1 + (cellWidth-1-len(label))/2
	cy := boardY + t.Row*cellHeight + 1
	dst.DrawTextColored(cx, cy, label, color)
}

// renderOverlays draws terminal-state banners over the board.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	if !g.gameOver {
		return
	}

	midY := boardY + boardH/2
	msg := "GAME OVER"
	msgX := boardX + (boardW-len(msg))/2
	dst.DrawTextColored(msgX, midY-1, msg, core.ColorBrightRed)

	var hint string
	if g.CanUndo() {
		hint = "U undo, R new game"
	} else {
		hint = "R new game"
	}
	hintX := boardX + (boardW-len(hint))/2
	dst.DrawText(hintX, midY+1, hint)
}
