package minesweeper

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/core"
)

const (
	cellWidth = 2 // glyph plus one space
	boardTop  = 2 // rows above the board box: header and a blank line
)

// View is everything Render needs to draw one board.
type View struct {
	Size       int
	Symbols    []Symbol // row-major
	Remaining  int
	Header     string
	Footer     string
	Cursor     MinePosition
	ShowCursor bool
}

// View returns the render view of the session with the cursor at cursor.
func (g *Game) View(cursor MinePosition) View {
	snap := g.Snapshot()
	header := fmt.Sprintf("Mines: %d  Moves: %d", snap.Remaining, snap.Moves)
	switch snap.State {
	case StateWon:
		header = "YOU WIN! " + header
	case StateLost:
		header = "BOOM! " + header
	}
	return View{
		Size:       snap.Size,
		Symbols:    snap.Symbols,
		Remaining:  snap.Remaining,
		Header:     header,
		Cursor:     cursor,
		ShowCursor: !snap.State.Terminal(),
	}
}

// BoardRect returns the board box for a size×size board centered
// horizontally on a screen screenW wide.
func BoardRect(screenW, size int) core.Rect {
	w := size*cellWidth + 3
	x := core.Max(0, (screenW-w)/2)
	return core.NewRect(x, boardTop, w, size+2)
}

// CellAt maps a screen position to a board cell. Both columns of a cell
// hit it.
func CellAt(screenW, size, x, y int) (row, col int, ok bool) {
	box := BoardRect(screenW, size)
	cells := core.NewRect(box.X+2, box.Y+1, size*cellWidth, size)
	if !cells.Contains(x, y) {
		return 0, 0, false
	}
	return y - cells.Y, (x - cells.X) / cellWidth, true
}

// Render draws v into dst.
func Render(dst *core.Screen, v View) {
	dst.Clear()

	box := BoardRect(dst.Width(), v.Size)
	dst.DrawTextCentered(0, v.Header)
	dst.DrawBox(box)

	for idx, s := range v.Symbols {
		row, col := idx/v.Size, idx%v.Size
		x := box.X + 2 + col*cellWidth
		y := box.Y + 1 + row
		color := SymbolColor(s)
		if v.ShowCursor && row == v.Cursor.Row && col == v.Cursor.Col {
			color = core.ColorCursor
		}
		dst.SetColored(x, y, s.Rune(), color)
	}

	if v.Footer != "" {
		dst.DrawTextCentered(box.Bottom()+1, v.Footer)
	}
}

// SymbolColor returns the color a symbol is drawn in.
func SymbolColor(s Symbol) core.Color {
	switch s {
	case SymbolHidden:
		return core.ColorGray
	case SymbolFlagged:
		return core.ColorOrange
	case SymbolMine:
		return core.ColorRed
	case SymbolExploded:
		return core.ColorBrightRed
	case 1:
		return core.ColorBlue
	case 2:
		return core.ColorGreen
	case 3:
		return core.ColorRed
	case 4:
		return core.ColorNavy
	case 5:
		return core.ColorMaroon
	case 6:
		return core.ColorTeal
	case 7:
		return core.ColorWhite
	case 8:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// FormatBoard renders symbols as plain text with row and column indexes,
// for non-interactive output.
func FormatBoard(size int, symbols []Symbol) string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := range size {
		fmt.Fprintf(&sb, "%2d", col%100)
	}
	sb.WriteByte('\n')
	for row := range size {
		fmt.Fprintf(&sb, "%2d ", row)
		for col := range size {
			sb.WriteByte(' ')
			sb.WriteRune(plainRune(symbols[row*size+col]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// plainRune keeps empty cells visible in text output.
func plainRune(s Symbol) rune {
	if s == 0 {
		return '.'
	}
	return s.Rune()
}
