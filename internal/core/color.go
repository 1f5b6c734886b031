package core

// Color represents a foreground color for a screen cell.
// The platform layer maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors. Numbers 1-8 on a minesweeper board use the
// traditional palette, the rest is shared by HUD and overlays.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightBlue
	ColorOrange
	ColorGray
	ColorMaroon
	ColorNavy
	ColorTeal
	ColorCursor
)
