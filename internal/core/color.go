package core

// Color is the foreground color of a screen cell.
// Values map to the 16 standard ANSI colors in the platform layer.
type Color uint8

// Colors available to games. ColorDefault leaves the terminal's own foreground.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// Cell is one character position of a Screen.
// A Rune of 0 marks the trailing half of a double-width character.
type Cell struct {
	Rune  rune
	Color Color
}
