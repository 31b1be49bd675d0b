package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the TUI layer.
type Color uint8

// Predefined colors for grid elements and HUD text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)
