package core

// Color is the foreground color of a screen cell, rendered by the platform
// layer as an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorGray
	ColorBrightGreen
	ColorBrightWhite
)
