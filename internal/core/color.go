package core

// Color represents a foreground color for a screen cell.
// The terminal frontend maps each value to an ANSI 256-color code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorOrange
	ColorGray
)

// Palette for game elements, shared by every frontend that draws in cells.
const (
	ColorShip      = ColorBrightYellow
	ColorExhaust   = ColorOrange
	ColorAsteroid  = ColorGray
	ColorShot      = ColorCyan
	ColorSpread    = ColorMagenta
	ColorExplosion = ColorRed
	ColorHUD       = ColorWhite
	ColorBanner    = ColorGreen
)
