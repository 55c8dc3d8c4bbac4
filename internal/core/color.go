package core

// Color represents the fill color of a playfield cell.
// Backends map these to ANSI codes or RGB values.
type Color uint8

// Predefined colors for game elements.
const (
	ColorBlack Color = iota
	ColorDarkGray
	ColorGray
	ColorGreen
	ColorBrightGreen
	ColorRed
	ColorYellow
	ColorWhite
)

// RGB returns the 8-bit channel values of the color.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorDarkGray:
		return 100, 100, 100
	case ColorGray:
		return 160, 160, 160
	case ColorGreen:
		return 0, 160, 0
	case ColorBrightGreen:
		return 80, 230, 80
	case ColorRed:
		return 200, 30, 30
	case ColorYellow:
		return 230, 200, 40
	case ColorWhite:
		return 240, 240, 240
	default:
		return 0, 0, 0
	}
}

// ANSI returns the ANSI 256-color code closest to the color.
func (c Color) ANSI() string {
	switch c {
	case ColorDarkGray:
		return "241"
	case ColorGray:
		return "245"
	case ColorGreen:
		return "2"
	case ColorBrightGreen:
		return "10"
	case ColorRed:
		return "9"
	case ColorYellow:
		return "11"
	case ColorWhite:
		return "15"
	default:
		return "0"
	}
}
