package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI colors for terminal output.
type Color uint8

// Predefined colors for game elements.
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
	ColorOrange
	ColorGray
)

// ParseColor maps a user-facing color name to a Color.
// Unknown names fall back to ColorGreen (the classic snake color).
func ParseColor(name string) Color {
	switch name {
	case "red":
		return ColorRed
	case "green":
		return ColorGreen
	case "yellow":
		return ColorYellow
	case "blue":
		return ColorBlue
	case "magenta":
		return ColorMagenta
	case "cyan":
		return ColorCyan
	case "white":
		return ColorWhite
	case "orange":
		return ColorOrange
	default:
		return ColorGreen
	}
}

// ColorNames lists the color names accepted by ParseColor, in menu order.
func ColorNames() []string {
	return []string{"green", "cyan", "yellow", "magenta", "red", "blue", "orange", "white"}
}
