package core

// Color is a foreground color for a screen cell.
// The platform maps each value to an ANSI color.
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

// hueWheel lists colors in 30 degree hue steps starting at red.
var hueWheel = [12]Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorYellow,
	ColorBrightGreen,
	ColorGreen,
	ColorBrightCyan,
	ColorCyan,
	ColorBrightBlue,
	ColorBlue,
	ColorBrightMagenta,
	ColorMagenta,
}

// HueColor returns the palette color closest to a hue in degrees.
func HueColor(hue int) Color {
	hue %= 360
	if hue < 0 {
		hue += 360
	}
	return hueWheel[((hue+15)/30)%len(hueWheel)]
}
