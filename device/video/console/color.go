package console

import "image/color"

// Color is one of the 16 entries of the text-mode palette.
type Color uint8

// The text-mode palette.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// NumColors is the number of palette entries.
const NumColors = 16

var (
	colorNames = [NumColors]string{
		"black", "blue", "green", "cyan",
		"red", "magenta", "brown", "light-gray",
		"dark-gray", "light-blue", "light-green", "light-cyan",
		"light-red", "pink", "yellow", "white",
	}

	// egaPalette holds the RGB values the hardware DAC is programmed with
	// after a mode 0x3 switch.
	egaPalette = [NumColors]color.RGBA{
		{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, /* black */
		{R: 0x00, G: 0x00, B: 0xaa, A: 0xff}, /* blue */
		{R: 0x00, G: 0xaa, B: 0x00, A: 0xff}, /* green */
		{R: 0x00, G: 0xaa, B: 0xaa, A: 0xff}, /* cyan */
		{R: 0xaa, G: 0x00, B: 0x00, A: 0xff}, /* red */
		{R: 0xaa, G: 0x00, B: 0xaa, A: 0xff}, /* magenta */
		{R: 0xaa, G: 0x55, B: 0x00, A: 0xff}, /* brown */
		{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}, /* light gray */
		{R: 0x55, G: 0x55, B: 0x55, A: 0xff}, /* dark gray */
		{R: 0x55, G: 0x55, B: 0xff, A: 0xff}, /* light blue */
		{R: 0x55, G: 0xff, B: 0x55, A: 0xff}, /* light green */
		{R: 0x55, G: 0xff, B: 0xff, A: 0xff}, /* light cyan */
		{R: 0xff, G: 0x55, B: 0x55, A: 0xff}, /* light red */
		{R: 0xff, G: 0x55, B: 0xff, A: 0xff}, /* pink */
		{R: 0xff, G: 0xff, B: 0x55, A: 0xff}, /* yellow */
		{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, /* white */
	}
)

// String returns the lower-case name of the color.
func (c Color) String() string {
	return colorNames[c&0xf]
}

// RGBA returns the default palette entry for the color.
func (c Color) RGBA() color.RGBA {
	return egaPalette[c&0xf]
}

// ParseColor returns the Color whose name (as reported by String) matches
// name. The second return value is false if no such color exists.
func ParseColor(name string) (Color, bool) {
	for i, n := range colorNames {
		if n == name {
			return Color(i), true
		}
	}

	return Black, false
}

// ColorCode is the attribute byte of a screen cell: the background color is
// stored in bits 4-7 and the foreground color in bits 0-3.
type ColorCode uint8

// NewColorCode packs a foreground and background color into a ColorCode.
func NewColorCode(fg, bg Color) ColorCode {
	return ColorCode(uint8(bg)<<4 | uint8(fg)&0xf)
}

// Foreground returns the foreground color of the attribute.
func (c ColorCode) Foreground() Color {
	return Color(c & 0xf)
}

// Background returns the background color of the attribute.
func (c ColorCode) Background() Color {
	return Color(c >> 4)
}
