package core

// Color is the foreground color of a screen cell.
// The platform layer maps it to an ANSI color; ColorDefault leaves the
// terminal's own foreground untouched.
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

// DiskPalette is the color cycle used for disks, indexed by (size-1).
var DiskPalette = []Color{
	ColorRed,
	ColorOrange,
	ColorYellow,
	ColorGreen,
	ColorCyan,
	ColorBlue,
	ColorMagenta,
	ColorBrightRed,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightMagenta,
}

// DiskColor returns the palette color for a disk of the given size.
func DiskColor(size int) Color {
	if size <= 0 {
		return ColorDefault
	}
	return DiskPalette[(size-1)%len(DiskPalette)]
}
