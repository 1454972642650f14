package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	colorCount
)

// paletteHex holds the reference sRGB value of each palette entry (xterm defaults).
var paletteHex = [colorCount]string{
	ColorDefault:       "#c0c0c0",
	ColorRed:           "#800000",
	ColorGreen:         "#008000",
	ColorYellow:        "#808000",
	ColorBlue:          "#000080",
	ColorMagenta:       "#800080",
	ColorCyan:          "#008080",
	ColorWhite:         "#c0c0c0",
	ColorBrightRed:     "#ff0000",
	ColorBrightGreen:   "#00ff00",
	ColorBrightYellow:  "#ffff00",
	ColorBrightBlue:    "#0000ff",
	ColorBrightMagenta: "#ff00ff",
	ColorBrightCyan:    "#00ffff",
	ColorBrightWhite:   "#ffffff",
	ColorOrange:        "#ff8700",
	ColorGray:          "#8a8a8a",
}

// Hex returns the reference sRGB value of the color as "#rrggbb".
func (c Color) Hex() string {
	if c >= colorCount {
		return paletteHex[ColorDefault]
	}
	return paletteHex[c]
}

// Palette returns every selectable color, excluding ColorDefault.
func Palette() []Color {
	out := make([]Color, 0, colorCount-1)
	for c := ColorRed; c < colorCount; c++ {
		out = append(out, c)
	}
	return out
}
