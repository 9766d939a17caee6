package core

// Color represents a foreground color for a screen cell.
// Values map onto ANSI 256-color codes via ANSI.
type Color uint8

// Palette used by the platformer renderer.
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
	ColorOrange
	ColorBrown
	ColorGray
)

var ansiCodes = map[Color]string{
	ColorRed:          "1",
	ColorGreen:        "2",
	ColorYellow:       "3",
	ColorBlue:         "4",
	ColorCyan:         "6",
	ColorWhite:        "7",
	ColorBrightRed:    "9",
	ColorBrightGreen:  "10",
	ColorBrightYellow: "11",
	ColorOrange:       "208",
	ColorBrown:        "130",
	ColorGray:         "245",
}

// ANSI returns the 256-color code for c, or "" for the terminal default.
func (c Color) ANSI() string {
	return ansiCodes[c]
}

// Colors lists every non-default color.
func Colors() []Color {
	out := make([]Color, 0, len(ansiCodes))
	for c := ColorRed; c <= ColorGray; c++ {
		out = append(out, c)
	}
	return out
}
