package core

// Color is a foreground color for a screen cell or an engine event.
// Front-ends map it to an ANSI 256-color code through Code.
type Color uint8

// Base palette.
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

// Roles shared by the engine events and the views.
const (
	ColorDanger = ColorBrightRed    // Hits, penalties, wrong answers
	ColorGold   = ColorBrightYellow // Gems, budget, immortality
	ColorLetter = ColorBrightGreen  // Letter tokens and the spelled word
	ColorShop   = ColorBrightMagenta
	ColorMuted  = ColorGray
)

// ansiCodes indexes ANSI 256-color codes by Color. ColorDefault has none.
var ansiCodes = [...]string{
	ColorDefault:       "",
	ColorRed:           "1",
	ColorGreen:         "2",
	ColorYellow:        "3",
	ColorBlue:          "4",
	ColorMagenta:       "5",
	ColorCyan:          "6",
	ColorWhite:         "7",
	ColorBrightRed:     "9",
	ColorBrightGreen:   "10",
	ColorBrightYellow:  "11",
	ColorBrightBlue:    "12",
	ColorBrightMagenta: "13",
	ColorBrightCyan:    "14",
	ColorBrightWhite:   "15",
	ColorOrange:        "208",
	ColorGray:          "245",
}

// Code returns the ANSI 256-color code, or "" for the terminal default.
func (c Color) Code() string {
	if int(c) >= len(ansiCodes) {
		return ""
	}
	return ansiCodes[c]
}
