package core

import (
	"strings"
)

// Cell is one character position with its foreground color.
type Cell struct {
	Rune  rune
	Color Color
}

var blank = Cell{Rune: ' '}

// Screen is a character buffer the runner view draws into every frame.
// Views write runes with a color; the platform turns rows into styled text.
// Writes outside the buffer are dropped.
type Screen struct {
	width  int
	height int
	cells  []Cell // Row-major, width*height
}

// NewScreen creates a cleared screen buffer.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize reallocates the buffer and clears it. Negative sizes count as zero.
func (s *Screen) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width == s.width && height == s.height && s.cells != nil {
		return
	}
	s.width = width
	s.height = height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear fills the screen with uncolored spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// SetColored places a rune with a color at (x, y).
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Color: c}
	}
}

// GetCell returns the cell at (x, y), or a blank cell outside the buffer.
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawTextColored writes text from (x, y) rightwards, one rune per cell.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	for _, r := range text {
		s.SetColored(x, y, r, c)
		x++
	}
}

// DrawTextCentered writes uncolored text centered on row y.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - len([]rune(text))) / 2
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawHLine draws length copies of r from (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// FillRect fills the rectangle with r.
func (s *Screen) FillRect(rect Rect, r rune, c Color) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		s.DrawHLine(rect.X, y, rect.W, r, c)
	}
}

// DrawBox outlines the rectangle with box-drawing characters.
func (s *Screen) DrawBox(rect Rect, c Color) {
	if rect.W < 2 || rect.H < 2 {
		return
	}
	right, bottom := rect.Right()-1, rect.Bottom()-1

	s.DrawHLine(rect.X+1, rect.Y, rect.W-2, '─', c)
	s.DrawHLine(rect.X+1, bottom, rect.W-2, '─', c)
	for y := rect.Y + 1; y < bottom; y++ {
		s.SetColored(rect.X, y, '│', c)
		s.SetColored(right, y, '│', c)
	}
	s.SetColored(rect.X, rect.Y, '┌', c)
	s.SetColored(right, rect.Y, '┐', c)
	s.SetColored(rect.X, bottom, '└', c)
	s.SetColored(right, bottom, '┘', c)
}

// Row returns the runes of row y, or spaces outside the buffer.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String returns the uncolored buffer with rows joined by newlines.
// Screenshots are saved in this form.
func (s *Screen) String() string {
	rows := make([]string, s.height)
	for y := range rows {
		rows[y] = s.Row(y)
	}
	return strings.Join(rows, "\n")
}
