package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(8, 3)
	if s.Width() != 8 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 8x3", s.Width(), s.Height())
	}
	for y := 0; y < 3; y++ {
		if row := s.Row(y); row != "        " {
			t.Errorf("Row(%d) = %q, expected blanks", y, row)
		}
	}
}

func TestScreenSetColoredClips(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetColored(1, 1, 'X', ColorRed)

	if got := s.GetCell(1, 1); got != (Cell{Rune: 'X', Color: ColorRed}) {
		t.Errorf("GetCell(1, 1) = %+v, expected red X", got)
	}

	// Out of bounds writes are dropped, reads are blank
	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], 'Y', ColorBlue)
		if got := s.GetCell(p[0], p[1]); got.Rune != ' ' {
			t.Errorf("GetCell(%d, %d) = %q, expected blank", p[0], p[1], got.Rune)
		}
	}
	if strings.Contains(s.String(), "Y") {
		t.Error("out of bounds write leaked into the buffer")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(5, 2)
	s.DrawTextColored(0, 0, "HELLO", ColorGreen)
	s.Clear()

	if s.Row(0) != "     " {
		t.Errorf("Row(0) = %q after Clear", s.Row(0))
	}
	if s.GetCell(2, 0).Color != ColorDefault {
		t.Error("Clear should reset colors")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 3)
	s.DrawTextColored(1, 1, "ÉTÉ", ColorYellow)

	cell := s.GetCell(2, 1)
	if cell.Rune != 'T' || cell.Color != ColorYellow {
		t.Errorf("GetCell(2, 1) = %+v, expected yellow 'T'", cell)
	}
	// Multi-byte runes occupy a single cell each
	if r := s.GetCell(3, 1).Rune; r != 'É' {
		t.Errorf("GetCell(3, 1) = %q, expected 'É'", r)
	}

	// Text running past the edge is cut
	s.DrawTextColored(8, 0, "ABCD", ColorWhite)
	if row := s.Row(0); !strings.HasSuffix(row, "AB") {
		t.Errorf("Row(0) = %q, expected to end with AB", row)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "MOT")
	if row := s.Row(0); row != "    MOT    " {
		t.Errorf("Row(0) = %q, expected centered text", row)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(6, 4)
	r := NewRect(0, 0, 6, 4)
	s.FillRect(r, '.', ColorDefault)
	s.DrawBox(r, ColorCyan)

	want := []string{
		"┌────┐",
		"│....│",
		"│....│",
		"└────┘",
	}
	for y, line := range want {
		if got := s.Row(y); got != line {
			t.Errorf("Row(%d) = %q, expected %q", y, got, line)
		}
	}
	if s.GetCell(0, 0).Color != ColorCyan {
		t.Error("box corners should take the box color")
	}

	// Degenerate boxes draw nothing
	s.Clear()
	s.DrawBox(NewRect(0, 0, 1, 4), ColorCyan)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("a one-column box should not be drawn")
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawHLine(1, 0, 3, '_', ColorGray)
	if row := s.Row(0); row != " ___  " {
		t.Errorf("Row(0) = %q", row)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawTextColored(0, 0, "AB", ColorDefault)
	s.DrawTextColored(1, 1, "C", ColorRed)

	if got := s.String(); got != "AB \n C " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawTextColored(0, 0, "ABCD", ColorDefault)

	s.Resize(4, 2)
	if s.Row(0) != "ABCD" {
		t.Error("resizing to the same size should keep the content")
	}

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.String()) != "" {
		t.Error("resize should clear the buffer")
	}

	s.Resize(-5, 2)
	if s.Width() != 0 || s.Row(0) != "" {
		t.Error("negative width should be treated as zero")
	}
}

func TestScreenRowOutOfBounds(t *testing.T) {
	s := NewScreen(3, 1)
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected spaces", got)
	}
}
