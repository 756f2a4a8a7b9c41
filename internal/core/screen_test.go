package core

import (
	"strings"
	"testing"
)

// rows returns the plain text of every row.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}
	for y, row := range rows(s) {
		if strings.TrimSpace(row) != "" {
			t.Errorf("row %d = %q, expected blank", y, row)
		}
	}
	if got := s.GetCell(3, 3); got != blank {
		t.Errorf("GetCell() = %+v, expected %+v", got, blank)
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(4, 2)

	for _, p := range [][2]int{{-1, 0}, {4, 0}, {0, -1}, {0, 2}} {
		s.SetColored(p[0], p[1], '#', ColorRed)
		if got := s.GetCell(p[0], p[1]); got != blank {
			t.Errorf("GetCell(%d, %d) = %+v, expected blank", p[0], p[1], got)
		}
	}
	if got := s.String(); got != "    \n    " {
		t.Errorf("String() = %q, writes outside the buffer leaked in", got)
	}
}

func TestScreenClearResetsColor(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetColored(1, 0, '█', ColorCyan)
	s.Clear()

	if got := s.GetCell(1, 0); got != blank {
		t.Errorf("GetCell() after Clear = %+v, expected %+v", got, blank)
	}

	s.Fill('·')
	if got := s.Row(0); got != "···" {
		t.Errorf("Row(0) after Fill = %q, expected %q", got, "···")
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(s *Screen)
		expected string
	}{
		{"plain", func(s *Screen) { s.DrawText(1, 0, "Score") }, " Score    "},
		{"clipped", func(s *Screen) { s.DrawText(7, 0, "Lives") }, "       Liv"},
		{"negative start", func(s *Screen) { s.DrawText(-2, 0, "Level") }, "vel       "},
		{"runes", func(s *Screen) { s.DrawText(0, 0, "♥☠●") }, "♥☠●       "},
		{"centered", func(s *Screen) { s.DrawTextCentered(0, "WIN") }, "   WIN    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			tc.draw(s)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawTextColored(t *testing.T) {
	s := NewScreen(6, 1)
	s.DrawTextColored(1, 0, "♥♥", ColorBrightRed)

	for x := 1; x <= 2; x++ {
		if got := s.GetCell(x, 0); got.Rune != '♥' || got.Color != ColorBrightRed {
			t.Errorf("GetCell(%d, 0) = %+v, expected red heart", x, got)
		}
	}
	if got := s.GetCell(3, 0); got != blank {
		t.Errorf("GetCell(3, 0) = %+v, expected blank", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(6, 4)
	s.FillRect(1, 1, 3, 2, '█', ColorOrange)

	expected := []string{
		"      ",
		" ███  ",
		" ███  ",
		"      ",
	}
	for y, row := range rows(s) {
		if row != expected[y] {
			t.Errorf("row %d = %q, expected %q", y, row, expected[y])
		}
	}
	if got := s.GetCell(2, 2).Color; got != ColorOrange {
		t.Errorf("fill color = %v, expected %v", got, ColorOrange)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(7, 5)
	s.DrawBox(1, 0, 5, 4)

	expected := []string{
		" ┌───┐ ",
		" │   │ ",
		" │   │ ",
		" └───┘ ",
		"       ",
	}
	for y, row := range rows(s) {
		if row != expected[y] {
			t.Errorf("row %d = %q, expected %q", y, row, expected[y])
		}
	}
}

func TestScreenDrawHLine(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawHLine(2, 0, 4, '=', ColorYellow)

	if got := s.Row(0); got != "  ====  " {
		t.Errorf("Row(0) = %q, expected %q", got, "  ====  ")
	}
	if got := s.GetCell(5, 0).Color; got != ColorYellow {
		t.Errorf("line color = %v, expected %v", got, ColorYellow)
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q, expected %q", got, "abc\ndef")
	}
	if got := s.Row(5); got != "   " {
		t.Errorf("Row(5) = %q, expected blank row", got)
	}
}

func TestScreenResize(t *testing.T) {
	tests := []struct {
		name     string
		w, h     int
		expected string
	}{
		{"shrink", 3, 1, "HUD"},
		{"grow", 6, 3, "HUD=  \n  ●   \n      "},
		{"same", 4, 2, "HUD=\n  ● "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(4, 2)
			s.DrawText(0, 0, "HUD=")
			s.Set(2, 1, '●')

			s.Resize(tc.w, tc.h)
			if s.Width() != tc.w || s.Height() != tc.h {
				t.Fatalf("size = %dx%d, expected %dx%d", s.Width(), s.Height(), tc.w, tc.h)
			}
			if got := s.String(); got != tc.expected {
				t.Errorf("String() = %q, expected %q", got, tc.expected)
			}
		})
	}
}
