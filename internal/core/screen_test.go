package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	// Check that it's initialized with spaces
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Errorf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')  // Should not panic
	s.Set(100, 0, 'A') // Should not panic
	s.Set(0, -1, 'A')  // Should not panic
	s.Set(0, 100, 'A') // Should not panic

	// Out of bounds get should return space
	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetCellColor(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetCell(3, 3, '@', ColorGreen)

	cell := s.GetCell(3, 3)
	if cell.Rune != '@' {
		t.Errorf("GetCell(3, 3).Rune = %q, expected '@'", cell.Rune)
	}
	if cell.Color != ColorGreen {
		t.Errorf("GetCell(3, 3).Color = %v, expected ColorGreen", cell.Color)
	}

	// Plain Set uses the default color
	s.Set(4, 4, '#')
	if s.GetCell(4, 4).Color != ColorDefault {
		t.Error("Set should write in the default color")
	}

	// Out of bounds GetCell returns a blank cell
	if s.GetCell(-1, -1) != blank {
		t.Error("Out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)

	s.Fill('X')
	s.Clear()

	// Should all be blank cells now
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if s.GetCell(x, y) != blank {
				t.Errorf("After Clear, expected blank at (%d, %d), got %v", x, y, s.GetCell(x, y))
			}
		}
	}
}

func TestScreenFill(t *testing.T) {
	s := NewScreen(5, 5)
	s.Fill('#')

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("After Fill, expected '#' at (%d, %d), got %q", x, y, s.Get(x, y))
			}
		}
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Set(2, 2, 'A')
	s.Set(9, 9, 'B')

	s.Resize(5, 5)

	if s.Width() != 5 || s.Height() != 5 {
		t.Errorf("After resize got %dx%d, expected 5x5", s.Width(), s.Height())
	}
	// Overlapping content is preserved, the rest is gone
	if s.Get(2, 2) != 'A' {
		t.Errorf("Resize should preserve content inside the new bounds, got %q", s.Get(2, 2))
	}
	if s.Get(9, 9) != ' ' {
		t.Error("Content outside the new bounds should read as space")
	}

	// Growing clears the new area
	s.Resize(20, 20)
	if s.Get(2, 2) != 'A' {
		t.Error("Growing should keep existing content")
	}
	if s.Get(15, 15) != ' ' {
		t.Error("Grown area should be blank")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)

	s.DrawText(2, 1, "HELLO")

	if s.Get(2, 1) != 'H' || s.Get(6, 1) != 'O' {
		t.Errorf("DrawText placed wrong runes: row = %q", s.Row(1))
	}

	// Clipped at the right edge, no panic
	s.DrawText(18, 2, "LONG")
	if s.Get(18, 2) != 'L' || s.Get(19, 2) != 'O' {
		t.Errorf("DrawText should clip at the edge: row = %q", s.Row(2))
	}
}

func TestScreenDrawTextRuneIndexed(t *testing.T) {
	s := NewScreen(10, 3)

	// Multi-byte glyphs must occupy consecutive cells
	s.DrawText(1, 1, "●○●")

	if s.Get(1, 1) != '●' || s.Get(2, 1) != '○' || s.Get(3, 1) != '●' {
		t.Errorf("Multi-byte runes misaligned: row = %q", s.Row(1))
	}
	if s.Get(4, 1) != ' ' {
		t.Error("Three runes should fill exactly three cells")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 3)

	s.DrawTextCentered(1, "ABC")
	if s.Get(4, 1) != 'A' || s.Get(6, 1) != 'C' {
		t.Errorf("Centered text misplaced: row = %q", s.Row(1))
	}

	// Centering counts runes, not bytes
	s.DrawTextCentered(2, "───")
	if s.Get(4, 2) != '─' || s.Get(6, 2) != '─' {
		t.Errorf("Centered multi-byte text misplaced: row = %q", s.Row(2))
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 2), '#')

	for y := 2; y < 4; y++ {
		for x := 2; x < 5; x++ {
			if s.Get(x, y) != '#' {
				t.Errorf("Expected '#' at (%d, %d)", x, y)
			}
		}
	}
	if s.Get(5, 2) != ' ' || s.Get(2, 4) != ' ' {
		t.Error("DrawRect should not draw outside the rectangle")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4))

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' {
		t.Error("Box top corners wrong")
	}
	if s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Error("Box bottom corners wrong")
	}
	if s.Get(3, 1) != '─' || s.Get(1, 2) != '│' {
		t.Error("Box edges wrong")
	}
	if s.Get(3, 2) != ' ' {
		t.Error("Box interior should stay empty")
	}
}

func TestScreenDrawLines(t *testing.T) {
	s := NewScreen(10, 10)

	s.DrawHLine(1, 3, 5, '═')
	for x := 1; x < 6; x++ {
		if s.Get(x, 3) != '═' {
			t.Errorf("Expected '═' at (%d, 3)", x)
		}
	}
	if s.Get(6, 3) != ' ' {
		t.Error("HLine overran its length")
	}

	s.DrawVLine(8, 2, 4, '│')
	for y := 2; y < 6; y++ {
		if s.Get(8, y) != '│' {
			t.Errorf("Expected '│' at (8, %d)", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "AB")
	s.DrawText(0, 1, "CD")

	out := s.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("String() produced %d lines, expected 2", len(lines))
	}
	if lines[0] != "AB " || lines[1] != "CD " {
		t.Errorf("String() = %q", out)
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(1, 1, "XYZ")

	if s.Row(1) != " XYZ " {
		t.Errorf("Row(1) = %q, expected \" XYZ \"", s.Row(1))
	}
	if s.Row(-1) != "     " {
		t.Error("Out of bounds Row should return spaces")
	}
}
