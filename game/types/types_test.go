package types

import (
	"errors"
	"math"
	"testing"
)

func TestDirectionDeltas(t *testing.T) {
	tests := []struct {
		dir      Direction
		want     Point
		opposite Direction
	}{
		{UP, Point{0, -1}, DOWN},
		{DOWN, Point{0, 1}, UP},
		{LEFT, Point{-1, 0}, RIGHT},
		{RIGHT, Point{1, 0}, LEFT},
		{NONE, Point{0, 0}, NONE},
	}

	for _, tt := range tests {
		if got := tt.dir.ToPoint(); got != tt.want {
			t.Errorf("%s: expected delta %v, got %v", tt.dir, tt.want, got)
		}
		if got := tt.dir.Opposite(); got != tt.opposite {
			t.Errorf("%s: expected opposite %s, got %s", tt.dir, tt.opposite, got)
		}
		sum := tt.dir.ToPoint().Add(tt.dir.Opposite().ToPoint())
		if sum != (Point{}) {
			t.Errorf("%s: delta and opposite delta should cancel, got %v", tt.dir, sum)
		}
	}
}

func TestDirectionValid(t *testing.T) {
	for _, d := range []Direction{UP, DOWN, LEFT, RIGHT} {
		if !d.Valid() {
			t.Errorf("Expected %s to be valid", d)
		}
	}
	for _, d := range []Direction{NONE, Direction(-1), Direction(42)} {
		if d.Valid() {
			t.Errorf("Expected %d to be invalid", int(d))
		}
		if d.ToPoint() != (Point{}) {
			t.Errorf("Expected zero delta for %d, got %v", int(d), d.ToPoint())
		}
	}
}

func TestGridValidate(t *testing.T) {
	tests := []struct {
		grid    Grid
		wantErr bool
	}{
		{Grid{40, 30}, false},
		{Grid{2, 1}, false},
		{Grid{1, 1}, true},
		{Grid{0, 10}, true},
		{Grid{10, 0}, true},
		{Grid{-3, 5}, true},
		{Grid{1<<32 + 1, 1 << 32}, true},
		{Grid{math.MaxInt, 2}, true},
		{Grid{math.MaxInt, 1}, false},
	}

	for _, tt := range tests {
		err := tt.grid.Validate()
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidGrid) {
				t.Errorf("%v: expected ErrInvalidGrid, got %v", tt.grid, err)
			}
		} else if err != nil {
			t.Errorf("%v: unexpected error %v", tt.grid, err)
		}
	}
}

func TestGridContainsAndCenter(t *testing.T) {
	g := Grid{Width: 5, Height: 4}

	if g.Area() != 20 {
		t.Errorf("Expected area 20, got %d", g.Area())
	}
	if c := g.Center(); c != (Point{2, 2}) {
		t.Errorf("Expected center (2,2), got %v", c)
	}

	inside := []Point{{0, 0}, {4, 3}, {2, 1}}
	outside := []Point{{-1, 0}, {5, 0}, {0, 4}, {0, -1}}
	for _, p := range inside {
		if !g.Contains(p) {
			t.Errorf("Expected %v inside grid", p)
		}
	}
	for _, p := range outside {
		if g.Contains(p) {
			t.Errorf("Expected %v outside grid", p)
		}
	}
}

func TestCommandDirection(t *testing.T) {
	tests := map[Command]Direction{
		CommandUp:    UP,
		CommandDown:  DOWN,
		CommandLeft:  LEFT,
		CommandRight: RIGHT,
	}
	for cmd, want := range tests {
		got, ok := cmd.Direction()
		if !ok || got != want {
			t.Errorf("%s: expected (%s, true), got (%s, %v)", cmd, want, got, ok)
		}
	}

	for _, cmd := range []Command{CommandNone, CommandTogglePause, CommandReset, CommandQuit} {
		if _, ok := cmd.Direction(); ok {
			t.Errorf("%s should not carry a direction", cmd)
		}
	}
}

func TestCellSet(t *testing.T) {
	s := NewCellSet(Point{1, 1}, Point{2, 1}, Point{1, 1})
	if s.Len() != 2 {
		t.Errorf("Expected 2 cells, got %d", s.Len())
	}
	if !s.Contains(Point{2, 1}) || s.Contains(Point{3, 1}) {
		t.Error("CellSet membership mismatch")
	}
}
