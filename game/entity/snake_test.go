package entity

import (
	"testing"

	"snake-classic/game/types"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(types.Point{X: 3, Y: 4}, 0)

	if s.Len() != 1 {
		t.Fatalf("Expected length 1, got %d", s.Len())
	}
	if s.GetHead() != (types.Point{X: 3, Y: 4}) {
		t.Errorf("Expected head (3,4), got %v", s.GetHead())
	}
	if s.Tail() != s.GetHead() {
		t.Errorf("Expected tail to equal head for a single cell snake")
	}
	if !s.Contains(types.Point{X: 3, Y: 4}) {
		t.Error("Expected snake to contain its head")
	}
}

func TestPushHeadPopTail(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0}, 2)
	s.PushHead(types.Point{X: 1, Y: 0})
	s.PushHead(types.Point{X: 2, Y: 0})

	want := []types.Point{{X: 2, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 0}}
	assertCells(t, s, want)

	tail, ok := s.PopTail()
	if !ok || tail != (types.Point{X: 0, Y: 0}) {
		t.Errorf("Expected tail (0,0), got %v (ok=%v)", tail, ok)
	}
	if s.Contains(types.Point{X: 0, Y: 0}) {
		t.Error("Popped tail should no longer be occupied")
	}
	assertCells(t, s, want[:2])
}

func TestPopTailKeepsHead(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, 4)

	if _, ok := s.PopTail(); ok {
		t.Error("Expected PopTail to refuse removing the head")
	}
	if s.Len() != 1 {
		t.Errorf("Expected length 1, got %d", s.Len())
	}
}

func TestRingWrapsAndGrows(t *testing.T) {
	s := NewSnake(types.Point{X: 0, Y: 0}, minCapacity)

	// Slide a fixed-length snake far enough for the head index to wrap many times.
	for x := 1; x <= 50; x++ {
		s.PushHead(types.Point{X: x, Y: 0})
		if s.Len() > 3 {
			s.PopTail()
		}
	}
	assertCells(t, s, []types.Point{{X: 50, Y: 0}, {X: 49, Y: 0}, {X: 48, Y: 0}})

	// Grow past the initial capacity.
	for y := 1; y <= 3*minCapacity; y++ {
		s.PushHead(types.Point{X: 50, Y: y})
	}
	if s.Len() != 3+3*minCapacity {
		t.Fatalf("Expected length %d, got %d", 3+3*minCapacity, s.Len())
	}
	if s.GetHead() != (types.Point{X: 50, Y: 3 * minCapacity}) {
		t.Errorf("Unexpected head after growth: %v", s.GetHead())
	}
	if s.Tail() != (types.Point{X: 48, Y: 0}) {
		t.Errorf("Expected tail (48,0) after growth, got %v", s.Tail())
	}
	for i, c := range s.Cells() {
		if !s.Contains(c) {
			t.Errorf("Cell %d (%v) missing from occupancy", i, c)
		}
	}
}

func assertCells(t *testing.T, s *Snake, want []types.Point) {
	t.Helper()
	got := s.Cells()
	if len(got) != len(want) {
		t.Fatalf("Expected %d cells, got %d (%v)", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Cell %d: expected %v, got %v", i, want[i], got[i])
		}
		if s.At(i) != want[i] {
			t.Errorf("At(%d): expected %v, got %v", i, want[i], s.At(i))
		}
	}
}
