package entity

import (
	"snake-classic/game/types"
)

const minCapacity = 8

// Snake is an ordered run of cells, head first, stored in a ring buffer so
// that growing at the head and dropping the tail are both O(1).
type Snake struct {
	ring     []types.Point
	head     int
	length   int
	occupied map[types.Point]struct{}
}

func NewSnake(startPos types.Point, capacity int) *Snake {
	if capacity < minCapacity {
		capacity = minCapacity
	}
	s := &Snake{
		ring:     make([]types.Point, capacity),
		occupied: make(map[types.Point]struct{}, capacity),
	}
	s.PushHead(startPos)
	return s
}

// PushHead prepends p as the new head.
func (s *Snake) PushHead(p types.Point) {
	if s.length == len(s.ring) {
		s.grow()
	}
	s.head = (s.head - 1 + len(s.ring)) % len(s.ring)
	s.ring[s.head] = p
	s.length++
	s.occupied[p] = struct{}{}
}

// PopTail removes and returns the last cell. The head is never removed.
func (s *Snake) PopTail() (types.Point, bool) {
	if s.length <= 1 {
		return types.Point{}, false
	}
	idx := (s.head + s.length - 1) % len(s.ring)
	tail := s.ring[idx]
	s.length--
	delete(s.occupied, tail)
	return tail, true
}

func (s *Snake) GetHead() types.Point {
	return s.ring[s.head]
}

func (s *Snake) Tail() types.Point {
	return s.At(s.length - 1)
}

// At returns the i-th cell counted from the head.
func (s *Snake) At(i int) types.Point {
	return s.ring[(s.head+i)%len(s.ring)]
}

func (s *Snake) Len() int {
	return s.length
}

func (s *Snake) Contains(p types.Point) bool {
	_, ok := s.occupied[p]
	return ok
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []types.Point {
	cells := make([]types.Point, s.length)
	for i := range cells {
		cells[i] = s.At(i)
	}
	return cells
}

func (s *Snake) grow() {
	ring := make([]types.Point, len(s.ring)*2)
	for i := 0; i < s.length; i++ {
		ring[i] = s.At(i)
	}
	s.ring = ring
	s.head = 0
}
