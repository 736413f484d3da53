package types

import (
	"errors"
	"fmt"
	"math"
)

// Point is a grid cell
type Point struct {
	X, Y int
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Game constants
const (
	DefaultGridWidth  = 40 // 800px window at 20px per cell
	DefaultGridHeight = 30 // 600px window at 20px per cell
	FoodReward        = 10
	TickRate          = 10 // ticks per second
	NightModeApples   = 10 // apples eaten before the background darkens
)

var (
	// ErrInvalidGrid is returned for grids that cannot hold a snake and a food cell.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrGridFull is returned when no free cell is left for food.
	ErrGridFull = errors.New("grid is full")
)

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Center is the starting cell of a fresh snake.
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Validate checks that the grid has room for at least a snake head and one
// food cell, and that its area fits in an int.
func (g Grid) Validate() error {
	if g.Width <= 0 || g.Height <= 0 || g.Width > math.MaxInt/g.Height || g.Area() < 2 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGrid, g.Width, g.Height)
	}
	return nil
}

// Occupancy is a read-only view of occupied cells.
type Occupancy interface {
	Contains(p Point) bool
	Len() int
}

// CellSet is a plain set of cells.
type CellSet map[Point]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...Point) CellSet {
	s := make(CellSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

func (s CellSet) Contains(p Point) bool {
	_, ok := s[p]
	return ok
}

func (s CellSet) Len() int {
	return len(s)
}

// Intner is the random source used for food placement.
type Intner interface {
	Intn(n int) int
}

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

// Status is the state of a game.
type Status int

const (
	Playing Status = iota
	Paused
	GameOver
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// PowerUpType lists the power-ups known to the game.
// Not consumed by the update loop yet.
type PowerUpType int

const (
	PowerUpSlowDown PowerUpType = iota + 1
	PowerUpWallImmunity
)

func (p PowerUpType) String() string {
	switch p {
	case PowerUpSlowDown:
		return "slow_down"
	case PowerUpWallImmunity:
		return "wall_immunity"
	default:
		return "unknown"
	}
}
