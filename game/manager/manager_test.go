package manager

import (
	"errors"
	"testing"

	"golang.org/x/exp/rand"

	"snake-classic/game/types"
)

// scriptedRand replays fixed draws, reduced modulo n.
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) Intn(n int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v % n
}

func TestPlaceAvoidsOccupied(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	// First draw lands on (2,2) which is occupied, second on (3,1).
	rng := &scriptedRand{values: []int{2, 2, 3, 1}}
	fm := NewFoodManager(grid, rng)

	food, err := fm.Place(types.NewCellSet(types.Point{X: 2, Y: 2}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if food != (types.Point{X: 3, Y: 1}) {
		t.Errorf("Expected (3,1), got %v", food)
	}
}

func TestPlaceFallsBackToFreeCells(t *testing.T) {
	grid := types.Grid{Width: 3, Height: 3}
	occupied := types.NewCellSet()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x != 2 || y != 1 {
				occupied[types.Point{X: x, Y: y}] = struct{}{}
			}
		}
	}
	// Always draws (0,0), which is occupied, so only the fallback can succeed.
	rng := &scriptedRand{values: []int{0}}
	fm := NewFoodManager(grid, rng)

	food, err := fm.Place(occupied)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if food != (types.Point{X: 2, Y: 1}) {
		t.Errorf("Expected the only free cell (2,1), got %v", food)
	}
	if rng.calls != 2*DefaultPlacementAttempts+1 {
		t.Errorf("Expected %d draws, got %d", 2*DefaultPlacementAttempts+1, rng.calls)
	}
}

func TestPlaceFullGrid(t *testing.T) {
	grid := types.Grid{Width: 2, Height: 1}
	fm := NewFoodManager(grid, rand.New(rand.NewSource(1)))

	_, err := fm.Place(types.NewCellSet(types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0}))
	if !errors.Is(err, types.ErrGridFull) {
		t.Errorf("Expected ErrGridFull, got %v", err)
	}
}

func TestPlaceCoversAllFreeCells(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 3}
	occupied := types.NewCellSet(types.Point{X: 0, Y: 0}, types.Point{X: 1, Y: 0}, types.Point{X: 1, Y: 1})
	fm := NewFoodManager(grid, rand.New(rand.NewSource(42)))

	seen := make(map[types.Point]int)
	for i := 0; i < 3000; i++ {
		food, err := fm.Place(occupied)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if occupied.Contains(food) {
			t.Fatalf("Food placed on occupied cell %v", food)
		}
		if !grid.Contains(food) {
			t.Fatalf("Food placed outside grid: %v", food)
		}
		seen[food]++
	}

	free := grid.Area() - occupied.Len()
	if len(seen) != free {
		t.Errorf("Expected all %d free cells to be drawn, saw %d", free, len(seen))
	}
	// 3000 draws over 9 cells: roughly 333 each.
	for cell, n := range seen {
		if n < 200 || n > 470 {
			t.Errorf("Cell %v drawn %d times, distribution looks skewed", cell, n)
		}
	}
}

func TestCollisionManagerCheck(t *testing.T) {
	cm := NewCollisionManager(types.Grid{Width: 5, Height: 5})
	body := types.NewCellSet(types.Point{X: 2, Y: 2}, types.Point{X: 2, Y: 3}, types.Point{X: 2, Y: 4})

	tests := []struct {
		pos  types.Point
		want types.CollisionType
	}{
		{types.Point{X: 5, Y: 2}, types.WallCollision},
		{types.Point{X: -1, Y: 2}, types.WallCollision},
		{types.Point{X: 2, Y: -1}, types.WallCollision},
		{types.Point{X: 2, Y: 5}, types.WallCollision},
		{types.Point{X: 2, Y: 3}, types.SelfCollision},
		{types.Point{X: 2, Y: 4}, types.SelfCollision},
		{types.Point{X: 3, Y: 2}, types.NoCollision},
	}

	for _, tt := range tests {
		if got := cm.Check(tt.pos, body); got != tt.want {
			t.Errorf("%v: expected %s, got %s", tt.pos, tt.want, got)
		}
	}

	if !cm.IsFoodCollision(types.Point{X: 1, Y: 1}, types.Point{X: 1, Y: 1}) {
		t.Error("Expected food collision on same cell")
	}
}

func TestStateManagerTransitions(t *testing.T) {
	sm := NewStateManager()

	if sm.Status() != types.Playing || !sm.CanStep() || !sm.CanSteer() {
		t.Fatalf("Expected a fresh state manager to be playing, got %s", sm.Status())
	}

	if !sm.TogglePause() || sm.Status() != types.Paused {
		t.Fatalf("Expected Paused after toggle, got %s", sm.Status())
	}
	if sm.CanStep() || sm.CanSteer() {
		t.Error("Paused game must not step or steer")
	}
	if !sm.TogglePause() || sm.Status() != types.Playing {
		t.Fatalf("Expected Playing after second toggle, got %s", sm.Status())
	}

	sm.End(types.WallCollision)
	if sm.Status() != types.GameOver || sm.Cause() != types.WallCollision {
		t.Errorf("Expected GameOver by wall, got %s by %s", sm.Status(), sm.Cause())
	}
	if sm.TogglePause() {
		t.Error("TogglePause must be a no-op after game over")
	}
	if sm.Status() != types.GameOver {
		t.Errorf("Expected GameOver to stick, got %s", sm.Status())
	}

	sm.Reset()
	if sm.Status() != types.Playing || sm.Cause() != types.NoCollision {
		t.Errorf("Expected clean Playing state after reset, got %s / %s", sm.Status(), sm.Cause())
	}
}
