package manager

import (
	"fmt"

	"snake-classic/game/types"
)

// DefaultPlacementAttempts bounds rejection sampling before falling back to a
// scan of the free cells.
const DefaultPlacementAttempts = 64

type FoodManager struct {
	grid        types.Grid
	rng         types.Intner
	maxAttempts int
}

func NewFoodManager(grid types.Grid, rng types.Intner) *FoodManager {
	return &FoodManager{
		grid:        grid,
		rng:         rng,
		maxAttempts: DefaultPlacementAttempts,
	}
}

// Place returns a uniformly random grid cell that is not occupied.
func (fm *FoodManager) Place(occupied types.Occupancy) (types.Point, error) {
	if occupied.Len() >= fm.grid.Area() {
		return types.Point{}, fmt.Errorf("%w: %d of %d cells occupied", types.ErrGridFull, occupied.Len(), fm.grid.Area())
	}

	for i := 0; i < fm.maxAttempts; i++ {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Width),
			Y: fm.rng.Intn(fm.grid.Height),
		}
		if !occupied.Contains(food) {
			return food, nil
		}
	}

	// Crowded grid: draw from the free cells directly.
	free := fm.freeCells(occupied)
	if len(free) == 0 {
		return types.Point{}, fmt.Errorf("%w: no free cell in %dx%d grid", types.ErrGridFull, fm.grid.Width, fm.grid.Height)
	}
	return free[fm.rng.Intn(len(free))], nil
}

func (fm *FoodManager) freeCells(occupied types.Occupancy) []types.Point {
	free := make([]types.Point, 0, fm.grid.Area()-occupied.Len())
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied.Contains(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
