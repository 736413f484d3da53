package game

import (
	"snake-classic/game/types"
)

// Snapshot is a read-only copy of a game, safe to hand to a renderer.
type Snapshot struct {
	Grid        types.Grid
	Body        []types.Point
	Food        types.Point
	HasFood     bool
	Direction   types.Direction
	Score       int
	ApplesEaten int
	Ticks       int
	Status      types.Status
	Cause       types.CollisionType
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Grid:        g.grid,
		Body:        g.snake.Cells(),
		Food:        g.food,
		HasFood:     g.hasFood,
		Direction:   g.direction,
		Score:       g.score,
		ApplesEaten: g.applesEaten,
		Ticks:       g.ticks,
		Status:      g.state.Status(),
		Cause:       g.state.Cause(),
	}
}

// Head returns the head cell, the zero Point for an empty snapshot.
func (s Snapshot) Head() types.Point {
	if len(s.Body) == 0 {
		return types.Point{}
	}
	return s.Body[0]
}

// NightMode is on once enough apples have been eaten in this game.
func (s Snapshot) NightMode() bool {
	return s.ApplesEaten >= types.NightModeApples
}
