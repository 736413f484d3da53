package manager

import (
	"snake-classic/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Check classifies a candidate head position. The whole body counts,
// tail included, since the tail only moves after the head has been placed.
func (cm *CollisionManager) Check(pos types.Point, body types.Occupancy) types.CollisionType {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}
	if body.Contains(pos) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}
