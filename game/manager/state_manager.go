package manager

import (
	"snake-classic/game/types"
)

// StateManager tracks the Playing / Paused / GameOver lifecycle of one game.
type StateManager struct {
	status types.Status
	cause  types.CollisionType
}

func NewStateManager() *StateManager {
	return &StateManager{status: types.Playing}
}

func (sm *StateManager) Status() types.Status {
	return sm.status
}

// Cause is the collision that ended the last game, NoCollision otherwise.
func (sm *StateManager) Cause() types.CollisionType {
	return sm.cause
}

// Reset is the only way out of GameOver.
func (sm *StateManager) Reset() {
	sm.status = types.Playing
	sm.cause = types.NoCollision
}

// TogglePause flips between Playing and Paused and reports whether anything changed.
func (sm *StateManager) TogglePause() bool {
	switch sm.status {
	case types.Playing:
		sm.status = types.Paused
	case types.Paused:
		sm.status = types.Playing
	default:
		return false
	}
	return true
}

func (sm *StateManager) End(cause types.CollisionType) {
	sm.status = types.GameOver
	sm.cause = cause
}

func (sm *StateManager) CanStep() bool {
	return sm.status == types.Playing
}

func (sm *StateManager) CanSteer() bool {
	return sm.status == types.Playing
}
