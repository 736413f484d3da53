package game

import (
	"fmt"
	"time"

	"golang.org/x/exp/rand"

	"snake-classic/game/entity"
	"snake-classic/game/manager"
	"snake-classic/game/types"
)

// StepResult summarizes what a single tick did.
type StepResult struct {
	Ate       bool
	GameOver  bool
	Cleared   bool // the snake filled the whole grid
	Collision types.CollisionType
}

// Game is the state of one single-player snake game.
// It is not safe for concurrent use: the driver serializes every call.
type Game struct {
	grid         types.Grid
	rng          types.Intner
	snake        *entity.Snake
	direction    types.Direction
	queued       types.Direction
	food         types.Point
	hasFood      bool
	score        int
	applesEaten  int
	ticks        int
	state        *manager.StateManager
	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
}

type Option func(*Game)

// WithRand sets the random source used for food placement.
func WithRand(rng types.Intner) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithSeed seeds the default random source, for reproducible games.
func WithSeed(seed uint64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func NewGame(width, height int, opts ...Option) (*Game, error) {
	grid := types.Grid{
		Width:  width,
		Height: height,
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		grid:         grid,
		state:        manager.NewStateManager(),
		collisionMgr: manager.NewCollisionManager(grid),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	g.foodMgr = manager.NewFoodManager(grid, g.rng)

	g.Reset()
	return g, nil
}

// Reset discards the current game and starts over from the canonical state.
func (g *Game) Reset() {
	g.snake = entity.NewSnake(g.grid.Center(), 0)
	g.direction = types.RIGHT
	g.queued = types.RIGHT
	g.score = 0
	g.applesEaten = 0
	g.ticks = 0
	g.state.Reset()
	g.placeFood()
}

// QueueDirection records d as the direction for the next tick. Only the last
// accepted call before a tick counts. Reversing the active direction is ignored.
func (g *Game) QueueDirection(d types.Direction) bool {
	if !g.state.CanSteer() || !d.Valid() {
		return false
	}
	if d == g.direction.Opposite() {
		return false
	}
	g.queued = d
	return true
}

// TogglePause pauses or resumes the game. It does nothing once the game is over.
func (g *Game) TogglePause() bool {
	return g.state.TogglePause()
}

// Step advances the game by one cell.
func (g *Game) Step() StepResult {
	if !g.state.CanStep() {
		return StepResult{GameOver: g.IsOver(), Collision: g.state.Cause()}
	}

	g.direction = g.queued
	g.ticks++

	newHead := g.snake.GetHead().Add(g.direction.ToPoint())

	// No partial move on collision: the body stays where it was.
	if collision := g.collisionMgr.Check(newHead, g.snake); collision != types.NoCollision {
		g.state.End(collision)
		return StepResult{GameOver: true, Collision: collision}
	}

	g.snake.PushHead(newHead)

	if !g.hasFood || !g.collisionMgr.IsFoodCollision(newHead, g.food) {
		g.snake.PopTail()
		return StepResult{}
	}

	g.score += types.FoodReward
	g.applesEaten++

	if g.snake.Len() == g.grid.Area() {
		g.hasFood = false
		g.state.End(types.NoCollision)
		return StepResult{Ate: true, GameOver: true, Cleared: true}
	}

	g.placeFood()
	return StepResult{Ate: true}
}

func (g *Game) placeFood() {
	food, err := g.foodMgr.Place(g.snake)
	if err != nil {
		// Free cells are guaranteed by the caller; reaching this is a bug.
		panic(fmt.Errorf("place food: %w", err))
	}
	g.food = food
	g.hasFood = true
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

// Body returns a copy of the snake cells, head first.
func (g *Game) Body() []types.Point {
	return g.snake.Cells()
}

func (g *Game) Head() types.Point {
	return g.snake.GetHead()
}

func (g *Game) Len() int {
	return g.snake.Len()
}

func (g *Game) GetFood() types.Point {
	return g.food
}

// HasFood is false only after the board has been cleared.
func (g *Game) HasFood() bool {
	return g.hasFood
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) ApplesEaten() int {
	return g.applesEaten
}

func (g *Game) Ticks() int {
	return g.ticks
}

func (g *Game) Direction() types.Direction {
	return g.direction
}

func (g *Game) QueuedDirection() types.Direction {
	return g.queued
}

func (g *Game) Status() types.Status {
	return g.state.Status()
}

func (g *Game) Cause() types.CollisionType {
	return g.state.Cause()
}

func (g *Game) IsOver() bool {
	return g.state.Status() == types.GameOver
}

func (g *Game) IsPaused() bool {
	return g.state.Status() == types.Paused
}
