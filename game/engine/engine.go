package engine

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine provides the main interface for game session operations
type Engine interface {
	// Per-tick update
	Step() StepResult
	ChangeDirection(d Direction) bool

	// Lifecycle
	TogglePause() bool
	Restart()
	IsGameOver() bool
	IsPaused() bool

	// State access
	Score() int
	TickInterval() time.Duration
	Snapshot() Snapshot
	SnakeAnalytics() SnakeAnalytics
	FoodStats() FoodStats
}

// GameEngine implements the Engine interface. It owns one live game
// session: snake, food, score, speed, and the paused/game-over flags.
// All mutation happens on the caller's goroutine; the loop is the only
// writer.
type GameEngine struct {
	config *Config
	rng    *rand.Rand

	snake    *Snake
	food     *Food
	score    int
	interval time.Duration
	paused   bool
	gameOver bool
}

// NewEngine creates a new game engine with the provided configuration.
// A nil configuration falls back to the built-in defaults.
func NewEngine(config *Config) (*GameEngine, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := ValidateConfig(config); err != nil {
		return nil, err
	}

	e := &GameEngine{
		config: config,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	e.initSession()
	return e, nil
}

// NewEngineWithDefaults creates a new game engine with default configuration.
func NewEngineWithDefaults() *GameEngine {
	e, err := NewEngine(nil)
	if err != nil {
		// Defaults always validate.
		panic(fmt.Sprintf("default config invalid: %v", err))
	}
	return e
}

// SetRand replaces the random source used for food placement.
func (e *GameEngine) SetRand(rng *rand.Rand) {
	e.rng = rng
	e.food = NewFood(e.config.Game.GridWidth(), e.config.Game.GridHeight(), rng)
	e.food.Spawn(e.snake.Body())
}

// initSession builds a fresh snake, food, and transient flags. The
// snake starts at the center of the grid; nothing from a previous
// session is reused.
func (e *GameEngine) initSession() {
	gridW := e.config.Game.GridWidth()
	gridH := e.config.Game.GridHeight()

	e.snake = NewSnake(gridW/2, gridH/2)
	e.food = NewFood(gridW, gridH, e.rng)
	e.food.Spawn(e.snake.Body())

	e.score = 0
	e.interval = e.config.Game.InitialInterval()
	e.paused = false
	e.gameOver = false
}

// Step executes one simulation tick: advance the snake, check wall then
// self collision, then food collision. Eating grows the snake, raises
// the score, speeds up the tick cadence, and respawns the food away
// from the new body. Step is a no-op while paused or after game over.
func (e *GameEngine) Step() StepResult {
	if e.paused || e.gameOver {
		return StepResult{}
	}

	e.snake.Move()
	result := StepResult{Moved: true}

	gridW := e.config.Game.GridWidth()
	gridH := e.config.Game.GridHeight()

	if e.snake.CheckWallCollision(gridW, gridH) {
		e.gameOver = true
		result.GameOver = true
		result.Cause = CauseWall
		return result
	}

	if e.snake.CheckSelfCollision() {
		e.gameOver = true
		result.GameOver = true
		result.Cause = CauseSelf
		return result
	}

	if e.food.CheckCollision(e.snake.Head()) {
		e.snake.Grow()
		e.score += ScoreIncrement
		e.speedUp()
		e.food.Spawn(e.snake.Body())
		result.AteFood = true
	}

	return result
}

// speedUp shrinks the tick interval by the configured step, clamped at
// the configured floor. The interval only decreases within a session.
func (e *GameEngine) speedUp() {
	min := e.config.Game.MinInterval()
	if e.interval <= min {
		return
	}
	e.interval -= e.config.Game.SpeedStep()
	if e.interval < min {
		e.interval = min
	}
}

// ChangeDirection requests a direction change, applied on the next
// Step. Returns false if the change was rejected as a reversal.
func (e *GameEngine) ChangeDirection(d Direction) bool {
	return e.snake.ChangeDirection(d)
}

// TogglePause flips the paused flag. Pausing is not allowed after game
// over; in that case TogglePause returns false.
func (e *GameEngine) TogglePause() bool {
	if e.gameOver {
		return false
	}
	e.paused = !e.paused
	return true
}

// Restart fully reinitializes the session: new snake, new food, score
// and speed reset to their configured initial values.
func (e *GameEngine) Restart() {
	e.initSession()
}

// IsGameOver returns whether the session has ended.
func (e *GameEngine) IsGameOver() bool {
	return e.gameOver
}

// IsPaused returns whether the session is paused.
func (e *GameEngine) IsPaused() bool {
	return e.paused
}

// Score returns the current score.
func (e *GameEngine) Score() int {
	return e.score
}

// TickInterval returns the current tick cadence.
func (e *GameEngine) TickInterval() time.Duration {
	return e.interval
}

// Config returns the engine's configuration.
func (e *GameEngine) Config() *Config {
	return e.config
}

// Snake returns the live snake. Intended for tests and diagnostics.
func (e *GameEngine) Snake() *Snake {
	return e.snake
}

// SnakeAnalytics returns the snake's movement metrics.
func (e *GameEngine) SnakeAnalytics() SnakeAnalytics {
	return e.snake.Analytics()
}

// FoodStats returns the food metrics.
func (e *GameEngine) FoodStats() FoodStats {
	return e.food.Stats()
}

// Snapshot returns a read-only copy of the session state for renderers
// and spectators.
func (e *GameEngine) Snapshot() Snapshot {
	return Snapshot{
		Body:     e.snake.Body(),
		Food:     e.food.Position(),
		Score:    e.score,
		Length:   e.snake.Length(),
		SpeedMs:  int(e.interval / time.Millisecond),
		Paused:   e.paused,
		GameOver: e.gameOver,
	}
}
