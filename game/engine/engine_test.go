package engine

import (
	"math/rand"
	"testing"
	"time"
)

// smallConfig returns a valid config with an 8x8 grid.
func smallConfig() *Config {
	config := DefaultConfig()
	config.Game.Width = 160
	config.Game.Height = 160
	return config
}

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngineWithDefaults()

	if e.Score() != 0 {
		t.Errorf("Score = %d, want 0", e.Score())
	}
	if e.IsPaused() || e.IsGameOver() {
		t.Error("new engine must be running")
	}
	if e.TickInterval() != 150*time.Millisecond {
		t.Errorf("TickInterval = %v, want 150ms", e.TickInterval())
	}

	head := e.Snake().Head()
	if head != (Position{X: 20, Y: 15}) {
		t.Errorf("snake starts at %v, want grid center {20 15}", head)
	}
}

func TestSetRandMakesSpawnsDeterministic(t *testing.T) {
	a := NewEngineWithDefaults()
	b := NewEngineWithDefaults()

	a.SetRand(rand.New(rand.NewSource(5)))
	b.SetRand(rand.New(rand.NewSource(5)))

	if a.FoodStats().CurrentPosition != b.FoodStats().CurrentPosition {
		t.Errorf("seeded spawns differ: %v vs %v",
			a.FoodStats().CurrentPosition, b.FoodStats().CurrentPosition)
	}
	if a.FoodStats().CurrentPosition == a.Snake().Head() {
		t.Error("seeded spawn landed on the snake")
	}
}

func TestStepAdvancesSnake(t *testing.T) {
	e := NewEngineWithDefaults()
	start := e.Snake().Head()

	result := e.Step()

	if !result.Moved {
		t.Error("Step must report a move")
	}
	want := Position{X: start.X + 1, Y: start.Y}
	if e.Snake().Head() != want {
		t.Errorf("head = %v, want %v", e.Snake().Head(), want)
	}
}

func TestEatingFood(t *testing.T) {
	e := NewEngineWithDefaults()
	head := e.Snake().Head()

	// Put the food directly in the snake's path.
	e.food.position = Position{X: head.X + 1, Y: head.Y}

	result := e.Step()
	if !result.AteFood {
		t.Fatal("expected AteFood")
	}
	if e.Score() != ScoreIncrement {
		t.Errorf("Score = %d, want %d", e.Score(), ScoreIncrement)
	}
	if e.Snake().Length() != 1 {
		t.Errorf("Length = %d immediately after eating, want 1 (growth is deferred)", e.Snake().Length())
	}

	// Move the food out of the way; the deferred growth lands now.
	e.food.position = Position{X: 0, Y: 0}
	e.snake.ChangeDirection(DirectionDown)
	e.Step()
	if e.Snake().Length() != 2 {
		t.Errorf("Length = %d after growth move, want 2", e.Snake().Length())
	}
}

func TestEatingSpeedsUpToFloor(t *testing.T) {
	config := DefaultConfig()
	config.Game.InitialSpeed = 60
	config.Game.SpeedIncrease = 5
	config.Game.MinSpeed = 50

	e, err := NewEngine(config)
	if err != nil {
		t.Fatal(err)
	}

	e.speedUp()
	if e.TickInterval() != 55*time.Millisecond {
		t.Errorf("interval = %v, want 55ms", e.TickInterval())
	}
	e.speedUp()
	if e.TickInterval() != 50*time.Millisecond {
		t.Errorf("interval = %v, want 50ms", e.TickInterval())
	}
	// At the floor the interval must not drop further.
	e.speedUp()
	if e.TickInterval() != 50*time.Millisecond {
		t.Errorf("interval = %v after floor, want 50ms", e.TickInterval())
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	e, err := NewEngine(smallConfig())
	if err != nil {
		t.Fatal(err)
	}

	// Head starts at (4,4) facing right on an 8x8 grid; the fourth
	// step crosses the wall. Keep the food out of the path.
	e.food.position = Position{X: 0, Y: 0}

	var result StepResult
	for i := 0; i < 4; i++ {
		result = e.Step()
	}

	if !result.GameOver || result.Cause != CauseWall {
		t.Fatalf("result = %+v, want wall game over", result)
	}
	if !e.IsGameOver() {
		t.Error("IsGameOver = false after wall hit")
	}

	// Further steps are no-ops.
	if after := e.Step(); after.Moved {
		t.Error("Step moved after game over")
	}
	if e.TogglePause() {
		t.Error("TogglePause accepted after game over")
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	e := NewEngineWithDefaults()

	// A snake curled below its own head. Turning down runs into a
	// segment that is not the tail, so it is still occupied after the
	// tail advances.
	e.snake = &Snake{
		body: []Position{
			{X: 10, Y: 10},
			{X: 9, Y: 10},
			{X: 8, Y: 10},
			{X: 8, Y: 11},
			{X: 9, Y: 11},
			{X: 10, Y: 11},
			{X: 11, Y: 11},
		},
		direction: DirectionRight,
	}
	e.food.position = Position{X: 0, Y: 0}

	e.ChangeDirection(DirectionDown)
	result := e.Step()

	if !result.GameOver || result.Cause != CauseSelf {
		t.Fatalf("result = %+v, want self game over", result)
	}
}

func TestPauseFreezesState(t *testing.T) {
	e := NewEngineWithDefaults()

	if !e.TogglePause() {
		t.Fatal("TogglePause rejected")
	}
	head := e.Snake().Head()

	if result := e.Step(); result.Moved {
		t.Error("Step moved while paused")
	}
	if e.Snake().Head() != head {
		t.Error("snake moved while paused")
	}

	e.TogglePause()
	if result := e.Step(); !result.Moved {
		t.Error("Step did not move after unpause")
	}
}

func TestRestartResetsSession(t *testing.T) {
	e, err := NewEngine(smallConfig())
	if err != nil {
		t.Fatal(err)
	}
	e.food.position = Position{X: 5, Y: 4}

	e.Step() // eat at (5,4)
	for !e.IsGameOver() {
		e.Step()
	}

	e.Restart()

	if e.IsGameOver() {
		t.Error("IsGameOver = true after restart")
	}
	if e.Score() != 0 {
		t.Errorf("Score = %d after restart, want 0", e.Score())
	}
	if e.Snake().Length() != 1 {
		t.Errorf("Length = %d after restart, want 1", e.Snake().Length())
	}
	if e.TickInterval() != e.Config().Game.InitialInterval() {
		t.Errorf("TickInterval = %v after restart, want %v", e.TickInterval(), e.Config().Game.InitialInterval())
	}
	if e.Snake().Head() != (Position{X: 4, Y: 4}) {
		t.Errorf("head = %v after restart, want grid center {4 4}", e.Snake().Head())
	}
}

func TestSnapshot(t *testing.T) {
	e := NewEngineWithDefaults()
	snapshot := e.Snapshot()

	if snapshot.Length != 1 {
		t.Errorf("Length = %d, want 1", snapshot.Length)
	}
	if snapshot.SpeedMs != 150 {
		t.Errorf("SpeedMs = %d, want 150", snapshot.SpeedMs)
	}
	if snapshot.Paused || snapshot.GameOver {
		t.Error("fresh snapshot must be running")
	}

	// The snapshot body is a copy; mutating it must not touch the snake.
	snapshot.Body[0] = Position{X: -99, Y: -99}
	if e.Snake().Head() == (Position{X: -99, Y: -99}) {
		t.Error("snapshot body aliases the live snake")
	}
}
