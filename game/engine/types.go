package engine

import "fmt"

// Direction represents one of the four axis-aligned movement directions.
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
	DirectionLeft
	DirectionRight
)

const (
	// ScoreIncrement is the score awarded per food item.
	ScoreIncrement = 10

	// SpawnMaxAttempts bounds the random food placement retries.
	SpawnMaxAttempts = 100
)

// Position represents x,y coordinates in grid units
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position offset by another position.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Delta returns the unit displacement vector for the direction.
func (d Direction) Delta() Position {
	switch d {
	case DirectionUp:
		return Position{X: 0, Y: -1}
	case DirectionDown:
		return Position{X: 0, Y: 1}
	case DirectionLeft:
		return Position{X: -1, Y: 0}
	case DirectionRight:
		return Position{X: 1, Y: 0}
	}
	return Position{}
}

// Opposite returns the reverse direction. Applying it twice returns the
// original direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// ParseDirection converts a direction name to a Direction.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "up":
		return DirectionUp, true
	case "down":
		return DirectionDown, true
	case "left":
		return DirectionLeft, true
	case "right":
		return DirectionRight, true
	}
	return DirectionUp, false
}

// SnakeAnalytics is a read-only snapshot of snake movement metrics.
type SnakeAnalytics struct {
	Length           int     `json:"length"`
	TotalMoves       int     `json:"total_moves"`
	DirectionChanges int     `json:"direction_changes"`
	EfficiencyRatio  float64 `json:"efficiency_ratio"`
}

// FoodStats is a read-only snapshot of food metrics.
type FoodStats struct {
	FoodsEaten      int      `json:"foods_eaten"`
	CurrentPosition Position `json:"current_position"`
}

// GameOverCause identifies which collision ended a session.
type GameOverCause string

const (
	CauseNone GameOverCause = ""
	CauseWall GameOverCause = "wall"
	CauseSelf GameOverCause = "self"
)

// Snapshot is the read-only view of a game session handed to renderers
// and spectators once per tick.
type Snapshot struct {
	Body      []Position `json:"body"`
	Food      Position   `json:"food"`
	Score     int        `json:"score"`
	Length    int        `json:"length"`
	SpeedMs   int        `json:"speed_ms"`
	Paused    bool       `json:"paused"`
	GameOver  bool       `json:"game_over"`
	BestScore int        `json:"best_score,omitempty"`
}

// StepResult reports what happened during a single engine tick.
type StepResult struct {
	Moved    bool
	AteFood  bool
	GameOver bool
	Cause    GameOverCause
}
