package engine

import (
	"math/rand"
	"time"
)

// Food represents the single active food item on the grid.
type Food struct {
	gridWidth  int
	gridHeight int
	position   Position
	foodsEaten int
	rng        *rand.Rand
}

// NewFood creates a food item and spawns it at a random position.
// A nil rng falls back to a time-seeded source.
func NewFood(gridWidth, gridHeight int, rng *rand.Rand) *Food {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	f := &Food{
		gridWidth:  gridWidth,
		gridHeight: gridHeight,
		rng:        rng,
	}
	f.Spawn(nil)
	return f
}

// Spawn places the food at a random unoccupied cell. It draws up to
// SpawnMaxAttempts candidates, rejecting any that appear in occupied.
// If every attempt is exhausted the food is placed at (0,0) even when
// that cell is occupied; on a near-full board this is a known
// degenerate case and is accepted rather than treated as fatal.
func (f *Food) Spawn(occupied []Position) {
	for attempts := 0; attempts < SpawnMaxAttempts; attempts++ {
		candidate := Position{
			X: f.rng.Intn(f.gridWidth),
			Y: f.rng.Intn(f.gridHeight),
		}
		if !containsPosition(occupied, candidate) {
			f.position = candidate
			return
		}
	}
	f.position = Position{X: 0, Y: 0}
}

// CheckCollision reports whether the snake head is on the food. On a
// hit the eaten counter is incremented, so callers must invoke this at
// most once per tick.
func (f *Food) CheckCollision(head Position) bool {
	if head == f.position {
		f.foodsEaten++
		return true
	}
	return false
}

// Position returns the current food position.
func (f *Food) Position() Position {
	return f.position
}

// Stats returns a read-only snapshot of food metrics.
func (f *Food) Stats() FoodStats {
	return FoodStats{
		FoodsEaten:      f.foodsEaten,
		CurrentPosition: f.position,
	}
}

func containsPosition(positions []Position, p Position) bool {
	for _, pos := range positions {
		if pos == p {
			return true
		}
	}
	return false
}
