package stats

import (
	"time"

	"snakegame/game/engine"
)

// Recorder accumulates statistics for one live session and produces the
// SessionRecord that gets persisted when the session ends.
type Recorder struct {
	current SessionRecord
}

// NewRecorder creates a recorder with no session in progress.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Start begins tracking a new session. Any in-progress session is
// discarded.
func (r *Recorder) Start(now time.Time) {
	r.current = SessionRecord{
		StartTime: now,
		MaxLength: 1,
	}
}

// Update refreshes the running statistics from the engine's analytics.
// MaxLength is a running maximum.
func (r *Recorder) Update(analytics engine.SnakeAnalytics, food engine.FoodStats, score int) {
	r.current.Score = score
	r.current.TotalMoves = analytics.TotalMoves
	r.current.DirectionChanges = analytics.DirectionChanges
	r.current.FoodsEaten = food.FoodsEaten
	if analytics.Length > r.current.MaxLength {
		r.current.MaxLength = analytics.Length
	}
}

// Finalize stamps the end time and returns the completed record.
func (r *Recorder) Finalize(now time.Time) SessionRecord {
	r.current.EndTime = now
	r.current.DurationSeconds = now.Sub(r.current.StartTime).Seconds()
	return r.current
}
