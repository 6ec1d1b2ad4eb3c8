package stats

import (
	"testing"
	"time"

	"snakegame/game/engine"
)

func TestRecorderLifecycle(t *testing.T) {
	r := NewRecorder()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	r.Start(start)
	r.Update(engine.SnakeAnalytics{Length: 3, TotalMoves: 40, DirectionChanges: 7}, engine.FoodStats{FoodsEaten: 2}, 20)
	r.Update(engine.SnakeAnalytics{Length: 5, TotalMoves: 80, DirectionChanges: 12}, engine.FoodStats{FoodsEaten: 4}, 40)

	record := r.Finalize(start.Add(45 * time.Second))

	if record.Score != 40 {
		t.Errorf("Score = %d, want 40", record.Score)
	}
	if record.MaxLength != 5 {
		t.Errorf("MaxLength = %d, want 5", record.MaxLength)
	}
	if record.TotalMoves != 80 {
		t.Errorf("TotalMoves = %d, want 80", record.TotalMoves)
	}
	if record.DirectionChanges != 12 {
		t.Errorf("DirectionChanges = %d, want 12", record.DirectionChanges)
	}
	if record.FoodsEaten != 4 {
		t.Errorf("FoodsEaten = %d, want 4", record.FoodsEaten)
	}
	if record.DurationSeconds != 45 {
		t.Errorf("DurationSeconds = %v, want 45", record.DurationSeconds)
	}
	if !record.StartTime.Equal(start) {
		t.Errorf("StartTime = %v, want %v", record.StartTime, start)
	}
}

func TestRecorderMaxLengthIsMonotonic(t *testing.T) {
	r := NewRecorder()
	r.Start(time.Now())

	r.Update(engine.SnakeAnalytics{Length: 8, TotalMoves: 10}, engine.FoodStats{}, 70)
	r.Update(engine.SnakeAnalytics{Length: 2, TotalMoves: 20}, engine.FoodStats{}, 70)

	record := r.Finalize(time.Now())
	if record.MaxLength != 8 {
		t.Errorf("MaxLength = %d, want peak 8", record.MaxLength)
	}
}

func TestRecorderStartDiscardsPreviousSession(t *testing.T) {
	r := NewRecorder()
	r.Start(time.Now())
	r.Update(engine.SnakeAnalytics{Length: 9, TotalMoves: 99}, engine.FoodStats{FoodsEaten: 8}, 80)

	r.Start(time.Now())
	record := r.Finalize(time.Now())

	if record.Score != 0 || record.MaxLength != 1 || record.FoodsEaten != 0 {
		t.Errorf("record after restart = %+v, want fresh session", record)
	}
}
