package stats

import "time"

const (
	// HistoryLimit caps the persisted game history to the most recent
	// sessions.
	HistoryLimit = 1000

	// HighScoreLimit caps the ranked high-score list.
	HighScoreLimit = 10
)

// SessionRecord is one finalized game session. This is the exact shape
// appended to the history log.
type SessionRecord struct {
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Score            int       `json:"score"`
	MaxLength        int       `json:"max_length"`
	DurationSeconds  float64   `json:"duration_seconds"`
	TotalMoves       int       `json:"total_moves"`
	DirectionChanges int       `json:"direction_changes"`
	FoodsEaten       int       `json:"foods_eaten"`
}

// HighScoreEntry is the derived entry folded into the top-ranked list.
type HighScoreEntry struct {
	Score           int       `json:"score"`
	MaxLength       int       `json:"max_length"`
	DurationSeconds float64   `json:"duration_seconds"`
	FoodsEaten      int       `json:"foods_eaten"`
	Date            time.Time `json:"date"`
	Efficiency      float64   `json:"efficiency"`
}

// Persistence defines the interface for storing finalized sessions.
type Persistence interface {
	// Record appends a finalized session to the history and folds its
	// derived entry into the high-score ranking.
	Record(record SessionRecord) error

	// History returns the persisted sessions, oldest first.
	History() []SessionRecord

	// HighScores returns the ranked high-score list, best first.
	HighScores() []HighScoreEntry
}

// deriveHighScore builds the ranking entry for a finalized session.
// Efficiency is max length per move, guarding against zero moves.
func deriveHighScore(record SessionRecord) HighScoreEntry {
	moves := record.TotalMoves
	if moves < 1 {
		moves = 1
	}
	return HighScoreEntry{
		Score:           record.Score,
		MaxLength:       record.MaxLength,
		DurationSeconds: record.DurationSeconds,
		FoodsEaten:      record.FoodsEaten,
		Date:            record.StartTime,
		Efficiency:      float64(record.MaxLength) / float64(moves),
	}
}
