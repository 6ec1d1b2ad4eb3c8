package stats

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Summary aggregates the persisted game history.
type Summary struct {
	TotalGames          int     `json:"total_games"`
	TotalPlaytime       float64 `json:"total_playtime"`
	AverageScore        float64 `json:"average_score"`
	BestScore           int     `json:"best_score"`
	TotalFoodsEaten     int     `json:"total_foods_eaten"`
	AverageGameDuration float64 `json:"average_game_duration"`
}

// Summarize computes the aggregate summary over the given history. An
// empty history produces a zero summary.
func Summarize(history []SessionRecord) Summary {
	if len(history) == 0 {
		return Summary{}
	}

	totalScore := lo.SumBy(history, func(r SessionRecord) int { return r.Score })
	totalPlaytime := lo.SumBy(history, func(r SessionRecord) float64 { return r.DurationSeconds })
	best := lo.MaxBy(history, func(a, b SessionRecord) bool { return a.Score > b.Score })

	games := len(history)
	return Summary{
		TotalGames:          games,
		TotalPlaytime:       round2(totalPlaytime),
		AverageScore:        round2(float64(totalScore) / float64(games)),
		BestScore:           best.Score,
		TotalFoodsEaten:     lo.SumBy(history, func(r SessionRecord) int { return r.FoodsEaten }),
		AverageGameDuration: round2(totalPlaytime / float64(games)),
	}
}

// FormatSummary renders the summary as the console block shown to the
// player when a play session ends.
func FormatSummary(s Summary) string {
	return fmt.Sprintf(`
=== Session Summary ===
Games played:    %d
Best score:      %d
Average score:   %.2f
Foods eaten:     %d
Total playtime:  %.0fs
`,
		s.TotalGames, s.BestScore, s.AverageScore, s.TotalFoodsEaten, s.TotalPlaytime)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
