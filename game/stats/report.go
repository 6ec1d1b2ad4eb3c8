package stats

import (
	"errors"
	"math"

	"github.com/samber/lo"
)

// ErrNoData is returned when a report is requested but no games have
// been recorded yet.
var ErrNoData = errors.New("no game data recorded")

// Report is a progress analysis over the persisted game history.
type Report struct {
	Summary        Summary  `json:"summary"`
	WorstScore     int      `json:"worst_score"`
	ScoreStdDev    float64  `json:"score_std_dev"`
	RecentAverage  float64  `json:"recent_average"`
	EarlierAverage float64  `json:"earlier_average"`
	Improving      bool     `json:"improving"`
	Achievements   []string `json:"achievements"`
}

// recentWindow is how many trailing games count as "recent" when
// comparing against earlier play.
const recentWindow = 10

// BuildReport analyzes the game history: aggregate summary, score
// spread, a recent-vs-earlier trend, and unlocked achievements. Returns
// ErrNoData when the history is empty.
func BuildReport(history []SessionRecord) (*Report, error) {
	if len(history) == 0 {
		return nil, ErrNoData
	}

	summary := Summarize(history)
	worst := lo.MinBy(history, func(a, b SessionRecord) bool { return a.Score < b.Score })

	report := &Report{
		Summary:      summary,
		WorstScore:   worst.Score,
		ScoreStdDev:  round2(scoreStdDev(history, summary.AverageScore)),
		Achievements: achievements(history, summary),
	}

	recent := history
	if len(history) > recentWindow {
		recent = history[len(history)-recentWindow:]
		earlier := history[:len(history)-recentWindow]
		report.EarlierAverage = round2(averageScore(earlier))
	}
	report.RecentAverage = round2(averageScore(recent))
	report.Improving = report.RecentAverage > report.EarlierAverage

	return report, nil
}

// achievements lists the milestones the history has unlocked.
func achievements(history []SessionRecord, summary Summary) []string {
	var unlocked []string
	if summary.TotalGames >= 10 {
		unlocked = append(unlocked, "Dedicated Player: 10+ games played")
	}
	if summary.BestScore >= 100 {
		unlocked = append(unlocked, "Century Club: scored 100+ in a single game")
	}
	if summary.TotalPlaytime >= 3600 {
		unlocked = append(unlocked, "Marathon: over an hour of total playtime")
	}
	if summary.TotalGames >= 5 && summary.AverageScore > 0 {
		cv := scoreStdDev(history, summary.AverageScore) / summary.AverageScore
		if cv < 0.5 {
			unlocked = append(unlocked, "Consistent: steady scores across 5+ games")
		}
	}
	return unlocked
}

func averageScore(history []SessionRecord) float64 {
	if len(history) == 0 {
		return 0
	}
	total := lo.SumBy(history, func(r SessionRecord) int { return r.Score })
	return float64(total) / float64(len(history))
}

// scoreStdDev is the sample standard deviation of scores; zero when
// fewer than two games exist.
func scoreStdDev(history []SessionRecord, mean float64) float64 {
	if len(history) < 2 {
		return 0
	}
	var sum float64
	for _, r := range history {
		d := float64(r.Score) - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(history)-1))
}
