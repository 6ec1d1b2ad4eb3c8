// Command analyze prints a human-readable progress report over the
// recorded game history: aggregate statistics, the score trend, the
// high-score table, and unlocked achievements.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"snakegame/game/stats"
)

var (
	statsFile      = flag.String("stats", "data/game_stats.json", "Path to the game history file")
	highScoresFile = flag.String("highscores", "data/high_scores.json", "Path to the high scores file")
)

func main() {
	flag.Parse()

	store := stats.NewFileStore(*statsFile, *highScoresFile)

	report, err := stats.BuildReport(store.History())
	if err != nil {
		if errors.Is(err, stats.ErrNoData) {
			fmt.Println("No games recorded yet. Play a game first!")
			return
		}
		fmt.Fprintf(os.Stderr, "Error building report: %v\n", err)
		os.Exit(1)
	}

	printReport(report)
	printHighScores(store.HighScores())
}

func printReport(report *stats.Report) {
	s := report.Summary

	fmt.Println("\n=== Game Statistics ===")
	fmt.Printf("Total Games: %d\n", s.TotalGames)
	fmt.Printf("Total Playtime: %.0fs\n", s.TotalPlaytime)
	fmt.Printf("Best Score: %d\n", s.BestScore)
	fmt.Printf("Worst Score: %d\n", report.WorstScore)
	fmt.Printf("Average Score: %.2f (std dev %.2f)\n", s.AverageScore, report.ScoreStdDev)
	fmt.Printf("Average Game Duration: %.2fs\n", s.AverageGameDuration)
	fmt.Printf("Total Foods Eaten: %d\n", s.TotalFoodsEaten)

	fmt.Println("\n=== Trend ===")
	fmt.Printf("Recent Average: %.2f\n", report.RecentAverage)
	if report.EarlierAverage > 0 {
		fmt.Printf("Earlier Average: %.2f\n", report.EarlierAverage)
	}
	if report.Improving {
		fmt.Println("✅ Scores are improving")
	} else {
		fmt.Println("⚠️  Scores are not improving yet")
	}

	if len(report.Achievements) > 0 {
		fmt.Println("\n=== Achievements ===")
		for _, a := range report.Achievements {
			fmt.Printf("🏆 %s\n", a)
		}
	}
}

func printHighScores(scores []stats.HighScoreEntry) {
	if len(scores) == 0 {
		return
	}

	fmt.Println("\n=== High Scores ===")
	fmt.Printf("%-4s %-7s %-7s %-6s %-10s %s\n", "#", "Score", "Length", "Foods", "Duration", "Date")
	for i, entry := range scores {
		fmt.Printf("%-4d %-7d %-7d %-6d %-10.1f %s\n",
			i+1, entry.Score, entry.MaxLength, entry.FoodsEaten,
			entry.DurationSeconds, entry.Date.Format("2006-01-02"))
	}
	fmt.Println()
}
