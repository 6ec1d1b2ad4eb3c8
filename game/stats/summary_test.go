package stats

import (
	"strings"
	"testing"
)

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.TotalGames != 0 || summary.BestScore != 0 || summary.AverageScore != 0 {
		t.Errorf("empty summary = %+v, want zero values", summary)
	}
}

func TestSummarize(t *testing.T) {
	history := []SessionRecord{
		{Score: 50, DurationSeconds: 30, FoodsEaten: 5},
		{Score: 120, DurationSeconds: 60, FoodsEaten: 12},
		{Score: 70, DurationSeconds: 45, FoodsEaten: 7},
	}

	summary := Summarize(history)

	if summary.TotalGames != 3 {
		t.Errorf("TotalGames = %d, want 3", summary.TotalGames)
	}
	if summary.BestScore != 120 {
		t.Errorf("BestScore = %d, want 120", summary.BestScore)
	}
	if summary.AverageScore != 80 {
		t.Errorf("AverageScore = %v, want 80", summary.AverageScore)
	}
	if summary.TotalPlaytime != 135 {
		t.Errorf("TotalPlaytime = %v, want 135", summary.TotalPlaytime)
	}
	if summary.AverageGameDuration != 45 {
		t.Errorf("AverageGameDuration = %v, want 45", summary.AverageGameDuration)
	}
	if summary.TotalFoodsEaten != 24 {
		t.Errorf("TotalFoodsEaten = %d, want 24", summary.TotalFoodsEaten)
	}
}

func TestFormatSummary(t *testing.T) {
	text := FormatSummary(Summary{
		TotalGames:      3,
		BestScore:       120,
		AverageScore:    80,
		TotalFoodsEaten: 24,
		TotalPlaytime:   135,
	})

	for _, want := range []string{
		"Games played:    3",
		"Best score:      120",
		"Average score:   80.00",
		"Foods eaten:     24",
		"Total playtime:  135s",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("summary missing %q:\n%s", want, text)
		}
	}
}

func TestSummarizeRounding(t *testing.T) {
	history := []SessionRecord{
		{Score: 10, DurationSeconds: 1},
		{Score: 10, DurationSeconds: 1},
		{Score: 11, DurationSeconds: 1},
	}

	summary := Summarize(history)
	if summary.AverageScore != 10.33 {
		t.Errorf("AverageScore = %v, want 10.33", summary.AverageScore)
	}
}
