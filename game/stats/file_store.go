package stats

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"
)

// FileStore implements Persistence using two JSON files: the game
// history log and the high-score ranking. Read failures (missing or
// corrupt files) are treated as empty data so the game always starts;
// future writes are still attempted.
type FileStore struct {
	statsPath      string
	highScoresPath string

	mu         sync.Mutex
	history    []SessionRecord
	highScores []HighScoreEntry
}

// NewFileStore creates a file-backed stats store and loads any existing
// data from disk.
func NewFileStore(statsPath, highScoresPath string) *FileStore {
	fs := &FileStore{
		statsPath:      statsPath,
		highScoresPath: highScoresPath,
	}
	fs.history = loadJSON[SessionRecord](statsPath)
	fs.highScores = loadJSON[HighScoreEntry](highScoresPath)
	return fs
}

// Record appends the finalized session to the history, capped to the
// most recent HistoryLimit entries, folds the derived entry into the
// top-HighScoreLimit ranking (score descending, ties keeping insertion
// order), and saves both files.
func (fs *FileStore) Record(record SessionRecord) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.history = append(fs.history, record)
	if len(fs.history) > HistoryLimit {
		fs.history = fs.history[len(fs.history)-HistoryLimit:]
	}

	fs.highScores = append(fs.highScores, deriveHighScore(record))
	sort.SliceStable(fs.highScores, func(i, j int) bool {
		return fs.highScores[i].Score > fs.highScores[j].Score
	})
	if len(fs.highScores) > HighScoreLimit {
		fs.highScores = fs.highScores[:HighScoreLimit]
	}

	return fs.save()
}

// History returns a copy of the persisted sessions, oldest first.
func (fs *FileStore) History() []SessionRecord {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	history := make([]SessionRecord, len(fs.history))
	copy(history, fs.history)
	return history
}

// HighScores returns a copy of the ranked high-score list, best first.
func (fs *FileStore) HighScores() []HighScoreEntry {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	scores := make([]HighScoreEntry, len(fs.highScores))
	copy(scores, fs.highScores)
	return scores
}

// BestScore returns the top score, or 0 when no games are recorded.
func (fs *FileStore) BestScore() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if len(fs.highScores) == 0 {
		return 0
	}
	return fs.highScores[0].Score
}

// save writes both files. Caller must hold fs.mu.
func (fs *FileStore) save() error {
	if err := writeJSON(fs.statsPath, fs.history); err != nil {
		return fmt.Errorf("failed to save game history: %w", err)
	}
	if err := writeJSON(fs.highScoresPath, fs.highScores); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}
	return nil
}

// loadJSON reads a JSON array from path. Missing or corrupt files are
// logged and treated as empty.
func loadJSON[T any](path string) []T {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("error reading %s: %v (starting with empty data)", path, err)
		}
		return nil
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("error parsing %s: %v (starting with empty data)", path, err)
		return nil
	}
	return items
}

// writeJSON writes a JSON array to path, creating the parent directory
// if needed.
func writeJSON[T any](path string, items []T) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
