package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Validation bounds for game settings.
const (
	MinCellSize   = 4
	MinGridCells  = 4
	MinSpeedFloor = 10
)

// Config represents the full game configuration loaded from JSON.
type Config struct {
	Game     GameSettings   `json:"game"`
	Data     DataSettings   `json:"data"`
	Features FeatureToggles `json:"features"`
}

// GameSettings controls board geometry and the tick cadence. Speeds are
// tick intervals in milliseconds; lower is faster.
type GameSettings struct {
	Width         int         `json:"width"`
	Height        int         `json:"height"`
	CellSize      int         `json:"cell_size"`
	InitialSpeed  int         `json:"initial_speed"`
	SpeedIncrease int         `json:"speed_increase"`
	MinSpeed      int         `json:"min_speed"`
	Colors        ColorScheme `json:"colors"`
}

// ColorScheme holds rendering colors as hex strings. Rendering-only.
type ColorScheme struct {
	Background string `json:"background"`
	Snake      string `json:"snake"`
	SnakeHead  string `json:"snake_head"`
	Food       string `json:"food"`
	Text       string `json:"text"`
	Grid       string `json:"grid"`
}

// DataSettings controls statistics persistence.
type DataSettings struct {
	SaveGameHistory bool   `json:"save_game_history"`
	StatsFile       string `json:"stats_file"`
	HighScoresFile  string `json:"high_scores_file"`
}

// FeatureToggles enables optional rendering features.
type FeatureToggles struct {
	ShowGrid  bool `json:"show_grid"`
	ShowScore bool `json:"show_score"`
}

// GridWidth returns the board width in cells.
func (g GameSettings) GridWidth() int {
	return g.Width / g.CellSize
}

// GridHeight returns the board height in cells.
func (g GameSettings) GridHeight() int {
	return g.Height / g.CellSize
}

// InitialInterval returns the starting tick interval.
func (g GameSettings) InitialInterval() time.Duration {
	return time.Duration(g.InitialSpeed) * time.Millisecond
}

// SpeedStep returns the amount the tick interval shrinks per food eaten.
func (g GameSettings) SpeedStep() time.Duration {
	return time.Duration(g.SpeedIncrease) * time.Millisecond
}

// MinInterval returns the fastest allowed tick interval.
func (g GameSettings) MinInterval() time.Duration {
	return time.Duration(g.MinSpeed) * time.Millisecond
}

// DefaultConfig returns the built-in configuration used whenever no
// config file is available: an 800x600 board at 20-unit cells, 150ms
// initial tick interval, 5ms speed step, and a 50ms floor.
func DefaultConfig() *Config {
	return &Config{
		Game: GameSettings{
			Width:         800,
			Height:        600,
			CellSize:      20,
			InitialSpeed:  150,
			SpeedIncrease: 5,
			MinSpeed:      50,
			Colors: ColorScheme{
				Background: "#000000",
				Snake:      "#00FF00",
				SnakeHead:  "#FFFF00",
				Food:       "#FF0000",
				Text:       "#FFFFFF",
				Grid:       "#333333",
			},
		},
		Data: DataSettings{
			SaveGameHistory: true,
			StatsFile:       "data/game_stats.json",
			HighScoresFile:  "data/high_scores.json",
		},
		Features: FeatureToggles{
			ShowGrid:  true,
			ShowScore: true,
		},
	}
}

// ValidateConfig validates a configuration for correctness and playability.
func ValidateConfig(config *Config) error {
	g := config.Game
	if g.CellSize < MinCellSize {
		return fmt.Errorf("config validation: cell_size must be at least %d, got %d", MinCellSize, g.CellSize)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("config validation: width and height must be positive, got %dx%d", g.Width, g.Height)
	}
	if g.GridWidth() < MinGridCells || g.GridHeight() < MinGridCells {
		return fmt.Errorf("config validation: grid must be at least %dx%d cells, got %dx%d",
			MinGridCells, MinGridCells, g.GridWidth(), g.GridHeight())
	}
	if g.MinSpeed < MinSpeedFloor {
		return fmt.Errorf("config validation: min_speed must be at least %dms, got %d", MinSpeedFloor, g.MinSpeed)
	}
	if g.InitialSpeed < g.MinSpeed {
		return fmt.Errorf("config validation: initial_speed (%d) must not be below min_speed (%d)",
			g.InitialSpeed, g.MinSpeed)
	}
	if g.SpeedIncrease < 0 {
		return fmt.Errorf("config validation: speed_increase must not be negative, got %d", g.SpeedIncrease)
	}
	if config.Data.SaveGameHistory {
		if config.Data.StatsFile == "" {
			return fmt.Errorf("config validation: data.stats_file is required when save_game_history is enabled")
		}
		if config.Data.HighScoresFile == "" {
			return fmt.Errorf("config validation: data.high_scores_file is required when save_game_history is enabled")
		}
	}
	return nil
}

// LoadConfig loads and validates a configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	if err := ValidateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", path, err)
	}

	return &config, nil
}
