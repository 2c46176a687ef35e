package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateBoard checks that every cell is empty or a power of two >= 2.
func ValidateBoard(b Board) error {
	for r, row := range b {
		for c, v := range row {
			if v != 0 && !isTileValue(v) {
				return fmt.Errorf("%w: cell (%d,%d) has value %d, want 0 or a power of two", ErrInvalidBoard, r, c, v)
			}
		}
	}
	return nil
}

// BoardFromRows converts nested slices into a Board, requiring exactly
// Size rows of Size values each.
func BoardFromRows(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: board must have %d rows, got %d", ErrInvalidBoard, Size, len(rows))
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d must have %d cells, got %d", ErrInvalidBoard, r+1, Size, len(row))
		}
		copy(b[r][:], row)
	}
	if err := ValidateBoard(b); err != nil {
		return Board{}, err
	}
	return b, nil
}

// ValidateGameConfig validates a preset for correctness
func ValidateGameConfig(config *GameConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}
	if config.Description == "" {
		return fmt.Errorf("config validation: description is required")
	}

	if len(config.Board) > 0 {
		if _, err := BoardFromRows(config.Board); err != nil {
			return fmt.Errorf("config validation: %w", err)
		}
	}

	return nil
}

// LoadGameConfig loads a preset from a JSON file
func LoadGameConfig(filename string) (*GameConfig, error) {
	configPath := filename
	if configDir := os.Getenv("CONFIG_DIR"); configDir != "" {
		if strings.HasPrefix(filename, "configs/") {
			configPath = filepath.Join(configDir, strings.TrimPrefix(filename, "configs/"))
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var config GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filename, err)
	}

	if err := ValidateGameConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config '%s': %w", filename, err)
	}

	return &config, nil
}

// DefaultConfig is the built-in preset: an empty board that receives two
// tiles when the game starts.
func DefaultConfig() *GameConfig {
	return &GameConfig{
		Name:        "classic",
		Description: "Empty 4x4 board; two random tiles appear on start",
	}
}
