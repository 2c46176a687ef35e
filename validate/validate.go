// Command validate checks the preset JSON files in the ../configs directory
// (or the directory given as the first argument). It checks:
//   - JSON structure and required fields
//   - Board shape: exactly 4 rows of 4 cells when a board is given
//   - Cell values: 0 or a power of two no smaller than 2
//   - Playability: no winning tile yet and at least one move that changes the board
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/slide2048/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single preset file.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if config.Name == "" {
		result.fail("name is required")
	}
	if config.Description == "" {
		result.fail("description is required")
	}

	if len(config.Board) == 0 {
		if result.Valid {
			result.Errors = append(result.Errors,
				fmt.Sprintf("✓ Name: %s", config.Name),
				"✓ Board: empty, two random tiles on start")
		}
		return result
	}

	if len(config.Board) != engine.Size {
		result.fail("Board must have %d rows, got %d", engine.Size, len(config.Board))
	}

	for i, row := range config.Board {
		if len(row) != engine.Size {
			result.fail("Row %d must have %d cells, got %d", i+1, engine.Size, len(row))
			continue
		}
		for j, v := range row {
			if v != 0 && (v < 2 || v&(v-1) != 0) {
				result.fail("Invalid value %d at position [%d,%d]", v, i+1, j+1)
			}
		}
	}

	if !result.Valid {
		return result
	}

	board, err := engine.BoardFromRows(config.Board)
	if err != nil {
		result.fail("%v", err)
		return result
	}

	playable := validatePlayable(board)
	if !playable.Valid {
		result.Valid = false
	}
	result.Errors = append(result.Errors, playable.Errors...)

	if result.Valid {
		result.Errors = append(result.Errors,
			fmt.Sprintf("✓ Name: %s", config.Name),
			fmt.Sprintf("✓ Tiles: %d", engine.CountTiles(board)),
			fmt.Sprintf("✓ Max tile: %d", engine.MaxTileOf(board)),
			fmt.Sprintf("✓ Tile sum: %d", engine.TileSum(board)),
		)
	}

	return result
}

// validatePlayable ensures a preset board can actually be played: it must
// not already contain the winning tile and at least one direction must
// change it.
func validatePlayable(board engine.Board) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if engine.MaxTileOf(board) >= engine.WinningTile {
		result.fail("Board already contains a %d tile", engine.WinningTile)
		return result
	}

	if engine.CountTiles(board) == 0 {
		result.Errors = append(result.Errors, "✓ Playable: empty board, two random tiles on start")
		return result
	}

	game, err := engine.NewGame(engine.WithInitialBoard(board))
	if err != nil {
		result.fail("%v", err)
		return result
	}
	game.Start()

	moves := game.GetPossibleMoves()
	if len(moves) == 0 {
		result.fail("No move changes the board: the game would be lost immediately")
		return result
	}

	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	result.Errors = append(result.Errors, fmt.Sprintf("✓ Playable: first moves %s", strings.Join(names, ",")))

	return result
}

// main scans the preset directory for *.json files and validates each one,
// printing a concise report and exiting with non-zero status if any are invalid.
func main() {
	configDir := "../configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(configDir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding config files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All configurations are valid!")
	} else {
		fmt.Println("❌ Some configurations have errors")
		os.Exit(1)
	}
}
