// Command analyze prints quick, human-readable heuristics about the presets
// in the project's configs directory. For every preset it summarizes tile
// count, tile sum, largest tile and free space, then tries each direction on
// the starting board and reports which moves change it and what they earn.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wricardo/mcp-training/slide2048/game/engine"
)

// MoveAnalysis is the effect of one opening move on a preset board.
type MoveAnalysis struct {
	Direction engine.Direction
	Changes   bool
	Gained    int
	Merges    int
}

// Analysis summarizes a single preset.
type Analysis struct {
	Name       string
	Tiles      int
	EmptyCells int
	TileSum    int
	MaxTile    int
	Moves      []MoveAnalysis
}

// Distance reports how many doublings the largest tile is from the winning tile.
func (a Analysis) Distance() int {
	if a.MaxTile == 0 {
		return -1
	}
	steps := 0
	for v := a.MaxTile; v < engine.WinningTile; v *= 2 {
		steps++
	}
	return steps
}

func main() {
	dir := "configs"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		fmt.Printf("Error finding presets: %v\n", err)
		os.Exit(1)
	}

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		if err := analyzeConfig(os.Stdout, file); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}
}

func analyzeConfig(w io.Writer, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var config engine.GameConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}

	analysis, err := analyze(&config)
	if err != nil {
		return err
	}

	printAnalysis(w, analysis)
	return nil
}

func analyze(config *engine.GameConfig) (Analysis, error) {
	var board engine.Board
	if len(config.Board) > 0 {
		b, err := engine.BoardFromRows(config.Board)
		if err != nil {
			return Analysis{}, err
		}
		board = b
	}

	a := Analysis{
		Name:       config.Name,
		Tiles:      engine.CountTiles(board),
		EmptyCells: engine.Size*engine.Size - engine.CountTiles(board),
		TileSum:    engine.TileSum(board),
		MaxTile:    engine.MaxTileOf(board),
	}

	if a.Tiles == 0 {
		return a, nil
	}

	for _, dir := range engine.Directions {
		game, err := engine.NewGame(engine.WithInitialBoard(board))
		if err != nil {
			return Analysis{}, err
		}
		game.Start()

		outcome := game.Play(dir)
		a.Moves = append(a.Moves, MoveAnalysis{
			Direction: dir,
			Changes:   outcome.Moved,
			Gained:    outcome.Gained,
			Merges:    outcome.Merges,
		})
	}

	return a, nil
}

func printAnalysis(w io.Writer, a Analysis) {
	fmt.Fprintf(w, "Name: %s\n", a.Name)
	fmt.Fprintf(w, "Tiles: %d (empty cells: %d)\n", a.Tiles, a.EmptyCells)
	fmt.Fprintf(w, "Tile Sum: %d\n", a.TileSum)
	fmt.Fprintf(w, "Max Tile: %d\n", a.MaxTile)

	if a.Tiles == 0 {
		fmt.Fprintf(w, "Empty board: two random tiles are placed on start\n")
		return
	}

	if d := a.Distance(); d == 0 {
		fmt.Fprintf(w, "⚠️  WARNING: board already holds the winning tile\n")
	} else {
		fmt.Fprintf(w, "Doublings to %d: %d\n", engine.WinningTile, d)
	}

	open := 0
	for _, m := range a.Moves {
		if !m.Changes {
			fmt.Fprintf(w, "  %-5s no change\n", m.Direction)
			continue
		}
		open++
		fmt.Fprintf(w, "  %-5s merges=%d gained=%d\n", m.Direction, m.Merges, m.Gained)
	}

	if open == 0 {
		fmt.Fprintf(w, "⚠️  CRITICAL: no opening move changes the board\n")
	} else {
		fmt.Fprintf(w, "✅ %d of %d opening moves change the board\n", open, len(a.Moves))
	}
}
