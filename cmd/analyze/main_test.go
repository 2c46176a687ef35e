package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/slide2048/game/engine"
)

func TestAnalyze_MergeRow(t *testing.T) {
	config := &engine.GameConfig{
		Name:        "merge_demo",
		Description: "row of twos",
		Board: [][]int{
			{2, 2, 2, 2},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		},
	}

	a, err := analyze(config)
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}

	if a.Tiles != 4 || a.EmptyCells != 12 || a.TileSum != 8 || a.MaxTile != 2 {
		t.Errorf("Unexpected summary: %+v", a)
	}
	if len(a.Moves) != 4 {
		t.Fatalf("Expected 4 moves, got %d", len(a.Moves))
	}

	left := a.Moves[0]
	if left.Direction != engine.Left || !left.Changes || left.Merges != 2 || left.Gained != 8 {
		t.Errorf("Unexpected left analysis: %+v", left)
	}

	up := a.Moves[2]
	if up.Direction != engine.Up || up.Changes {
		t.Errorf("Expected up to leave the top row unchanged: %+v", up)
	}
}

func TestAnalyze_EmptyBoard(t *testing.T) {
	a, err := analyze(&engine.GameConfig{Name: "classic", Description: "empty"})
	if err != nil {
		t.Fatalf("analyze failed: %v", err)
	}
	if a.Tiles != 0 || a.EmptyCells != 16 || len(a.Moves) != 0 {
		t.Errorf("Unexpected analysis: %+v", a)
	}
	if a.Distance() != -1 {
		t.Errorf("Expected -1 distance for empty board, got %d", a.Distance())
	}
}

func TestAnalyze_InvalidBoard(t *testing.T) {
	_, err := analyze(&engine.GameConfig{Name: "bad", Description: "x", Board: [][]int{{3}}})
	if err == nil {
		t.Error("Expected error for invalid board")
	}
}

func TestAnalysisDistance(t *testing.T) {
	tests := []struct {
		max  int
		want int
	}{
		{2, 10},
		{1024, 1},
		{2048, 0},
		{4096, 0},
	}
	for _, tt := range tests {
		if got := (Analysis{MaxTile: tt.max}).Distance(); got != tt.want {
			t.Errorf("Distance(%d) = %d, want %d", tt.max, got, tt.want)
		}
	}
}

func TestAnalyzeConfig_Output(t *testing.T) {
	path := filepath.Join(t.TempDir(), "near_win.json")
	content := `{"name":"near_win","description":"x","board":[[1024,1024,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,2]]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}

	var buf bytes.Buffer
	if err := analyzeConfig(&buf, path); err != nil {
		t.Fatalf("analyzeConfig failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Name: near_win",
		"Tiles: 3 (empty cells: 13)",
		"Max Tile: 1024",
		"Doublings to 2048: 1",
		"left  merges=1 gained=2048",
		"✅ 4 of 4 opening moves change the board",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in output:\n%s", want, out)
		}
	}
}

func TestAnalyzeConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	if err := analyzeConfig(&bytes.Buffer{}, filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}

	broken := filepath.Join(dir, "broken.json")
	os.WriteFile(broken, []byte(`{"name":`), 0644)
	if err := analyzeConfig(&bytes.Buffer{}, broken); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}
