package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func createValidConfig() *GameConfig {
	return &GameConfig{
		Name:        "Test Config",
		Description: "A valid test configuration",
		Board: [][]int{
			{2, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 4, 0},
			{0, 0, 0, 0},
		},
	}
}

func TestValidateGameConfig_Valid(t *testing.T) {
	if err := ValidateGameConfig(createValidConfig()); err != nil {
		t.Errorf("Expected valid config, got error: %v", err)
	}

	empty := createValidConfig()
	empty.Board = nil
	if err := ValidateGameConfig(empty); err != nil {
		t.Errorf("Expected config without board to be valid, got: %v", err)
	}

	if err := ValidateGameConfig(DefaultConfig()); err != nil {
		t.Errorf("Expected default config to be valid, got: %v", err)
	}
}

func TestValidateGameConfig_Errors(t *testing.T) {
	tests := []struct {
		name      string
		modify    func(*GameConfig)
		errSubstr string
	}{
		{"missing name", func(c *GameConfig) { c.Name = "" }, "name is required"},
		{"missing description", func(c *GameConfig) { c.Description = "" }, "description is required"},
		{"too few rows", func(c *GameConfig) { c.Board = c.Board[:3] }, "must have 4 rows"},
		{"short row", func(c *GameConfig) { c.Board[1] = []int{2, 2} }, "row 2 must have 4 cells"},
		{"bad value", func(c *GameConfig) { c.Board[2][2] = 6 }, "value 6"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := createValidConfig()
			test.modify(config)

			err := ValidateGameConfig(config)
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if !strings.Contains(err.Error(), test.errSubstr) {
				t.Errorf("Expected error containing %q, got %v", test.errSubstr, err)
			}
		})
	}

	if err := ValidateGameConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestBoardFromRows(t *testing.T) {
	b, err := BoardFromRows(createValidConfig().Board)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if b[0][0] != 2 || b[2][2] != 4 {
		t.Errorf("Unexpected board\n%s", b)
	}

	_, err = BoardFromRows([][]int{{2}})
	if !errors.Is(err, ErrInvalidBoard) {
		t.Errorf("Expected ErrInvalidBoard, got %v", err)
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	content := `{"name":"valid","description":"loads fine","board":[[2,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,2]]}`
	if err := os.WriteFile(valid, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadGameConfig(valid)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.Name != "valid" {
		t.Errorf("Expected name 'valid', got %q", config.Name)
	}

	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte(`{"name":`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadGameConfig(broken); err == nil {
		t.Error("Expected error for malformed JSON")
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"name":"x","description":"y","board":[[3]]}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadGameConfig(invalid); !errors.Is(err, ErrInvalidBoard) {
		t.Errorf("Expected ErrInvalidBoard, got %v", err)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadGameConfig_ConfigDirOverride(t *testing.T) {
	dir := t.TempDir()
	content := `{"name":"override","description":"from CONFIG_DIR"}`
	if err := os.WriteFile(filepath.Join(dir, "override.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	t.Setenv("CONFIG_DIR", dir)

	config, err := LoadGameConfig("configs/override.json")
	if err != nil {
		t.Fatalf("Failed to load config through CONFIG_DIR: %v", err)
	}
	if config.Name != "override" {
		t.Errorf("Expected name 'override', got %q", config.Name)
	}
}
