package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/wricardo/mcp-training/slide2048/game/engine"
	"github.com/wricardo/mcp-training/slide2048/game/service"
)

func createValidConfig() *engine.GameConfig {
	return &engine.GameConfig{
		Name:        "Test Config",
		Description: "Test configuration",
		Board: [][]int{
			{2, 2, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 8, 0},
			{0, 0, 0, 0},
		},
	}
}

func writeConfigFile(t *testing.T, dir, name string, config *engine.GameConfig) {
	t.Helper()

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal config: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
}

func TestNewManager(t *testing.T) {
	t.Run("valid directory", func(t *testing.T) {
		dir := t.TempDir()
		writeConfigFile(t, dir, "classic", engine.DefaultConfig())

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault().Name != "classic" {
			t.Errorf("Expected classic default, got %q", manager.GetDefault().Name)
		}
	})

	t.Run("non-existent directory", func(t *testing.T) {
		if _, err := NewManager("/non/existent/path"); err == nil {
			t.Error("Expected error for non-existent directory")
		}
	})

	t.Run("empty directory falls back to built-in default", func(t *testing.T) {
		manager, err := NewManager(t.TempDir())
		if err != nil {
			t.Fatalf("NewManager should succeed without presets, got: %v", err)
		}
		def := manager.GetDefault()
		if def == nil || def.Name != "classic" || len(def.Board) != 0 {
			t.Errorf("Expected built-in empty-board default, got %+v", def)
		}
	})

	t.Run("first valid preset when classic is missing", func(t *testing.T) {
		dir := t.TempDir()
		second := createValidConfig()
		second.Name = "Second"
		writeConfigFile(t, dir, "b_second", second)
		first := createValidConfig()
		first.Name = "First"
		writeConfigFile(t, dir, "a_first", first)

		manager, err := NewManager(dir)
		if err != nil {
			t.Fatalf("Failed to create manager: %v", err)
		}
		if manager.GetDefault().Name != "First" {
			t.Errorf("Expected first preset as default, got %q", manager.GetDefault().Name)
		}
	})
}

func TestManager_LoadConfig(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "valid", createValidConfig())
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	bad := createValidConfig()
	bad.Board[0][0] = 3
	writeConfigFile(t, dir, "bad_tile", bad)

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	t.Run("load by id", func(t *testing.T) {
		config, err := manager.LoadConfig("valid")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if config.Name != "Test Config" {
			t.Errorf("Expected 'Test Config', got %q", config.Name)
		}
	})

	t.Run("json suffix is accepted", func(t *testing.T) {
		a, err := manager.LoadConfig("valid.json")
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		b, _ := manager.LoadConfig("valid")
		if a != b {
			t.Error("Expected both names to hit the same cached preset")
		}
	})

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"missing", "nope", ErrConfigNotFound},
		{"path traversal", "../valid", ErrConfigNotFound},
		{"malformed json", "broken", ErrInvalidConfig},
		{"invalid tile", "bad_tile", ErrInvalidConfig},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := manager.LoadConfig(test.id)
			if !errors.Is(err, test.wantErr) {
				t.Errorf("Expected %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestManager_ListConfigs(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "valid", createValidConfig())
	writeConfigFile(t, dir, "classic", engine.DefaultConfig())
	if err := os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	configs, err := manager.ListConfigs()
	if err != nil {
		t.Fatalf("Failed to list configs: %v", err)
	}
	if len(configs) != 2 {
		t.Fatalf("Expected 2 valid presets, got %d", len(configs))
	}

	if configs[0].ConfigID != "classic" || configs[1].ConfigID != "valid" {
		t.Errorf("Expected sorted ids [classic valid], got [%s %s]", configs[0].ConfigID, configs[1].ConfigID)
	}
	if configs[0].Tiles != 0 || configs[0].MaxTile != 0 {
		t.Errorf("Expected empty classic board, got %+v", configs[0])
	}
	if configs[1].Tiles != 3 || configs[1].MaxTile != 8 {
		t.Errorf("Expected 3 tiles with max 8, got %+v", configs[1])
	}
	if configs[1].Filename != "valid.json" {
		t.Errorf("Expected filename valid.json, got %q", configs[1].Filename)
	}
}

func TestManager_SetDefault(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "valid", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SetDefault("valid"); err != nil {
		t.Fatalf("SetDefault failed: %v", err)
	}
	if manager.GetDefault().Name != "Test Config" {
		t.Errorf("Expected new default, got %q", manager.GetDefault().Name)
	}

	if err := manager.SetDefault("missing"); !errors.Is(err, ErrConfigNotFound) {
		t.Errorf("Expected ErrConfigNotFound, got %v", err)
	}
}

func TestManager_SaveConfig(t *testing.T) {
	dir := t.TempDir()
	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if err := manager.SaveConfig("saved", createValidConfig()); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "saved.json"))
	if err != nil {
		t.Fatalf("Expected file on disk: %v", err)
	}
	var onDisk engine.GameConfig
	if err := json.Unmarshal(data, &onDisk); err != nil {
		t.Fatalf("Saved file is not valid JSON: %v", err)
	}
	if onDisk.Name != "Test Config" {
		t.Errorf("Unexpected saved name %q", onDisk.Name)
	}

	invalid := createValidConfig()
	invalid.Description = ""
	if err := manager.SaveConfig("invalid", invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "invalid.json")); !os.IsNotExist(err) {
		t.Error("Invalid preset must not be written")
	}

	if err := manager.SaveConfig("../escape", createValidConfig()); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig for bad name, got %v", err)
	}
}

func TestManager_RefreshCache(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "valid", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	if _, err := manager.LoadConfig("valid"); err != nil {
		t.Fatal(err)
	}

	updated := createValidConfig()
	updated.Name = "Updated"
	writeConfigFile(t, dir, "valid", updated)

	cached, _ := manager.LoadConfig("valid")
	if cached.Name != "Test Config" {
		t.Errorf("Expected cached name before refresh, got %q", cached.Name)
	}

	manager.RefreshCache()

	fresh, err := manager.LoadConfig("valid")
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Name != "Updated" {
		t.Errorf("Expected refreshed name, got %q", fresh.Name)
	}
}

func TestManager_ConcurrentAccess(t *testing.T) {
	dir := t.TempDir()
	writeConfigFile(t, dir, "valid", createValidConfig())

	manager, err := NewManager(dir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := manager.LoadConfig("valid"); err != nil {
				t.Errorf("Concurrent load failed: %v", err)
			}
			manager.GetDefault()
		}()
	}
	wg.Wait()
}

func TestLoadSettings(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := LoadSettings()
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s != DefaultSettings() {
			t.Errorf("Expected defaults %+v, got %+v", DefaultSettings(), s)
		}
	})

	t.Run("bulk limit matches service default", func(t *testing.T) {
		if DefaultSettings().MaxBulkMoves != service.DefaultMaxBulkMoves {
			t.Errorf("Expected %d, got %d", service.DefaultMaxBulkMoves, DefaultSettings().MaxBulkMoves)
		}

		t.Setenv("SLIDE2048_MAX_BULK_MOVES", "0")
		s, err := LoadSettings()
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.MaxBulkMoves != service.DefaultMaxBulkMoves {
			t.Errorf("Expected fallback to %d, got %d", service.DefaultMaxBulkMoves, s.MaxBulkMoves)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("SLIDE2048_SESSION_TTL", "30m")
		t.Setenv("SLIDE2048_MAX_BULK_MOVES", "7")
		t.Setenv("SLIDE2048_DEFAULT_PRESET", "near_win")

		s, err := LoadSettings()
		if err != nil {
			t.Fatalf("LoadSettings failed: %v", err)
		}
		if s.SessionTTL != 30*time.Minute {
			t.Errorf("Expected 30m TTL, got %v", s.SessionTTL)
		}
		if s.MaxBulkMoves != 7 {
			t.Errorf("Expected 7 bulk moves, got %d", s.MaxBulkMoves)
		}
		if s.DefaultPreset != "near_win" {
			t.Errorf("Expected near_win, got %q", s.DefaultPreset)
		}
	})

	t.Run("malformed duration", func(t *testing.T) {
		t.Setenv("SLIDE2048_CLEANUP_INTERVAL", "soon")

		s, err := LoadSettings()
		if err == nil {
			t.Fatal("Expected parse error")
		}
		if s != DefaultSettings() {
			t.Errorf("Expected defaults on error, got %+v", s)
		}
	})
}
