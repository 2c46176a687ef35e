// Package config provides preset and settings management for the 2048 server.
//
// The config package handles:
//   - Loading starting positions (presets) from JSON files
//   - Preset validation through the engine
//   - Default preset selection
//   - Preset discovery and listing
//   - Server tuning read from environment variables
//
// Preset Format:
//
// Presets are stored as JSON files in the configs directory. The file name
// without .json is the preset id used when creating sessions:
//
//	{
//	  "name": "near_win",
//	  "description": "Two 1024 tiles one move from victory",
//	  "board": [[1024, 1024, 0, 0], [0, 0, 0, 0], [0, 0, 0, 0], [0, 0, 0, 2]]
//	}
//
// A preset without a board starts empty and receives two random tiles when
// the game starts.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	preset, err := manager.LoadConfig("near_win")
//	defaultPreset := manager.GetDefault()
//	presets, err := manager.ListConfigs()
//
// Settings:
//
// LoadSettings reads SLIDE2048_SESSION_TTL, SLIDE2048_CLEANUP_INTERVAL,
// SLIDE2048_MAX_BULK_MOVES and SLIDE2048_DEFAULT_PRESET.
package config
