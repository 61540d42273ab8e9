// Package config provides board configuration management for the word grid
// game.
//
// The config package handles:
//   - Loading board configurations from JSON files
//   - Configuration validation
//   - Default configuration management
//   - Configuration discovery and listing
//   - Loading and caching the word lists boards refer to
//
// Configuration Format:
//
// Board configurations are stored as JSON files in the configs directory.
// Each configuration defines:
//   - The grid size, and optionally fixed letters in row-major order
//   - The word list file, relative to the configs directory
//   - Player messages for each guess outcome
//
// Boards without letters are filled with random letters each time a
// session starts.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameConfig, err := manager.LoadConfig("french")
//	if err != nil {
//		log.Fatal(err)
//	}
//	dict, err := manager.LoadDictionary(gameConfig)
//
// The configuration named "classic" is the default when present; otherwise
// the first valid file in the directory is used.
package config
