package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/mines.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded configuration used when no YAML
// source can be read.
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			Difficulty:      DifficultyNormal,
			Size:            16,
			Mines:           40,
			Player:          "player",
			RecordNoOpOpens: true,
		},
		Storage: StorageConfig{
			Path: "~/.mines/games.db",
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.mines/mines.log",
		},
		Server: ServerConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
			MaxSessions: 64,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
