// Package config provides YAML-based configuration loading and difficulty
// presets for the minesweeper CLI and SSH server.
package config

import "time"

// Config is the full application configuration.
type Config struct {
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// GameConfig holds the board parameters for new games.
type GameConfig struct {
	Difficulty      DifficultyPreset `yaml:"difficulty"` // easy, normal, hard or custom
	Size            int              `yaml:"size"`       // used by the custom preset
	Mines           int              `yaml:"mines"`      // used by the custom preset
	Player          string           `yaml:"player"`
	RecordNoOpOpens bool             `yaml:"record_noop_opens"`
	Seed            int64            `yaml:"seed"` // 0 = time based
}

// StorageConfig locates the game history database.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LogConfig controls the charmbracelet/log logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // used while a TUI owns the terminal
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
	MaxSessions int           `yaml:"max_sessions"`
}
