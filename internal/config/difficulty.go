package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

// DifficultyPreset represents a named board configuration.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyCustom DifficultyPreset = "custom"
)

// Preset is the board size and mine count of a difficulty.
type Preset struct {
	Name  DifficultyPreset
	Label string
	Size  int
	Mines int
}

// Presets lists the fixed difficulties in menu order.
var Presets = []Preset{
	{Name: DifficultyEasy, Label: "Easy", Size: 9, Mines: 10},
	{Name: DifficultyNormal, Label: "Normal", Size: 16, Mines: 40},
	{Name: DifficultyHard, Label: "Hard", Size: 24, Mines: 99},
}

// ParseDifficulty converts user input to a preset name.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyCustom:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or custom)", s)
	}
}

// PresetFor returns the fixed preset with the given name.
func PresetFor(name DifficultyPreset) (Preset, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// ApplyPreset sets the board size and mine count from a preset. The custom
// preset keeps whatever size and mines the config already has.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	cfg.Difficulty = preset
	if p, ok := PresetFor(preset); ok {
		cfg.Size = p.Size
		cfg.Mines = p.Mines
	}
}

// Normalize clamps the board parameters into the ranges the engine accepts
// and fills empty fields from DefaultConfig.
func Normalize(cfg *Config) {
	def := DefaultConfig()

	if cfg.Game.Difficulty == "" {
		cfg.Game.Difficulty = DifficultyCustom
	}
	if cfg.Game.Player == "" {
		cfg.Game.Player = def.Game.Player
	}
	cfg.Game.Size = minesweeper.ClampSize(cfg.Game.Size)
	cfg.Game.Mines = minesweeper.ClampMineCount(cfg.Game.Size, cfg.Game.Mines)

	if cfg.Storage.Path == "" {
		cfg.Storage.Path = def.Storage.Path
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Log.File == "" {
		cfg.Log.File = def.Log.File
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = def.Server.Address
	}
	if cfg.Server.IdleTimeout <= 0 {
		cfg.Server.IdleTimeout = def.Server.IdleTimeout
	}
	if cfg.Server.MaxSessions <= 0 {
		cfg.Server.MaxSessions = def.Server.MaxSessions
	}
}
