package config

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{" NORMAL ", DifficultyNormal, false},
		{"hard", DifficultyHard, false},
		{"custom", DifficultyCustom, false},
		{"", "", true},
		{"expert", "", true},
	}
	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDifficulty(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		wantSize  int
		wantMines int
	}{
		{DifficultyEasy, 9, 10},
		{DifficultyNormal, 16, 40},
		{DifficultyHard, 24, 99},
		{DifficultyCustom, 7, 5},
	}
	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := GameConfig{Size: 7, Mines: 5}
			ApplyPreset(&cfg, tt.preset)
			if cfg.Size != tt.wantSize || cfg.Mines != tt.wantMines || cfg.Difficulty != tt.preset {
				t.Errorf("ApplyPreset(%s) = %+v", tt.preset, cfg)
			}
		})
	}
}

func TestNormalizeFillsDefaults(t *testing.T) {
	cfg := Config{Game: GameConfig{Size: 3, Mines: 20}}
	Normalize(&cfg)

	def := DefaultConfig()
	if cfg.Game.Mines != 8 {
		t.Errorf("Mines = %d, want 8", cfg.Game.Mines)
	}
	if cfg.Game.Difficulty != DifficultyCustom || cfg.Game.Player != def.Game.Player {
		t.Errorf("Game = %+v", cfg.Game)
	}
	if cfg.Storage != def.Storage || cfg.Log != def.Log {
		t.Errorf("Storage/Log not defaulted: %+v %+v", cfg.Storage, cfg.Log)
	}
	if cfg.Server.Address != def.Server.Address || cfg.Server.IdleTimeout != def.Server.IdleTimeout {
		t.Errorf("Server = %+v", cfg.Server)
	}
}
