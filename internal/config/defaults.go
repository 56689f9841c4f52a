package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the default puzzle configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Spawn: SpawnConfig{
			FourProbability: 0.1,
		},
		Game: RulesConfig{
			WinTile: 2048,
		},
		Animation: AnimationConfig{
			SlideTicks: 8,
			PopTicks:   6,
		},
		Storage: StorageConfig{
			Path: "~/.t2048/t2048.db",
		},
	}
}
