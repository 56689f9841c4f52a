// Package config provides YAML-based game configuration loading and
// difficulty management for the puzzle.
package config

// GameConfig contains all configuration for the 2048 puzzle.
type GameConfig struct {
	Spawn     SpawnConfig     `yaml:"spawn"`
	Game      RulesConfig     `yaml:"game"`
	Animation AnimationConfig `yaml:"animation"`
	Storage   StorageConfig   `yaml:"storage"`
}

// SpawnConfig defines tile spawn parameters.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // chance a spawned tile is a 4 instead of a 2
}

// RulesConfig defines the win condition.
type RulesConfig struct {
	WinTile int `yaml:"win_tile"`
}

// AnimationConfig defines animation timing in ticks.
type AnimationConfig struct {
	SlideTicks int `yaml:"slide_ticks"`
	PopTicks   int `yaml:"pop_ticks"`
}

// StorageConfig defines where game data is persisted.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// FourProbabilityForPreset returns the spawn four_probability for a preset.
// Harder presets spawn more 4s, which fills the board faster.
func FourProbabilityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyNormal:
		return 0.1
	case DifficultyHard:
		return 0.25
	default:
		return 0.1
	}
}
