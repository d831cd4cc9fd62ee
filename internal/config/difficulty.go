package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the known presets from easiest to hardest.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, name)
}

// ApplySeedPreset adjusts the forgiving parts of the tuning: how long the
// seed may drift unbound and how strong and frequent thrust is. Normal
// leaves the config untouched.
func ApplySeedPreset(cfg *SeedConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.UnboundGraceMs = 5000
		cfg.Thrust.CooldownMs = 120
		cfg.Thrust.Impulse = 7
	case DifficultyHard:
		cfg.Rules.UnboundGraceMs = 2000
		cfg.Thrust.CooldownMs = 250
		cfg.Thrust.Impulse = 5
	}
}
