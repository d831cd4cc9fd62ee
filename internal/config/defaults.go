package config

import (
	_ "embed"
)

//go:embed defaults/seed.yaml
var defaultSeedYAML []byte

// DefaultSeedConfig returns the hardcoded tuning. It matches
// defaults/seed.yaml.
func DefaultSeedConfig() SeedConfig {
	return SeedConfig{
		World: WorldConfig{
			G:            120,
			Width:        320,
			Height:       180,
			BoundsMargin: 40,
		},
		Origin: BodyConfig{
			X:            90,
			Y:            90,
			Mass:         1600,
			Radius:       12,
			GravityScale: 1.0,
		},
		Destination: BodyConfig{
			X:            230,
			Y:            90,
			Mass:         2200,
			Radius:       9,
			GravityScale: 0.5,
		},
		Player: PlayerConfig{
			Radius:           1,
			Mass:             1,
			StartOffset:      24,
			StartSpeedFactor: 0.95,
		},
		Thrust: ThrustConfig{
			Impulse:    6.0,
			CooldownMs: 180,
		},
		Rules: RulesConfig{
			MaxTickMs:      50,
			UnboundGraceMs: 3000,
			TerraformMs:    2000,
			IntroMs:        1800,
		},
		Scoring: ScoringConfig{
			WinBase:       1000,
			ParMs:         60000,
			ThrustPenalty: 10,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSeedYAML
}
