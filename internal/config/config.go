// Package config provides YAML-based game configuration loading,
// validation and difficulty presets.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// SeedConfig is the full tuning of the Seed of Life simulation.
type SeedConfig struct {
	World       WorldConfig   `yaml:"world"`
	Origin      BodyConfig    `yaml:"origin"`
	Destination BodyConfig    `yaml:"destination"`
	Player      PlayerConfig  `yaml:"player"`
	Thrust      ThrustConfig  `yaml:"thrust"`
	Rules       RulesConfig   `yaml:"rules"`
	Scoring     ScoringConfig `yaml:"scoring"`
}

// WorldConfig sizes the design area and sets the gravitational constant.
type WorldConfig struct {
	G            float64 `yaml:"g"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BoundsMargin float64 `yaml:"bounds_margin"` // Extra room outside the field before the seed counts as escaping
}

// BodyConfig places a massive body.
type BodyConfig struct {
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Mass         float64 `yaml:"mass"`
	Radius       float64 `yaml:"radius"`
	GravityScale float64 `yaml:"gravity_scale"`
}

// PlayerConfig describes the seed and its spawn orbit.
type PlayerConfig struct {
	Radius           float64 `yaml:"radius"`
	Mass             float64 `yaml:"mass"`
	StartOffset      float64 `yaml:"start_offset"`       // Distance above the origin's surface
	StartSpeedFactor float64 `yaml:"start_speed_factor"` // Fraction of circular speed
}

// ThrustConfig tunes the single control.
type ThrustConfig struct {
	Impulse    float64 `yaml:"impulse"`
	CooldownMs float64 `yaml:"cooldown_ms"`
}

// RulesConfig holds the timing rules.
type RulesConfig struct {
	MaxTickMs      float64 `yaml:"max_tick_ms"`
	UnboundGraceMs float64 `yaml:"unbound_grace_ms"`
	TerraformMs    float64 `yaml:"terraform_ms"`
	IntroMs        float64 `yaml:"intro_ms"`
}

// ScoringConfig controls how a win is scored.
type ScoringConfig struct {
	WinBase       int     `yaml:"win_base"`
	ParMs         float64 `yaml:"par_ms"`
	ThrustPenalty int     `yaml:"thrust_penalty"`
}

// Validate checks that the config describes a playable world.
func (c SeedConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}

	check(c.World.G > 0, "world.g must be positive, got %v", c.World.G)
	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.BoundsMargin >= 0, "world.bounds_margin must not be negative")

	bodies := []struct {
		name string
		body BodyConfig
	}{
		{"origin", c.Origin},
		{"destination", c.Destination},
	}
	for _, b := range bodies {
		check(b.body.Mass > 0, "%s.mass must be positive, got %v", b.name, b.body.Mass)
		check(b.body.Radius > 0, "%s.radius must be positive, got %v", b.name, b.body.Radius)
		check(b.body.GravityScale >= 0, "%s.gravity_scale must not be negative", b.name)
	}
	gap := math.Hypot(c.Destination.X-c.Origin.X, c.Destination.Y-c.Origin.Y)
	check(gap > c.Origin.Radius+c.Destination.Radius, "origin and destination overlap")

	check(c.Player.Radius > 0, "player.radius must be positive")
	check(c.Player.Mass > 0, "player.mass must be positive")
	check(c.Player.StartOffset > 0, "player.start_offset must be positive")
	check(c.Player.StartSpeedFactor >= 0, "player.start_speed_factor must not be negative")

	check(c.Thrust.Impulse > 0, "thrust.impulse must be positive, got %v", c.Thrust.Impulse)
	check(c.Thrust.CooldownMs >= 0, "thrust.cooldown_ms must not be negative")

	check(c.Rules.MaxTickMs > 0, "rules.max_tick_ms must be positive")
	check(c.Rules.UnboundGraceMs > 0, "rules.unbound_grace_ms must be positive")
	check(c.Rules.TerraformMs >= 0, "rules.terraform_ms must not be negative")

	return errors.Join(errs...)
}
