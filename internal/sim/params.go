// Package sim owns the game's simulation state: the seed's kinematics, the
// phase machine, thrust cooldown and the win/lose resolver. A GameLoop is
// driven by a single goroutine; Tick, Thrust and Restart are its only
// mutators and renderers observe it through snapshots and events.
package sim

import "github.com/vovakirdan/seed-of-life/internal/physics"

// Default world constants, in design-space units and milliseconds.
const (
	DefaultG                = 120.0
	DefaultWidth            = 320.0
	DefaultHeight           = 180.0
	DefaultBoundsMargin     = 40.0
	DefaultPlayerRadius     = 1.0
	DefaultPlayerMass       = 1.0
	DefaultStartOffset      = 24.0
	DefaultStartSpeedFactor = 0.95
	DefaultThrustImpulse    = 6.0
	DefaultThrustCooldownMs = 180.0
	DefaultMaxTickMs        = 50.0
	DefaultUnboundGraceMs   = 3000.0
	DefaultTerraformMs      = 2000.0
	DefaultIntroMs          = 1800.0
)

// Scoring controls how a winning run is scored.
type Scoring struct {
	WinBase       int     // Points for reaching the destination
	ParMs         float64 // Time under par earns one point per 100ms
	ThrustPenalty int     // Points lost per thrust
}

// Params holds every tunable of the simulation.
type Params struct {
	Field physics.Field

	PlayerRadius     float64
	PlayerMass       float64
	StartOffset      float64 // Distance from the origin's surface to the spawn point
	StartSpeedFactor float64 // Fraction of circular-orbit speed at spawn

	ThrustImpulse    float64
	ThrustCooldownMs float64

	MaxTickMs      float64 // Real-time deltas above this are clamped
	UnboundGraceMs float64 // Continuous unbound time before the seed is lost

	Width        float64
	Height       float64
	BoundsMargin float64

	TerraformMs float64
	IntroMs     float64

	Scoring Scoring
}

// DefaultParams returns the shipped tuning: a sun on the left, a rocky planet
// on the right whose pull is halved.
func DefaultParams() Params {
	return Params{
		Field: physics.Field{
			G: DefaultG,
			Origin: physics.MassiveBody{
				Pos:          physics.V(90, 90),
				Mass:         1600,
				Radius:       12,
				GravityScale: 1.0,
			},
			Destination: physics.MassiveBody{
				Pos:          physics.V(230, 90),
				Mass:         2200,
				Radius:       9,
				GravityScale: 0.5,
			},
		},
		PlayerRadius:     DefaultPlayerRadius,
		PlayerMass:       DefaultPlayerMass,
		StartOffset:      DefaultStartOffset,
		StartSpeedFactor: DefaultStartSpeedFactor,
		ThrustImpulse:    DefaultThrustImpulse,
		ThrustCooldownMs: DefaultThrustCooldownMs,
		MaxTickMs:        DefaultMaxTickMs,
		UnboundGraceMs:   DefaultUnboundGraceMs,
		Width:            DefaultWidth,
		Height:           DefaultHeight,
		BoundsMargin:     DefaultBoundsMargin,
		TerraformMs:      DefaultTerraformMs,
		IntroMs:          DefaultIntroMs,
		Scoring: Scoring{
			WinBase:       1000,
			ParMs:         60000,
			ThrustPenalty: 10,
		},
	}
}

// InitialKinematics returns the canonical spawn state: a fixed offset from
// the origin's surface along +X, moving tangentially (towards -Y) at
// StartSpeedFactor of circular speed. The shortfall makes the default
// trajectory a shallow ellipse that drifts.
func InitialKinematics(p Params) (pos, vel physics.Vec2) {
	origin := p.Field.Origin
	pos = origin.Pos.Add(physics.V(origin.Radius+p.StartOffset, 0))
	r := pos.Distance(origin.Pos)
	v0 := p.Field.CircularSpeed(r) * p.StartSpeedFactor
	return pos, physics.V(0, -v0)
}
