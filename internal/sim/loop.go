package sim

import (
	"math"

	"github.com/vovakirdan/seed-of-life/internal/physics"
)

// GameLoop is the single owner of simulation state. It is not safe for
// concurrent use; hosts drive it from one goroutine.
type GameLoop struct {
	params Params
	field  physics.Field

	player physics.Body
	state  State
	thrust ThrustState

	thrusts   int
	playTicks int
	endedAt   float64

	listeners []Listener
}

// New returns a loop in PhaseStart with the seed at its canonical spawn.
// No physics runs until Restart moves it into PhasePlay.
func New(p Params) *GameLoop {
	g := &GameLoop{
		params: p,
		field:  p.Field,
	}
	g.resetKinematics()
	g.state = State{Phase: PhaseStart}
	return g
}

// Subscribe registers a listener. Listeners run in registration order.
func (g *GameLoop) Subscribe(l Listener) {
	if l == nil {
		return
	}
	g.listeners = append(g.listeners, l)
}

func (g *GameLoop) emit(ev Event) {
	for _, l := range g.listeners {
		l(ev)
	}
}

// Tick advances the simulation by one frame. The real elapsed time is
// clamped to [0, MaxTickMs] so a stalled host cannot tunnel the seed through
// a planet.
func (g *GameLoop) Tick(realElapsedMs float64) {
	dtMs := clampTick(realElapsedMs, g.params.MaxTickMs)

	g.state.ElapsedMs += dtMs
	if g.thrust.CooldownRemainingMs > 0 {
		g.thrust.CooldownRemainingMs = math.Max(0, g.thrust.CooldownRemainingMs-dtMs)
	}

	if g.state.Phase != PhasePlay {
		return
	}
	g.playTicks++

	g.field.Step(&g.player, dtMs/1000)
	g.resolve(dtMs)
}

func clampTick(ms, maxMs float64) float64 {
	// Also catches NaN.
	if !(ms > 0) {
		return 0
	}
	if ms > maxMs {
		return maxMs
	}
	return ms
}

// Thrust applies a fixed impulse along the current heading. It is a no-op
// outside PhasePlay, during cooldown, or when the seed is at rest. Reports
// whether an impulse was applied.
func (g *GameLoop) Thrust() bool {
	if g.state.Phase != PhasePlay || !g.thrust.Ready() {
		return false
	}
	heading := g.player.Vel.Normalize()
	if heading.IsZero() {
		return false
	}

	g.player.Vel = g.player.Vel.Add(heading.Scale(g.params.ThrustImpulse))
	g.thrust.CooldownRemainingMs = g.params.ThrustCooldownMs
	g.thrusts++

	g.emit(ThrustFired{
		Pos:    g.player.Pos,
		Recoil: heading.Neg(),
		At:     g.state.ElapsedMs,
	})
	return true
}

// Restart begins a new run from any phase: canonical kinematics, cleared
// timers and cooldown, PhasePlay. It is also how a run leaves PhaseStart.
func (g *GameLoop) Restart() {
	g.resetKinematics()
	g.state = State{Phase: PhasePlay}
	g.thrust = ThrustState{}
	g.thrusts = 0
	g.playTicks = 0
	g.endedAt = 0
	g.emit(Restarted{})
}

func (g *GameLoop) resetKinematics() {
	pos, vel := InitialKinematics(g.params)
	g.player = physics.Body{
		Pos:    pos,
		Vel:    vel,
		Radius: g.params.PlayerRadius,
		Mass:   g.params.PlayerMass,
	}
}

// Phase returns the current phase.
func (g *GameLoop) Phase() Phase { return g.state.Phase }

// State returns a copy of the phase bookkeeping.
func (g *GameLoop) State() State { return g.state }

// Player returns a copy of the seed's body.
func (g *GameLoop) Player() physics.Body { return g.player }

// Params returns the parameters the loop was built with.
func (g *GameLoop) Params() Params { return g.params }

// Field returns the static gravity field.
func (g *GameLoop) Field() physics.Field { return g.field }

// Thrusts returns the number of impulses applied in the current run.
func (g *GameLoop) Thrusts() int { return g.thrusts }

// PlayTicks returns the number of ticks integrated in the current run.
func (g *GameLoop) PlayTicks() int { return g.playTicks }

// Energy returns the seed's total specific orbital energy.
func (g *GameLoop) Energy() float64 { return g.field.TotalEnergy(g.player) }

// IntroProgress drives the pre-start orbit animation, in [0, 1]. It is 0
// outside PhaseStart.
func (g *GameLoop) IntroProgress() float64 {
	if g.state.Phase != PhaseStart || g.params.IntroMs <= 0 {
		return 0
	}
	return clamp01(g.state.ElapsedMs / g.params.IntroMs)
}

// TerraformProgress is the destination's transformation, in [0, 1]. It is 0
// unless the run was won.
func (g *GameLoop) TerraformProgress() float64 {
	if g.state.Phase != PhaseWin {
		return 0
	}
	if g.params.TerraformMs <= 0 {
		return 1
	}
	return clamp01((g.state.ElapsedMs - g.endedAt) / g.params.TerraformMs)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Snapshot is a read-only view of the loop for renderers.
type Snapshot struct {
	Phase             Phase
	Reason            LoseReason
	ElapsedMs         float64
	UnboundAccumMs    float64
	UnboundGraceMs    float64
	CooldownMs        float64
	Player            physics.Body
	Energy            float64
	Thrusts           int
	IntroProgress     float64
	TerraformProgress float64
	Origin            physics.MassiveBody
	Destination       physics.MassiveBody
}

// Snapshot captures the current state.
func (g *GameLoop) Snapshot() Snapshot {
	return Snapshot{
		Phase:             g.state.Phase,
		Reason:            g.state.Reason,
		ElapsedMs:         g.state.ElapsedMs,
		UnboundAccumMs:    g.state.UnboundAccumMs,
		UnboundGraceMs:    g.params.UnboundGraceMs,
		CooldownMs:        g.thrust.CooldownRemainingMs,
		Player:            g.player,
		Energy:            g.Energy(),
		Thrusts:           g.thrusts,
		IntroProgress:     g.IntroProgress(),
		TerraformProgress: g.TerraformProgress(),
		Origin:            g.field.Origin,
		Destination:       g.field.Destination,
	}
}
