package sim

import "github.com/vovakirdan/seed-of-life/internal/physics"

// Event is a discrete notification emitted by GameLoop for renderers, audio
// and loggers. The set of events is closed.
type Event interface {
	simEvent()
}

// ThrustFired is emitted when an impulse is applied. Recoil points opposite
// the old heading, which is where a trail should stream.
type ThrustFired struct {
	Pos    physics.Vec2
	Recoil physics.Vec2
	At     float64
}

func (ThrustFired) simEvent() {}

// DestinationReached is emitted on a win; terraforming starts at At.
type DestinationReached struct {
	At float64
}

func (DestinationReached) simEvent() {}

// Crashed is emitted when the seed hits the origin body.
type Crashed struct {
	At float64
}

func (Crashed) simEvent() {}

// LostToVoid is emitted when the seed stays unbound for the grace period.
type LostToVoid struct {
	At float64
}

func (LostToVoid) simEvent() {}

// Restarted is emitted whenever a new run begins.
type Restarted struct{}

func (Restarted) simEvent() {}

// Listener receives events synchronously, on the goroutine that drives the
// loop, in the order they occur.
type Listener func(Event)
