package web

import (
	"github.com/vovakirdan/seed-of-life/internal/physics"
	"github.com/vovakirdan/seed-of-life/internal/sim"
)

// Frame types sent to clients.
const (
	FrameSnapshot = "snapshot"
	FrameEvent    = "event"
)

// Command types accepted from clients.
const (
	CommandThrust  = "thrust"
	CommandRestart = "restart"
)

// Frame is one server-to-client message. Exactly one of Snapshot or Event is
// set, matching Type.
type Frame struct {
	Type     string         `json:"type"`
	Snapshot *SnapshotFrame `json:"snapshot,omitempty"`
	Event    *EventFrame    `json:"event,omitempty"`
}

// Command is one client-to-server message.
type Command struct {
	Type string `json:"type"`
}

// Point is a world-space position or vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Disc is a circular body in world space.
type Disc struct {
	Pos    Point   `json:"pos"`
	Radius float64 `json:"radius"`
}

// SnapshotFrame is everything a remote renderer needs to draw one frame.
type SnapshotFrame struct {
	Phase             string  `json:"phase"`
	Reason            string  `json:"reason,omitempty"`
	ElapsedMs         float64 `json:"elapsed_ms"`
	UnboundMs         float64 `json:"unbound_ms"`
	UnboundGraceMs    float64 `json:"unbound_grace_ms"`
	CooldownMs        float64 `json:"cooldown_ms"`
	Seed              Disc    `json:"seed"`
	Velocity          Point   `json:"velocity"`
	Energy            float64 `json:"energy"`
	Thrusts           int     `json:"thrusts"`
	IntroProgress     float64 `json:"intro_progress"`
	TerraformProgress float64 `json:"terraform_progress"`
	Origin            Disc    `json:"origin"`
	Destination       Disc    `json:"destination"`
	Score             int     `json:"score,omitempty"`
}

// EventFrame describes one simulation event.
type EventFrame struct {
	Name   string  `json:"name"`
	At     float64 `json:"at"`
	Pos    *Point  `json:"pos,omitempty"`
	Recoil *Point  `json:"recoil,omitempty"`
}

func point(v physics.Vec2) Point {
	return Point{X: v.X, Y: v.Y}
}

func snapshotFrame(loop *sim.GameLoop) Frame {
	s := loop.Snapshot()
	f := &SnapshotFrame{
		Phase:             s.Phase.String(),
		Reason:            s.Reason.String(),
		ElapsedMs:         s.ElapsedMs,
		UnboundMs:         s.UnboundAccumMs,
		UnboundGraceMs:    s.UnboundGraceMs,
		CooldownMs:        s.CooldownMs,
		Seed:              Disc{Pos: point(s.Player.Pos), Radius: s.Player.Radius},
		Velocity:          point(s.Player.Vel),
		Energy:            s.Energy,
		Thrusts:           s.Thrusts,
		IntroProgress:     s.IntroProgress,
		TerraformProgress: s.TerraformProgress,
		Origin:            Disc{Pos: point(s.Origin.Pos), Radius: s.Origin.Radius},
		Destination:       Disc{Pos: point(s.Destination.Pos), Radius: s.Destination.Radius},
	}
	if res, ok := loop.Result(); ok {
		f.Score = res.Score
	}
	return Frame{Type: FrameSnapshot, Snapshot: f}
}

func eventFrame(ev sim.Event) Frame {
	var f EventFrame
	switch e := ev.(type) {
	case sim.ThrustFired:
		pos, recoil := point(e.Pos), point(e.Recoil)
		f = EventFrame{Name: "thrust_fired", At: e.At, Pos: &pos, Recoil: &recoil}
	case sim.DestinationReached:
		f = EventFrame{Name: "destination_reached", At: e.At}
	case sim.Crashed:
		f = EventFrame{Name: "crashed", At: e.At}
	case sim.LostToVoid:
		f = EventFrame{Name: "lost_to_void", At: e.At}
	case sim.Restarted:
		f = EventFrame{Name: "restarted"}
	}
	return Frame{Type: FrameEvent, Event: &f}
}
