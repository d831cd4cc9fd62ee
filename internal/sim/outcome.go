package sim

import "github.com/vovakirdan/seed-of-life/internal/physics"

// resolve runs once per play tick after integration. A collision always
// wins over the unbound check, and a colliding tick leaves the unbound
// accumulator untouched.
func (g *GameLoop) resolve(dtMs float64) {
	if g.checkCollisions() {
		return
	}
	g.checkUnbound(dtMs)
}

func (g *GameLoop) checkCollisions() bool {
	at := g.state.ElapsedMs
	switch {
	case g.field.Origin.Contains(g.player.Pos):
		g.state.Phase = PhaseLose
		g.state.Reason = ReasonCrashed
		g.endedAt = at
		g.emit(Crashed{At: at})
		return true
	case g.field.Destination.Contains(g.player.Pos):
		g.state.Phase = PhaseWin
		g.endedAt = at
		g.emit(DestinationReached{At: at})
		return true
	}
	return false
}

func (g *GameLoop) checkUnbound(dtMs float64) {
	if !g.Unbound() {
		g.state.UnboundAccumMs = 0
		return
	}
	g.state.UnboundAccumMs += dtMs
	if g.state.UnboundAccumMs >= g.params.UnboundGraceMs {
		g.state.Phase = PhaseLose
		g.state.Reason = ReasonVoid
		g.endedAt = g.state.ElapsedMs
		g.emit(LostToVoid{At: g.state.ElapsedMs})
	}
}

// Unbound reports whether the seed is currently escaping: positive total
// energy, or outside the field expanded by the bounds margin.
func (g *GameLoop) Unbound() bool {
	return g.field.Unbound(g.player) || g.OutOfBounds(g.player.Pos)
}

// OutOfBounds reports whether p lies beyond the play field plus margin.
func (g *GameLoop) OutOfBounds(p physics.Vec2) bool {
	m := g.params.BoundsMargin
	return p.X < -m || p.X > g.params.Width+m ||
		p.Y < -m || p.Y > g.params.Height+m
}
