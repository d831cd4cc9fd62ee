package physics

import "math"

// SofteningPad is added to the combined radii to form the minimum separation
// used by the gravity field.
const SofteningPad = 0.5

// EnergyDistanceFloor is the minimum distance used when computing potential
// energy. It is independent of the gravity softening floor.
const EnergyDistanceFloor = 2.0

// Body is a moving point with a collision radius. The player seed is a Body.
// Mass only participates in energy bookkeeping; it cancels out of the
// equations of motion.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Mass   float64
}

// Speed returns the magnitude of the body's velocity.
func (b Body) Speed() float64 {
	return b.Vel.Length()
}

// MassiveBody is a fixed gravitating body (the sun or the destination planet).
// GravityScale attenuates its pull independently of its mass.
type MassiveBody struct {
	Pos          Vec2
	Mass         float64
	Radius       float64
	GravityScale float64
}

// Contains reports whether p lies on or inside the body's surface.
func (m MassiveBody) Contains(p Vec2) bool {
	return p.Distance(m.Pos) <= m.Radius
}

// mu returns the effective gravitational parameter G * scale * M.
func (m MassiveBody) mu(g float64) float64 {
	return g * m.GravityScale * m.Mass
}

// Field is the fixed two-body gravity field. Exactly two massive bodies exist:
// Origin (the sun the seed starts around) and Destination (the planet to reach).
type Field struct {
	G           float64
	Origin      MassiveBody
	Destination MassiveBody
}

// Bodies returns the massive bodies in collision priority order.
func (f Field) Bodies() [2]MassiveBody {
	return [2]MassiveBody{f.Origin, f.Destination}
}

// Acceleration returns the net gravitational acceleration on a body of the
// given radius at pos. Separation is floored at the combined radii plus
// SofteningPad so the force stays finite near a surface.
func (f Field) Acceleration(pos Vec2, radius float64) Vec2 {
	var acc Vec2
	for _, m := range f.Bodies() {
		d := m.Pos.Sub(pos)
		dist2 := d.LengthSquared()
		minR := m.Radius + radius + SofteningPad
		if dist2 < minR*minR {
			dist2 = minR * minR
		}
		invDist := 1 / math.Sqrt(dist2)
		factor := m.mu(f.G) * invDist * invDist * invDist
		acc = acc.Add(d.Scale(factor))
	}
	return acc
}

// Step advances b by dt seconds using semi-implicit Euler: velocity is
// updated first and the new velocity moves the position.
func (f Field) Step(b *Body, dt float64) {
	a := f.Acceleration(b.Pos, b.Radius)
	b.Vel = b.Vel.Add(a.Scale(dt))
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
}

// CircularSpeed returns the speed of a circular orbit of radius r around the
// origin body, ignoring the destination's pull.
func (f Field) CircularSpeed(r float64) float64 {
	if r <= 0 {
		return 0
	}
	return math.Sqrt(f.G * f.Origin.Mass / r)
}
