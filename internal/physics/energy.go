package physics

import "math"

// KineticEnergy returns 0.5 * m * |v|^2.
func KineticEnergy(mass float64, vel Vec2) float64 {
	return 0.5 * mass * vel.LengthSquared()
}

// PotentialEnergy returns the gravitational potential energy of a point of the
// given mass at pos, summed over both massive bodies. Distances are floored
// at EnergyDistanceFloor.
func (f Field) PotentialEnergy(mass float64, pos Vec2) float64 {
	var u float64
	for _, m := range f.Bodies() {
		r := math.Max(EnergyDistanceFloor, pos.Distance(m.Pos))
		u -= m.mu(f.G) * mass / r
	}
	return u
}

// TotalEnergy returns the mechanical energy of b. A positive value means the
// body is on an escape trajectory.
func (f Field) TotalEnergy(b Body) float64 {
	return KineticEnergy(b.Mass, b.Vel) + f.PotentialEnergy(b.Mass, b.Pos)
}

// Unbound reports whether b's total energy is positive.
func (f Field) Unbound(b Body) bool {
	return f.TotalEnergy(b) > 0
}
