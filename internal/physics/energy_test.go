package physics

import (
	"math"
	"testing"
)

func TestKineticEnergy(t *testing.T) {
	if got := KineticEnergy(2, V(3, 4)); got != 25 {
		t.Errorf("KineticEnergy = %f, expected 25", got)
	}
	if got := KineticEnergy(1, Vec2{}); got != 0 {
		t.Errorf("KineticEnergy at rest = %f, expected 0", got)
	}
}

func TestPotentialEnergyFloor(t *testing.T) {
	f := soloField()

	// At the centre the distance is floored at 2, not at the softening radius.
	got := f.PotentialEnergy(1, f.Origin.Pos)
	want := -f.G * f.Origin.Mass / EnergyDistanceFloor
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PotentialEnergy at centre = %f, expected %f", got, want)
	}

	// Beyond the floor it is plain -GMm/r.
	got = f.PotentialEnergy(1, f.Origin.Pos.Add(V(40, 0)))
	want = -f.G * f.Origin.Mass / 40
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("PotentialEnergy at r=40 = %f, expected %f", got, want)
	}
}

func TestPotentialEnergyBothBodies(t *testing.T) {
	f := testField()
	pos := V(126, 90)

	want := -(120*1.0*1600)/36.0 - (120*0.5*2200)/104.0
	if got := f.PotentialEnergy(1, pos); math.Abs(got-want) > 1e-9 {
		t.Errorf("PotentialEnergy = %f, expected %f", got, want)
	}
}

func TestUnbound(t *testing.T) {
	f := testField()
	b := Body{Pos: V(126, 90), Vel: V(0, -10), Radius: 1, Mass: 1}
	if f.Unbound(b) {
		t.Errorf("slow body near the sun should be bound, E=%f", f.TotalEnergy(b))
	}

	b.Vel = V(0, -500)
	if !f.Unbound(b) {
		t.Errorf("fast body should be unbound, E=%f", f.TotalEnergy(b))
	}
}
