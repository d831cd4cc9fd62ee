package sim

import (
	"slices"
	"testing"
)

func TestRecorderResetsOnRestart(t *testing.T) {
	g := playing()
	r := NewRecorder(g, 16)

	if !g.Thrust() {
		t.Fatal("expected thrust to fire")
	}
	g.Tick(16)
	if got := r.Recording().ThrustTicks; !slices.Equal(got, []int{0}) {
		t.Fatalf("expected thrust ticks [0], got %v", got)
	}

	g.Restart()
	if got := r.Recording().ThrustTicks; len(got) != 0 {
		t.Errorf("expected an empty recording after restart, got %v", got)
	}
}

func TestRecordingIsACopy(t *testing.T) {
	g := playing()
	r := NewRecorder(g, 16)

	g.Thrust()
	rec := r.Recording()

	for range 12 {
		g.Tick(16)
	}
	if !g.Thrust() {
		t.Fatal("expected second thrust once cooldown elapsed")
	}
	if len(rec.ThrustTicks) != 1 {
		t.Errorf("earlier copy should keep 1 thrust, got %v", rec.ThrustTicks)
	}
	if got := r.Recording().ThrustTicks; !slices.Equal(got, []int{0, 12}) {
		t.Errorf("expected thrust ticks [0 12], got %v", got)
	}

	rec.ThrustTicks[0] = 99
	if got := r.Recording().ThrustTicks[0]; got != 0 {
		t.Errorf("mutating a copy should not reach the recorder, got %d", got)
	}
}

func TestReplayReproducesRun(t *testing.T) {
	p := DefaultParams()
	g := New(p)
	g.Restart()
	r := NewRecorder(g, 16)

	for i := 0; i < 4000 && !g.Phase().Terminal(); i++ {
		if i%40 == 0 {
			g.Thrust()
		}
		g.Tick(16)
	}
	want, ok := g.Result()
	if !ok {
		t.Fatal("expected the recorded run to finish")
	}

	rec := r.Recording()
	if !rec.Matches(p) {
		t.Fatal("recording should match the params it was made with")
	}
	got, ok := Replay(p, rec, 4000)
	if !ok {
		t.Fatal("expected the replay to finish")
	}
	if got != want {
		t.Errorf("expected replay result %+v, got %+v", want, got)
	}
}
