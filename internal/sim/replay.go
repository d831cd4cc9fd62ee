package sim

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"slices"
)

// Recording is everything needed to re-run a session headless: a fixed
// tick length and the play-tick index before which each thrust landed.
type Recording struct {
	Fingerprint string  `json:"fingerprint"`
	TickMs      float64 `json:"tick_ms"`
	ThrustTicks []int   `json:"thrust_ticks"`
}

// Fingerprint identifies a parameter set so a recording is only replayed
// against the tuning it was made with.
func Fingerprint(p Params) string {
	sum := sha256.Sum256(fmt.Appendf(nil, "%+v", p))
	return hex.EncodeToString(sum[:8])
}

// Matches reports whether the recording was made with p.
func (r Recording) Matches(p Params) bool {
	return r.Fingerprint == Fingerprint(p)
}

// Recorder captures the thrusts of the current run of a loop. The host must
// tick the loop with a constant TickMs for the recording to be replayable.
type Recorder struct {
	loop *GameLoop
	rec  Recording
}

// NewRecorder subscribes to loop. Each Restart begins a fresh recording.
func NewRecorder(loop *GameLoop, tickMs float64) *Recorder {
	r := &Recorder{
		loop: loop,
		rec: Recording{
			Fingerprint: Fingerprint(loop.Params()),
			TickMs:      tickMs,
		},
	}
	loop.Subscribe(r.observe)
	return r
}

func (r *Recorder) observe(ev Event) {
	switch ev.(type) {
	case ThrustFired:
		r.rec.ThrustTicks = append(r.rec.ThrustTicks, r.loop.PlayTicks())
	case Restarted:
		r.rec.ThrustTicks = nil
	}
}

// Recording returns a copy of what has been captured so far.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.ThrustTicks = slices.Clone(r.rec.ThrustTicks)
	return rec
}

// Replay starts a fresh loop with p and feeds it the recorded thrusts at
// rec.TickMs per tick. It stops at the first terminal phase or after
// maxTicks, and reports whether the run finished.
func Replay(p Params, rec Recording, maxTicks int) (Result, bool) {
	g := New(p)
	g.Restart()

	next := 0
	for i := range maxTicks {
		for next < len(rec.ThrustTicks) && rec.ThrustTicks[next] <= i {
			g.Thrust()
			next++
		}
		g.Tick(rec.TickMs)
		if g.Phase().Terminal() {
			break
		}
	}
	return g.Result()
}
