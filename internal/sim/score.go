package sim

import "math"

// Outcome is how a finished run ended.
type Outcome string

const (
	OutcomeWin     Outcome = "win"
	OutcomeCrashed Outcome = "crashed"
	OutcomeVoid    Outcome = "void"
)

// Result summarizes a finished run.
type Result struct {
	Outcome   Outcome
	ElapsedMs float64
	Thrusts   int
	Score     int
}

// Result returns the run summary once the phase is terminal.
func (g *GameLoop) Result() (Result, bool) {
	var outcome Outcome
	switch g.state.Phase {
	case PhaseWin:
		outcome = OutcomeWin
	case PhaseLose:
		outcome = OutcomeCrashed
		if g.state.Reason == ReasonVoid {
			outcome = OutcomeVoid
		}
	default:
		return Result{}, false
	}

	res := Result{
		Outcome:   outcome,
		ElapsedMs: g.endedAt,
		Thrusts:   g.thrusts,
	}
	if outcome == OutcomeWin {
		res.Score = g.params.Scoring.Score(g.endedAt, g.thrusts)
	}
	return res, true
}

// Score computes the points for a win after elapsedMs with the given number
// of thrusts. Never less than 1.
func (s Scoring) Score(elapsedMs float64, thrusts int) int {
	bonus := 0
	if s.ParMs > elapsedMs {
		bonus = int(math.Floor((s.ParMs - elapsedMs) / 100))
	}
	score := s.WinBase + bonus - s.ThrustPenalty*thrusts
	if score < 1 {
		return 1
	}
	return score
}
