package sim

// Phase is the stage of a run.
type Phase int

const (
	PhaseStart Phase = iota // Pre-game, no physics
	PhasePlay               // Physics and outcome checks active
	PhaseWin                // Destination reached, terminal until restart
	PhaseLose               // Crashed or lost, terminal until restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlay:
		return "play"
	case PhaseWin:
		return "win"
	case PhaseLose:
		return "lose"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase ends the run.
func (p Phase) Terminal() bool {
	return p == PhaseWin || p == PhaseLose
}

// LoseReason explains a PhaseLose.
type LoseReason int

const (
	ReasonNone    LoseReason = iota
	ReasonCrashed            // Hit the origin body
	ReasonVoid               // Unbound for the whole grace period
)

// String returns the banner text for the reason.
func (r LoseReason) String() string {
	switch r {
	case ReasonCrashed:
		return "You crashed..."
	case ReasonVoid:
		return "Lost to the void..."
	default:
		return ""
	}
}

// State is the phase machine's bookkeeping. It is owned by GameLoop and
// mutated at most once per tick.
type State struct {
	Phase          Phase
	Reason         LoseReason
	ElapsedMs      float64
	UnboundAccumMs float64
}

// ThrustState gates new impulses.
type ThrustState struct {
	CooldownRemainingMs float64
}

// Ready reports whether the cooldown has expired.
func (t ThrustState) Ready() bool {
	return t.CooldownRemainingMs <= 0
}
