// Package seed hosts the Seed of Life simulation as a registry game: a
// glowing seed orbits a sun and the player nudges it with thrust until it
// lands on a rocky planet and terraforms it. Two variants differ only in
// how the terraforming is drawn.
package seed

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/seed-of-life/internal/config"
	"github.com/vovakirdan/seed-of-life/internal/core"
	"github.com/vovakirdan/seed-of-life/internal/physics"
	"github.com/vovakirdan/seed-of-life/internal/registry"
	"github.com/vovakirdan/seed-of-life/internal/sim"
)

// Variant IDs as registered.
const (
	VariantTiles = "seed"
	VariantBiome = "seed_biome"
)

const (
	tailLifeMs = 500
	tailLength = 12
)

type tail struct {
	createdAt float64
}

// Game adapts sim.GameLoop to the registry.Game interface.
type Game struct {
	id     string
	title  string
	config core.RuntimeConfig
	params sim.Params

	loop     *sim.GameLoop
	recorder *sim.Recorder
	painter  painter
	tails    []tail
	paused   bool

	logger *log.Logger
}

// New creates a game of the given variant.
func New(variant string) *Game {
	title := "Seed of Life"
	if variant == VariantBiome {
		title = "Seed of Life: Biome"
	}
	return &Game{
		id:     variant,
		title:  title,
		params: sim.DefaultParams(),
		logger: log.Default().WithPrefix(variant),
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the tuning and starts a fresh loop in the start phase.
// A broken config file falls back to the built-in tuning.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.params = LoadParams(cfg, g.logger)

	g.loop = sim.New(g.params)
	g.recorder = sim.NewRecorder(g.loop, cfg.TickMs())
	g.loop.Subscribe(g.onEvent)
	g.tails = nil
	g.paused = false

	switch g.id {
	case VariantBiome:
		g.painter = newBiome(cfg.Seed, g.params.Field.Destination.Radius)
	default:
		g.painter = newTileReveal(g.params.TerraformMs)
	}
}

// LoadParams resolves the simulation parameters for a runtime config:
// YAML config, then difficulty preset.
func LoadParams(cfg core.RuntimeConfig, logger *log.Logger) sim.Params {
	sc, err := config.LoadSeed(cfg.ConfigPath)
	if err != nil {
		logger.Warn("using default tuning", "err", err)
		sc = config.DefaultSeedConfig()
	}
	preset, err := config.ParsePreset(cfg.Difficulty)
	if err != nil {
		logger.Warn("ignoring difficulty", "err", err)
	}
	config.ApplySeedPreset(&sc, preset)
	return Params(sc)
}

// Params converts a YAML config into simulation parameters.
func Params(c config.SeedConfig) sim.Params {
	body := func(b config.BodyConfig) physics.MassiveBody {
		return physics.MassiveBody{
			Pos:          physics.V(b.X, b.Y),
			Mass:         b.Mass,
			Radius:       b.Radius,
			GravityScale: b.GravityScale,
		}
	}
	return sim.Params{
		Field: physics.Field{
			G:           c.World.G,
			Origin:      body(c.Origin),
			Destination: body(c.Destination),
		},
		PlayerRadius:     c.Player.Radius,
		PlayerMass:       c.Player.Mass,
		StartOffset:      c.Player.StartOffset,
		StartSpeedFactor: c.Player.StartSpeedFactor,
		ThrustImpulse:    c.Thrust.Impulse,
		ThrustCooldownMs: c.Thrust.CooldownMs,
		MaxTickMs:        c.Rules.MaxTickMs,
		UnboundGraceMs:   c.Rules.UnboundGraceMs,
		Width:            c.World.Width,
		Height:           c.World.Height,
		BoundsMargin:     c.World.BoundsMargin,
		TerraformMs:      c.Rules.TerraformMs,
		IntroMs:          c.Rules.IntroMs,
		Scoring: sim.Scoring{
			WinBase:       c.Scoring.WinBase,
			ParMs:         c.Scoring.ParMs,
			ThrustPenalty: c.Scoring.ThrustPenalty,
		},
	}
}

func (g *Game) onEvent(ev sim.Event) {
	switch ev := ev.(type) {
	case sim.ThrustFired:
		g.tails = append(g.tails, tail{createdAt: ev.At})
		g.logger.Debug("thrust", "at", ev.At, "thrusts", g.loop.Thrusts())
	case sim.DestinationReached:
		g.logger.Debug("destination reached", "at", ev.At)
	case sim.Crashed:
		g.logger.Debug("crashed", "at", ev.At)
	case sim.LostToVoid:
		g.logger.Debug("lost to the void", "at", ev.At)
	case sim.Restarted:
		g.tails = nil
		g.logger.Debug("run started")
	}
}

// Step applies input and advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	phase := g.loop.Phase()

	if in.Has(core.ActionPause) && phase == sim.PhasePlay {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	switch phase {
	case sim.PhaseStart:
		if in.Has(core.ActionThrust) {
			g.loop.Restart()
		}
	case sim.PhasePlay:
		if in.Has(core.ActionRestart) {
			g.loop.Restart()
		} else if in.Has(core.ActionThrust) {
			g.loop.Thrust()
		}
	case sim.PhaseWin, sim.PhaseLose:
		if in.Has(core.ActionRestart) {
			g.loop.Restart()
		}
	}

	g.loop.Tick(g.config.TickMs())
	g.expireTails()

	return core.StepResult{State: g.State()}
}

func (g *Game) expireTails() {
	now := g.loop.State().ElapsedMs
	live := g.tails[:0]
	for _, t := range g.tails {
		if now-t.createdAt < tailLifeMs {
			live = append(live, t)
		}
	}
	g.tails = live
}

// State returns the current game state. Only a win scores.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.loop == nil {
		return st
	}
	if res, ok := g.loop.Result(); ok {
		st.GameOver = true
		st.Score = res.Score
	}
	return st
}

// Snapshot exposes the simulation state for tests and remote renderers.
func (g *Game) Snapshot() sim.Snapshot {
	return g.loop.Snapshot()
}

// Report describes the finished run for storage.
func (g *Game) Report() (registry.RunReport, bool) {
	res, ok := g.loop.Result()
	if !ok {
		return registry.RunReport{}, false
	}
	rec := g.recorder.Recording()
	return registry.RunReport{
		Outcome:     string(res.Outcome),
		ElapsedMs:   res.ElapsedMs,
		Thrusts:     res.Thrusts,
		Score:       res.Score,
		TickMs:      rec.TickMs,
		ThrustTicks: rec.ThrustTicks,
		Fingerprint: rec.Fingerprint,
	}, true
}

func init() {
	registry.Register(VariantTiles, func() registry.Game {
		return New(VariantTiles)
	})
	registry.Register(VariantBiome, func() registry.Game {
		return New(VariantBiome)
	})
}
