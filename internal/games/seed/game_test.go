package seed

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/seed-of-life/internal/config"
	"github.com/vovakirdan/seed-of-life/internal/core"
	"github.com/vovakirdan/seed-of-life/internal/registry"
	"github.com/vovakirdan/seed-of-life/internal/sim"
)

// nearWinYAML moves the destination into the seed's path so a run is won
// within a few ticks without any input.
const nearWinYAML = `
destination:
  x: 126
  y: 70
`

func testConfig(t *testing.T, yaml string) core.RuntimeConfig {
	t.Helper()
	cfg := core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
	if yaml != "" {
		path := filepath.Join(t.TempDir(), "seed.yaml")
		if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
			t.Fatal(err)
		}
		cfg.ConfigPath = path
	}
	return cfg
}

func thrust() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionThrust)
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{VariantTiles, VariantBiome} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("expected ID %q, got %q", id, g.ID())
		}
	}
}

func TestParamsMatchDefaults(t *testing.T) {
	if got := Params(config.DefaultSeedConfig()); got != sim.DefaultParams() {
		t.Errorf("default config and default params differ:\n%+v\n%+v", got, sim.DefaultParams())
	}
}

func TestLoadParamsDifficulty(t *testing.T) {
	cfg := testConfig(t, "")
	cfg.ConfigPath = filepath.Join(t.TempDir(), "missing.yaml")
	cfg.Difficulty = "hard"

	p := LoadParams(cfg, New(VariantTiles).logger)
	if p.UnboundGraceMs != 2000 || p.ThrustImpulse != 5 {
		t.Errorf("expected hard preset on default tuning, got %+v", p)
	}
}

func TestStartThenPlay(t *testing.T) {
	g := New(VariantTiles)
	g.Reset(testConfig(t, ""))

	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Phase != sim.PhaseStart {
		t.Fatalf("expected start phase without input, got %v", g.Snapshot().Phase)
	}

	g.Step(thrust())
	snap := g.Snapshot()
	if snap.Phase != sim.PhasePlay {
		t.Fatalf("expected thrust to start play, got %v", snap.Phase)
	}
	if snap.Thrusts != 0 {
		t.Error("the starting press should not count as a thrust")
	}

	g.Step(thrust())
	if g.Snapshot().Thrusts != 1 {
		t.Errorf("expected 1 thrust, got %d", g.Snapshot().Thrusts)
	}
	if len(g.tails) != 1 {
		t.Errorf("expected a thrust tail, got %d", len(g.tails))
	}

	// Tails fade after half a second.
	for range 40 {
		g.Step(core.NewInputFrame())
	}
	if len(g.tails) != 0 {
		t.Errorf("expected tails to expire, got %d", len(g.tails))
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New(VariantTiles)
	g.Reset(testConfig(t, ""))
	g.Step(thrust())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	frozen := g.Snapshot()
	for range 30 {
		g.Step(thrust())
	}
	if g.Snapshot() != frozen {
		t.Error("simulation should not advance while paused")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("expected pause to toggle off")
	}
}

func runToEnd(g *Game, maxSteps int) {
	for range maxSteps {
		if g.Step(core.NewInputFrame()).State.GameOver {
			return
		}
	}
}

func TestWinReportsRun(t *testing.T) {
	g := New(VariantTiles)
	cfg := testConfig(t, nearWinYAML)
	g.Reset(cfg)
	g.Step(thrust())
	runToEnd(g, 200)

	st := g.State()
	if !st.GameOver || st.Score <= 0 {
		t.Fatalf("expected a scored win, got %+v", st)
	}

	rep, ok := g.Report()
	if !ok {
		t.Fatal("expected a run report")
	}
	if rep.Outcome != string(sim.OutcomeWin) || rep.Score != st.Score {
		t.Errorf("unexpected report %+v", rep)
	}

	rec := sim.Recording{Fingerprint: rep.Fingerprint, TickMs: rep.TickMs, ThrustTicks: rep.ThrustTicks}
	if !rec.Matches(g.params) {
		t.Error("recording should match the params it was made with")
	}
	res, ok := sim.Replay(g.params, rec, 1000)
	if !ok || string(res.Outcome) != rep.Outcome || res.Score != rep.Score {
		t.Errorf("replay diverged: %+v vs %+v", res, rep)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Seed planted") {
		t.Error("expected the win banner")
	}

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)
	if g.State().GameOver {
		t.Error("expected restart to leave the win phase")
	}
	if _, ok := g.Report(); ok {
		t.Error("no report while playing")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := testConfig(t, "")
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%20 == 0 {
			inputs[i].Set(core.ActionThrust)
		}
	}

	run := func() sim.Snapshot {
		g := New(VariantBiome)
		g.Reset(cfg)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("identical inputs diverged:\n%+v\n%+v", a, b)
	}
}

func TestRenderPhases(t *testing.T) {
	g := New(VariantTiles)
	g.Reset(testConfig(t, ""))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if !strings.Contains(screen.String(), g.Title()) {
		t.Error("expected the title on the start screen")
	}

	// Finish the intro.
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)
	if !strings.Contains(screen.String(), "to start") {
		t.Error("expected the start hint after the intro")
	}

	g.Step(thrust())
	g.Render(screen)
	if !strings.ContainsRune(screen.String(), SeedChar) {
		t.Error("expected the seed during play")
	}

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("expected the pause banner")
	}
}

func TestRenderBeforeReset(t *testing.T) {
	g := New(VariantTiles)
	screen := core.NewScreen(10, 3)
	g.Render(screen)
	if g.State().GameOver {
		t.Error("unreset game should not be over")
	}
}

func TestHash01(t *testing.T) {
	tests := []struct {
		x, y int
		want float64
	}{
		{0, 0, 0},
		{1, 0, 0.2},
		{0, 1, 0.768},
		{3, 5, 0.608},
		{7, 7, 0.792},
	}
	for _, tt := range tests {
		if got := hash01(tt.x, tt.y); got != tt.want {
			t.Errorf("hash01(%d, %d) = %v, expected %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestTileRevealOrder(t *testing.T) {
	tr := newTileReveal(2000)

	if got := tr.Revealed(0); got != 1 {
		t.Errorf("expected only the first piece at t=0, got %d", got)
	}
	prev := 0
	for ms := 0.0; ms <= 3000; ms += 100 {
		n := tr.Revealed(ms)
		if n < prev {
			t.Fatalf("reveal went backwards at %vms", ms)
		}
		prev = n
	}
	if prev != tileCols*tileRows {
		t.Errorf("expected all %d pieces revealed, got %d", tileCols*tileRows, prev)
	}

	if _, _, ok := tr.paint(0, 0, 9, -1, 0); ok {
		t.Error("nothing should paint before the win")
	}
	if _, _, ok := tr.paint(0, 0, 9, 5000, 1); !ok {
		t.Error("everything should paint once revealed")
	}
}

func TestBiomeLayout(t *testing.T) {
	a := newBiome(7, 9)
	b := newBiome(7, 9)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should give the same biome")
	}
	if len(a.oceans) != 3 || len(a.lakes) != 8 || len(a.vines) != 6 || len(a.leaves) != 24 {
		t.Errorf("unexpected feature counts: %d oceans, %d lakes, %d vines, %d leaves",
			len(a.oceans), len(a.lakes), len(a.vines), len(a.leaves))
	}

	if _, _, ok := a.paint(0, 0, 9, 0, 0); ok {
		t.Error("nothing should grow at zero progress")
	}
	if _, _, ok := a.paint(0, 0, 9, 2000, 1); !ok {
		t.Error("the centre should be covered once terraformed")
	}
}
