package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seed-of-life/internal/games/seed"
	"github.com/vovakirdan/seed-of-life/internal/registry"
	"github.com/vovakirdan/seed-of-life/internal/sim"
	"github.com/vovakirdan/seed-of-life/internal/storage"
)

var (
	flagThrustAt []int
	flagTicks    int
	flagTickMs   float64
	flagSave     bool
	flagVariant  string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run one game without a display. Thrusts are given as play-tick indices;
the run stops at the first win or loss, or after --ticks ticks.

Examples:
  seed sim
  seed sim --thrust-at 30,90
  seed sim --thrust-at 12 --tick-ms 10 --ticks 5000
  seed sim --thrust-at 30,90 --save`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntSliceVar(&flagThrustAt, "thrust-at", nil, "Play-tick indices at which to thrust")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Maximum number of ticks")
	simCmd.Flags().Float64Var(&flagTickMs, "tick-ms", 0, "Tick length in ms (0 = from --fps)")
	simCmd.Flags().BoolVar(&flagSave, "save", false, "Store the finished run")
	simCmd.Flags().StringVar(&flagVariant, "variant", seed.VariantTiles, "Variant to store the run under")
}

// headlessRun is the outcome of simulate.
type headlessRun struct {
	Result    sim.Result
	Finished  bool
	Phase     sim.Phase
	Energy    float64
	ElapsedMs float64
	Ticks     int
	Recording sim.Recording
}

// simulate plays one run from a fresh loop, thrusting before the listed
// play ticks. Thrusts that land on cooldown are dropped from the recording.
func simulate(p sim.Params, tickMs float64, thrustAt []int, maxTicks int) headlessRun {
	loop := sim.New(p)
	rec := sim.NewRecorder(loop, tickMs)
	loop.Restart()

	at := slices.Sorted(slices.Values(thrustAt))
	next, ticks := 0, 0
	for ; ticks < maxTicks && !loop.Phase().Terminal(); ticks++ {
		for next < len(at) && at[next] <= ticks {
			loop.Thrust()
			next++
		}
		loop.Tick(tickMs)
	}

	res, ok := loop.Result()
	return headlessRun{
		Result:    res,
		Finished:  ok,
		Phase:     loop.Phase(),
		Energy:    loop.Energy(),
		ElapsedMs: loop.State().ElapsedMs,
		Ticks:     ticks,
		Recording: rec.Recording(),
	}
}

func runSim(cmd *cobra.Command, _ []string) error {
	if !registry.Exists(flagVariant) {
		return fmt.Errorf("%w %q", registry.ErrUnknownGame, flagVariant)
	}

	cfg := runtimeConfig()
	tickMs := flagTickMs
	if tickMs <= 0 {
		tickMs = cfg.TickMs()
	}

	params := seed.LoadParams(cfg, log.Default())
	run := simulate(params, tickMs, flagThrustAt, flagTicks)
	printRun(cmd.OutOrStdout(), run)

	if !flagSave {
		return nil
	}
	if !run.Finished {
		return errors.New("cannot save an unfinished run")
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.SaveRun(storage.Run{
		Variant:     flagVariant,
		Outcome:     string(run.Result.Outcome),
		ElapsedMs:   run.Result.ElapsedMs,
		Thrusts:     run.Result.Thrusts,
		Score:       run.Result.Score,
		TickMs:      run.Recording.TickMs,
		ThrustTicks: run.Recording.ThrustTicks,
		Fingerprint: run.Recording.Fingerprint,
	})
	if err != nil {
		return err
	}
	if run.Result.Score > 0 {
		if _, err := store.SaveScore(flagVariant, run.Result.Score); err != nil {
			return err
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved run %s\n", id)
	return nil
}

func printRun(w io.Writer, run headlessRun) {
	if run.Finished {
		fmt.Fprintf(w, "Outcome:  %s (score %d)\n", run.Result.Outcome, run.Result.Score)
		fmt.Fprintf(w, "Elapsed:  %.0f ms (%d ticks)\n", run.Result.ElapsedMs, run.Ticks)
	} else {
		fmt.Fprintf(w, "Outcome:  unfinished (%s)\n", run.Phase)
		fmt.Fprintf(w, "Elapsed:  %.0f ms (%d ticks)\n", run.ElapsedMs, run.Ticks)
	}
	fmt.Fprintf(w, "Thrusts:  %d %v\n", len(run.Recording.ThrustTicks), run.Recording.ThrustTicks)
	fmt.Fprintf(w, "Energy:   %.2f\n", run.Energy)
}
