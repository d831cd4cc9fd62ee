package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seed-of-life/internal/games/seed"
	"github.com/vovakirdan/seed-of-life/internal/sim"
	"github.com/vovakirdan/seed-of-life/internal/storage"
)

var flagReplayTicks int

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Re-simulate a stored run",
	Long: `Replay a stored run headless and check that it ends the same way.

The run must be replayed with the tuning it was recorded with, so pass the
same --config and --difficulty used when it was played. Run IDs are listed
by 'seed scores'.

Examples:
  seed replay 0b6f3c1e-8d2a-4c55-9f1e-3a7d2b9c4e10`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().IntVar(&flagReplayTicks, "ticks", 36000, "Maximum number of ticks")
}

func runReplay(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.RunByID(args[0])
	if err != nil {
		return err
	}

	params := seed.LoadParams(runtimeConfig(), log.Default())
	return verifyRun(cmd, params, run)
}

// verifyRun replays run against params and fails unless the outcome and
// score match what was stored.
func verifyRun(cmd *cobra.Command, params sim.Params, run storage.Run) error {
	rec := sim.Recording{
		Fingerprint: run.Fingerprint,
		TickMs:      run.TickMs,
		ThrustTicks: run.ThrustTicks,
	}
	if !rec.Matches(params) {
		return fmt.Errorf("run %s was recorded with different tuning; pass the --config and --difficulty it was played with", run.ID)
	}

	res, ok := sim.Replay(params, rec, flagReplayTicks)
	if !ok {
		return fmt.Errorf("replay of %s did not finish within %d ticks", run.ID, flagReplayTicks)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Stored:   %s, score %d, %.0f ms, %d thrusts\n", run.Outcome, run.Score, run.ElapsedMs, run.Thrusts)
	fmt.Fprintf(out, "Replayed: %s, score %d, %.0f ms, %d thrusts\n", res.Outcome, res.Score, res.ElapsedMs, res.Thrusts)

	if string(res.Outcome) != run.Outcome || res.Score != run.Score || res.Thrusts != run.Thrusts {
		return fmt.Errorf("replay of %s diverged", run.ID)
	}
	fmt.Fprintln(out, "Verified.")
	return nil
}
