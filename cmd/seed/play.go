package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/seed-of-life/internal/games/seed"
	"github.com/vovakirdan/seed-of-life/internal/platform/tui"
	"github.com/vovakirdan/seed-of-life/internal/registry"
	"github.com/vovakirdan/seed-of-life/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or the tile reveal variant by default.

Controls:
  Space/Enter/Up/Click  - Thrust (starts the run from the title screen)
  P                     - Pause
  R                     - Restart
  Esc/B                 - Leave
  Q/Ctrl+C              - Quit
  Ctrl+S                - Screenshot to ~/.seed/screenshots

Difficulty options:
  easy   - Longer escape grace, shorter cooldown, stronger thrust
  normal - The config's own values
  hard   - Shorter escape grace, longer cooldown, weaker thrust

Examples:
  seed play
  seed play seed_biome
  seed play --difficulty easy
  seed play --config ./my-seed.yaml`,
	Args:        cobra.MaximumNArgs(1),
	Annotations: map[string]string{fullScreen: "true"},
	RunE:        runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := seed.VariantTiles
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'seed list' to see variants)", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// openStore opens the scores database. The game still runs without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		log.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
