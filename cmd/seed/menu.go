package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/seed-of-life/internal/platform/tui"
	"github.com/vovakirdan/seed-of-life/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play, Tab for scores.
Leaving a game with Esc returns to the menu.

Examples:
  seed menu
  seed menu --fps 30
  seed menu --db ./scores.db`,
	Annotations: map[string]string{fullScreen: "true"},
	RunE:        runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			if err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH); err != nil {
				return err
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return err
			}
			model, err := tui.RunGame(game, store, cfg)
			if err != nil {
				return fmt.Errorf("running game: %w", err)
			}
			if !model.BackToMenu() {
				return nil
			}
		}
	}
}
