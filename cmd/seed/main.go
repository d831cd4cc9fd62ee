// seed carries a seed of life across a two-body gravity field to a barren
// planet, in the terminal, over SSH or to a browser over WebSocket.
//
// Usage:
//
//	seed play [variant]      - Play a variant (default: seed)
//	seed menu                - Pick a variant interactively
//	seed list                - List available variants
//	seed scores [variant]    - Show high scores and recent runs
//	seed serve               - Start the SSH and/or WebSocket servers
//	seed sim                 - Run a headless simulation
//	seed replay <run-id>     - Re-simulate a stored run
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for the terraform art
//	--db <path>           - Set database path (default: ~/.seed/scores.db)
//	--config <path>       - Custom seed.yaml
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/seed-of-life/internal/core"
	// Import the game to register its variants
	_ "github.com/vovakirdan/seed-of-life/internal/games/seed"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string

	logFile *os.File
)

func main() {
	defer closeLog()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		closeLog()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed of Life - carry a seed across the void",
	Long: `Seed of Life is a one-button orbital game. A seed orbits a small sun;
tap to thrust along its heading and slingshot it onto the barren planet
next door. Land it and the planet turns green.

Available commands:
  play     - Play a variant directly
  menu     - Interactive variant picker
  list     - Show all variants
  scores   - View high scores and recent runs
  serve    - Start the SSH and WebSocket servers
  sim      - Run a headless simulation
  replay   - Re-simulate a stored run

Examples:
  seed play
  seed play seed_biome --difficulty easy
  seed serve --ssh :2222 --ws :8080
  seed sim --thrust-at 30,90 --save`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogger,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for terraform art (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.seed/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom seed.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(replayCmd)
}

// fullScreen marks commands that own the terminal. Their logs go to
// --log-file or nowhere.
const fullScreen = "fullscreen"

// setupLogger installs the default logger for every package.
func setupLogger(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	switch {
	case flagLogFile != "":
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return fmt.Errorf("cannot create log directory: %w", err)
		}
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		w = logFile
	case cmd.Annotations[fullScreen] == "true":
		w = io.Discard
	}

	log.SetDefault(log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Level:           level,
	}))
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// runtimeConfig builds the game config from the global flags and the
// terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty
	return cfg
}
