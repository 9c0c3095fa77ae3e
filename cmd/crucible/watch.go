package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/crucible-tabletop/crucible/internal/config"
	"github.com/crucible-tabletop/crucible/internal/platform/tui"
	"github.com/crucible-tabletop/crucible/internal/storage"
)

var flagWatchConfig string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch a match in the interactive TUI",
	Long: `Start the interactive setup screen, then watch the battle play out.

Use arrow keys or j/k to navigate, Enter to confirm each choice.
After a match ends, press Esc to set up another one.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Confirm / skip playback
  Esc/B        - Back
  Q            - Quit

Examples:
  crucible watch
  crucible watch --config ./my-match.yaml
  crucible watch --db ./history.db`,
	Run: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&flagWatchConfig, "config", "", "Path to custom match config YAML")
}

func runWatch(_ *cobra.Command, _ []string) {
	// Open match history storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		store = nil
	}

	cfg, err := config.Load(flagWatchConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	// Setup/match loop
	for {
		result, err := tui.RunSetup(cfg, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if result.Quit {
			break
		}

		goBack, err := tui.RunMatch(result.Match, store, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		if !goBack {
			break
		}

		// Carry the previous choices into the next setup round
		cfg = result.Match
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
