// crucible is a skirmish wargame sandbox for pitting AI commanders
// against each other in the terminal.
//
// Usage:
//
//	crucible tiers              - List available difficulty tiers
//	crucible inspect <tier>     - Show the full policy for a tier
//	crucible sim                - Run a headless match and print the battle log
//	crucible watch              - Watch a match play out in the TUI
//	crucible history            - Show recorded match results
//	crucible serve              - Start SSH and spectator servers
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.crucible/history.db)
//	--seed <value>  - Set RNG seed for reproducible matches
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crucible",
	Short: "Crucible - AI skirmish battles in your terminal",
	Long: `Crucible pits AI commanders against each other in small tabletop-style
skirmishes. Each side plays at a difficulty tier that controls which
tactical capabilities its commander may use.

Available commands:
  tiers    - List difficulty tiers
  inspect  - Show the full policy for one tier
  sim      - Run a headless match
  watch    - Watch a match in the interactive TUI
  history  - View recorded match results
  serve    - Start SSH server for remote spectating

Examples:
  crucible tiers
  crucible inspect competitive
  crucible sim --red hard --blue easy
  crucible watch
  crucible serve --ssh :23234 --http :8080`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.crucible/history.db", "Path to match history database")

	// Add subcommands
	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}
