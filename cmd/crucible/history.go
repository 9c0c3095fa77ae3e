package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/crucible-tabletop/crucible/internal/ai/difficulty"
	"github.com/crucible-tabletop/crucible/internal/storage"
)

var (
	flagHistoryTier  string
	flagHistoryLimit int
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded match results",
	Long: `Display the most recent match results from the history database.

With --tier, only matches where one side played at that tier are
shown, along with the tier's aggregate win rate.

Examples:
  crucible history
  crucible history --limit 5
  crucible history --tier competitive
  crucible history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().StringVar(&flagHistoryTier, "tier", "", "Filter by difficulty tier")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Maximum number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all recorded matches")
}

func runHistory(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Match history cleared.")
		return
	}

	var matches []storage.MatchRecord
	if flagHistoryTier != "" {
		tier := difficulty.ParseTier(flagHistoryTier)
		matches, err = store.MatchesForTier(tier, flagHistoryLimit)
		if err == nil {
			printTierStats(store, tier)
		}
	} else {
		matches, err = store.RecentMatches(flagHistoryLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'crucible sim' or 'crucible watch' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-12s  %-11s  %-11s  %-7s  %-6s  %s\n", "Scenario", "Red", "Blue", "Winner", "Rounds", "Date")
	fmt.Printf("  %-12s  %-11s  %-11s  %-7s  %-6s  %s\n", "--------", "---", "----", "------", "------", "----")

	// Print matches
	for _, rec := range matches {
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-12s  %-11s  %-11s  %-7s  %-6d  %s\n",
			rec.Scenario, rec.RedTier, rec.BlueTier, rec.Winner, rec.Rounds, dateStr)
	}
}

func printTierStats(store *storage.Store, tier difficulty.Tier) {
	stats, err := store.StatsForTier(tier)
	if err != nil || stats.Games == 0 {
		return
	}
	fmt.Printf("%s: %d games, %.0f%% win rate, %.1f rounds on average\n",
		tier.Name(), stats.Games, stats.WinRate()*100, stats.AvgRounds)
	fmt.Println()
}
