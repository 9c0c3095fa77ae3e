package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crucible-tabletop/crucible/internal/ai/difficulty"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List all difficulty tiers",
	Long:  `Shows the difficulty tiers an AI commander can play at.`,
	Run:   runTiers,
}

func runTiers(cmd *cobra.Command, args []string) {
	tiers := difficulty.Tiers()

	fmt.Println("Available tiers:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, t := range tiers {
		if len(t.Name()) > maxNameLen {
			maxNameLen = len(t.Name())
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	// Print tiers
	for _, t := range tiers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, t.Name(), t.Description())
	}

	fmt.Println()
	fmt.Println("Run 'crucible inspect <tier>' to see a tier's full policy.")
}
