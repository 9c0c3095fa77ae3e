package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crucible-tabletop/crucible/internal/ai/difficulty"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <tier>",
	Short: "Show the full policy for a difficulty tier",
	Long: `Display every capability flag and numeric parameter for a tier.

Unknown tier names fall back to Normal.

Examples:
  crucible inspect easy
  crucible inspect competitive`,
	Args: cobra.ExactArgs(1),
	Run:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) {
	tier := difficulty.ParseTier(args[0])
	policy := difficulty.PolicyFor(tier)

	fmt.Printf("Tier: %s\n", tier.Name())
	fmt.Printf("  %s\n", tier.Description())
	fmt.Println()

	fmt.Println("Capabilities:")
	flags := []struct {
		name string
		on   bool
	}{
		{"Random actions", policy.RandomActions},
		{"Stratagems", policy.Stratagems},
		{"Coordinated planning", policy.CoordinatedPlanning},
		{"Focus fire", policy.FocusFire},
		{"Threat positioning", policy.ThreatPositioning},
		{"Trade analysis", policy.TradeAnalysis},
		{"Look-ahead", policy.LookAhead},
		{"Weapon matching", policy.WeaponMatching},
		{"Survival assessment", policy.SurvivalAssessment},
		{"Screening", policy.Screening},
		{"Counter-deployment", policy.CounterDeployment},
		{"Command re-rolls", policy.CommandRerolls},
		{"Overwatch", policy.Overwatch},
		{"Counter-offensive", policy.CounterOffensive},
	}
	for _, f := range flags {
		mark := " "
		if f.on {
			mark = "x"
		}
		fmt.Printf("  [%s] %s\n", mark, f.name)
	}

	fmt.Println()
	fmt.Println("Parameters:")
	fmt.Printf("  %-26s %.1f\n", "Score noise", policy.ScoreNoise)
	fmt.Printf("  %-26s %d\n", "Movement iterations", policy.MovementIterations)
	fmt.Printf("  %-26s %.2f\n", "Charge threshold modifier", policy.ChargeThresholdModifier)
}
