package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/crucible-tabletop/crucible/internal/config"
	"github.com/crucible-tabletop/crucible/internal/scenario"
	"github.com/crucible-tabletop/crucible/internal/sim"
	"github.com/crucible-tabletop/crucible/internal/storage"
)

var (
	flagConfig   string
	flagScenario string
	flagRounds   int
	flagRed      string
	flagBlue     string
	flagQuiet    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless match",
	Long: `Run one skirmish without the TUI and print the battle log.

Settings come from the match config file and can be overridden per
flag. The result is recorded in the match history database.

Examples:
  crucible sim
  crucible sim --red hard --blue easy
  crucible sim --scenario crossfire --rounds 3 --seed 42
  crucible sim --config ./my-match.yaml --quiet`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom match config YAML")
	simCmd.Flags().StringVar(&flagScenario, "scenario", "", "Scenario ID (overrides config)")
	simCmd.Flags().IntVar(&flagRounds, "rounds", 0, "Round limit (overrides config)")
	simCmd.Flags().StringVar(&flagRed, "red", "", "Red difficulty tier (overrides config)")
	simCmd.Flags().StringVar(&flagBlue, "blue", "", "Blue difficulty tier (overrides config)")
	simCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Only print the result line")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyOverrides(&cfg)

	if !scenario.Exists(cfg.Scenario) {
		fmt.Fprintf(os.Stderr, "Error: unknown scenario %q\n", cfg.Scenario)
		fmt.Fprintln(os.Stderr, "Run 'crucible watch' to pick from the scenario list.")
		os.Exit(1)
	}

	state, err := scenario.Create(cfg.Scenario)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	runner, err := sim.New(state, cfg.Red.Tier(), cfg.Blue.Tier(), seed, cfg.Rounds)
	if err != nil {
		return err
	}

	if !flagQuiet {
		runner.OnEvent(func(ev sim.Event) {
			fmt.Printf("[R%d %-8s] %-4s %s\n", ev.Round, ev.Phase, ev.Side, ev.Detail)
		})
	}

	res := runner.Run()

	fmt.Println()
	fmt.Printf("%s vs %s on %q: %s wins after %d rounds\n",
		cfg.Red.Tier().Name(), cfg.Blue.Tier().Name(), cfg.Scenario, res.Winner, res.Rounds)
	fmt.Printf("  Red lost %d pts (%d units left), Blue lost %d pts (%d units left)\n",
		res.RedPointsLost, res.RedSurvivors, res.BluePointsLost, res.BlueSurvivors)

	// Record the result, best effort
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open history database", "error", err)
		return nil
	}
	defer store.Close()

	if _, err := store.SaveMatch(storage.MatchRecord{
		Scenario:       cfg.Scenario,
		RedTier:        cfg.Red.Tier().Name(),
		BlueTier:       cfg.Blue.Tier().Name(),
		Winner:         res.Winner,
		Rounds:         res.Rounds,
		RedPointsLost:  res.RedPointsLost,
		BluePointsLost: res.BluePointsLost,
		Seed:           seed,
	}); err != nil {
		log.Warn("could not record match", "error", err)
	}
	return nil
}

// applyOverrides layers CLI flags over the loaded config.
func applyOverrides(cfg *config.MatchConfig) {
	if flagScenario != "" {
		cfg.Scenario = flagScenario
	}
	if flagRounds > 0 {
		cfg.Rounds = flagRounds
	}
	if flagRed != "" {
		cfg.Red.Difficulty = flagRed
	}
	if flagBlue != "" {
		cfg.Blue.Difficulty = flagBlue
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
}
