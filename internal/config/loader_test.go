package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/crucible-tabletop/crucible/internal/ai/difficulty"
)

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "match.yaml")

	data := `
scenario: crossfire
rounds: 3
seed: 42
red:
  name: Test Red
  difficulty: competitive
blue:
  name: Test Blue
  difficulty: EASY
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Scenario != "crossfire" {
		t.Errorf("Scenario = %q, want %q", cfg.Scenario, "crossfire")
	}
	if cfg.Rounds != 3 || cfg.Seed != 42 {
		t.Errorf("Rounds/Seed = %d/%d, want 3/42", cfg.Rounds, cfg.Seed)
	}
	if got := cfg.Red.Tier(); got != difficulty.Competitive {
		t.Errorf("Red tier = %v, want Competitive", got)
	}
	// Tier names are case-insensitive.
	if got := cfg.Blue.Tier(); got != difficulty.Easy {
		t.Errorf("Blue tier = %v, want Easy", got)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing explicit path did not fail")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("scenario: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() with malformed YAML did not fail")
	}
}

func TestUnknownDifficultyDegradesToNormal(t *testing.T) {
	side := SideConfig{Name: "X", Difficulty: "nightmare"}
	if got := side.Tier(); got != difficulty.Normal {
		t.Errorf("Tier() = %v, want Normal", got)
	}

	empty := SideConfig{}
	if got := empty.Tier(); got != difficulty.Normal {
		t.Errorf("empty Tier() = %v, want Normal", got)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Loading with no custom path from a directory without local
	// configs falls through to the embedded YAML, which should agree
	// with Default().
	t.Chdir(t.TempDir())

	// Home lookups may still find a user config; skip if one exists.
	if home, err := os.UserHomeDir(); err == nil {
		if _, err := os.Stat(filepath.Join(home, ".crucible", "match.yaml")); err == nil {
			t.Skip("user config present")
		}
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", cfg, Default())
	}
}
