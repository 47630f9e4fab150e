package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("cannot write temp config: %v", err)
	}
	return path
}

func TestLoadCustomPath(t *testing.T) {
	path := writeTempYAML(t, `
player:
  walk_period: 3
  sneak_period: 9
guards:
  view_distance: 20
`)

	cfg, err := LoadHeist(path)
	if err != nil {
		t.Fatalf("LoadHeist() failed: %v", err)
	}

	if cfg.Player.WalkPeriod != 3 {
		t.Errorf("WalkPeriod = %d, expected 3", cfg.Player.WalkPeriod)
	}
	if cfg.Guards.ViewDistance != 20 {
		t.Errorf("ViewDistance = %d, expected 20", cfg.Guards.ViewDistance)
	}
	// Fields absent from the file stay zero; a custom path replaces,
	// not overlays, the defaults
	if cfg.Scoring.TimeBonus != 0 {
		t.Errorf("TimeBonus = %d, expected 0", cfg.Scoring.TimeBonus)
	}
}

func TestLoadCustomPathMissingFile(t *testing.T) {
	_, err := LoadRumble(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("LoadRumble() should fail for a missing custom path")
	}
}

func TestLoadCustomPathBadYAML(t *testing.T) {
	path := writeTempYAML(t, "player: [not: a: mapping")

	if _, err := LoadBrawl(path); err == nil {
		t.Fatal("LoadBrawl() should fail on unparseable YAML")
	}
}

func TestLoadFallsBackToEmbeddedDefaults(t *testing.T) {
	// Run from an empty directory so no ./configs override applies
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	defer os.Chdir(orig)
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadRumble("")
	if err != nil {
		t.Fatalf("LoadRumble() failed: %v", err)
	}

	if cfg.Player.MaxHealth != 100 {
		t.Errorf("MaxHealth = %d, expected embedded default 100", cfg.Player.MaxHealth)
	}
	if cfg.Enemies.SpawnDelay != 60 {
		t.Errorf("SpawnDelay = %d, expected embedded default 60", cfg.Enemies.SpawnDelay)
	}
	if cfg.Difficulty.Progression.Type != "score" {
		t.Errorf("Progression type = %q, expected score", cfg.Difficulty.Progression.Type)
	}
}

func TestLoadWorkingDirOverride(t *testing.T) {
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	dir := t.TempDir()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	defer os.Chdir(orig)
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("cannot create configs dir: %v", err)
	}
	override := "road:\n  width: 40\n"
	if err := os.WriteFile(filepath.Join("configs", "rally.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("cannot write override: %v", err)
	}

	cfg, err := LoadRally("")
	if err != nil {
		t.Fatalf("LoadRally() failed: %v", err)
	}
	if cfg.Road.Width != 40 {
		t.Errorf("Width = %d, expected 40 from ./configs override", cfg.Road.Width)
	}
}

func TestLoadUserConfigOverride(t *testing.T) {
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() failed: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir() failed: %v", err)
	}
	defer os.Chdir(orig)

	home := t.TempDir()
	t.Setenv("HOME", home)

	userConfigs := filepath.Join(home, userDir, "configs")
	if err := os.MkdirAll(userConfigs, 0o755); err != nil {
		t.Fatalf("cannot create user config dir: %v", err)
	}
	override := "rounds:\n  best_of: 5\n"
	if err := os.WriteFile(filepath.Join(userConfigs, "brawl.yaml"), []byte(override), 0o644); err != nil {
		t.Fatalf("cannot write override: %v", err)
	}

	cfg, err := LoadBrawl("")
	if err != nil {
		t.Fatalf("LoadBrawl() failed: %v", err)
	}
	if cfg.Rounds.BestOf != 5 {
		t.Errorf("BestOf = %d, expected 5 from user override", cfg.Rounds.BestOf)
	}
}
