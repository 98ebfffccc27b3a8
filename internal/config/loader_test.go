package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	// Load with no custom path falls back through to the embedded YAML,
	// which must agree with the hardcoded Default().
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	def := Default()
	if cfg.Wave.Wavelength != def.Wave.Wavelength {
		t.Errorf("wavelength = %v, expected %v", cfg.Wave.Wavelength, def.Wave.Wavelength)
	}
	if cfg.Player.Health != def.Player.Health {
		t.Errorf("health = %d, expected %d", cfg.Player.Health, def.Player.Health)
	}
	if cfg.Weapons.HarpoonCooldown != def.Weapons.HarpoonCooldown {
		t.Errorf("harpoon cooldown = %v, expected %v", cfg.Weapons.HarpoonCooldown, def.Weapons.HarpoonCooldown)
	}
	if cfg.Stage.BaseQuota != def.Stage.BaseQuota || cfg.Stage.QuotaPerStage != def.Stage.QuotaPerStage {
		t.Errorf("stage quota = %d+%d, expected %d+%d",
			cfg.Stage.BaseQuota, cfg.Stage.QuotaPerStage, def.Stage.BaseQuota, def.Stage.QuotaPerStage)
	}
	if cfg.Scoring.HarpoonBase != def.Scoring.HarpoonBase {
		t.Errorf("harpoon base = %d, expected %d", cfg.Scoring.HarpoonBase, def.Scoring.HarpoonBase)
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("player:\n  health: 7\nwave:\n  wavelength: 300\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}
	if cfg.Player.Health != 7 {
		t.Errorf("health = %d, expected 7", cfg.Player.Health)
	}
	if cfg.Wave.Wavelength != 300 {
		t.Errorf("wavelength = %v, expected 300", cfg.Wave.Wavelength)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Load with missing custom path should return an error")
	}
}

func TestApplyPreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		health   int
		interval float64
	}{
		{DifficultyEasy, 5, 1.6},
		{DifficultyNormal, 3, 1.25},
		{DifficultyHard, 2, 1.0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := Default()
			ApplyPreset(&cfg, tc.preset)
			if cfg.Player.Health != tc.health {
				t.Errorf("health = %d, expected %d", cfg.Player.Health, tc.health)
			}
			if cfg.Enemies.SpawnInterval != tc.interval {
				t.Errorf("spawn interval = %v, expected %v", cfg.Enemies.SpawnInterval, tc.interval)
			}
		})
	}

	cfg := Default()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Stage.IntervalStep != 0 {
		t.Error("fixed preset should freeze the interval step")
	}
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		if !ValidPreset(p) {
			t.Errorf("ValidPreset(%q) should be true", p)
		}
	}
	if ValidPreset("nightmare") {
		t.Error("ValidPreset should reject unknown presets")
	}
}
