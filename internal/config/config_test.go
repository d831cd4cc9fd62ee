package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	var cfg SeedConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSeedConfig() {
		t.Errorf("embedded YAML and DefaultSeedConfig differ:\n%+v\n%+v", cfg, DefaultSeedConfig())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := DefaultSeedConfig().Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SeedConfig)
	}{
		{"zero G", func(c *SeedConfig) { c.World.G = 0 }},
		{"negative width", func(c *SeedConfig) { c.World.Width = -1 }},
		{"massless origin", func(c *SeedConfig) { c.Origin.Mass = 0 }},
		{"pointlike destination", func(c *SeedConfig) { c.Destination.Radius = 0 }},
		{"overlapping bodies", func(c *SeedConfig) { c.Destination.X = c.Origin.X + 5 }},
		{"zero impulse", func(c *SeedConfig) { c.Thrust.Impulse = 0 }},
		{"negative cooldown", func(c *SeedConfig) { c.Thrust.CooldownMs = -1 }},
		{"zero tick cap", func(c *SeedConfig) { c.Rules.MaxTickMs = 0 }},
		{"zero grace", func(c *SeedConfig) { c.Rules.UnboundGraceMs = 0 }},
		{"massless player", func(c *SeedConfig) { c.Player.Mass = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSeedConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadSeedCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("thrust:\n  impulse: 9\nrules:\n  unbound_grace_ms: 4000\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSeed(path)
	if err != nil {
		t.Fatalf("LoadSeed() failed: %v", err)
	}
	if cfg.Thrust.Impulse != 9 || cfg.Rules.UnboundGraceMs != 4000 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Thrust.CooldownMs != 180 || cfg.World.G != 120 {
		t.Errorf("unspecified keys should keep defaults: %+v", cfg)
	}
}

func TestLoadSeedCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSeed(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSeed(bad); err == nil {
		t.Error("expected error for malformed custom config")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  g: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSeed(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoadSeedLocalDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", ConfigFile), []byte("thrust:\n  cooldown_ms: 90\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed() failed: %v", err)
	}
	if cfg.Thrust.CooldownMs != 90 {
		t.Errorf("expected local config to apply, got cooldown %v", cfg.Thrust.CooldownMs)
	}
}

func TestLoadSeedEmbedded(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	cfg, err := LoadSeed("")
	if err != nil {
		t.Fatalf("LoadSeed() failed: %v", err)
	}
	if cfg != DefaultSeedConfig() {
		t.Errorf("expected embedded defaults, got %+v", cfg)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		grace    float64
		cooldown float64
		impulse  float64
	}{
		{DifficultyEasy, 5000, 120, 7},
		{DifficultyNormal, 3000, 180, 6},
		{DifficultyHard, 2000, 250, 5},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultSeedConfig()
			ApplySeedPreset(&cfg, tt.preset)
			if cfg.Rules.UnboundGraceMs != tt.grace || cfg.Thrust.CooldownMs != tt.cooldown || cfg.Thrust.Impulse != tt.impulse {
				t.Errorf("unexpected tuning: %+v %+v", cfg.Rules, cfg.Thrust)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset should stay valid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("empty name should mean normal, got %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("expected hard, got %q, %v", p, err)
	}
	if _, err := ParsePreset("nightmare"); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}
