package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "seed.yaml"

// LoadSeed loads the simulation tuning.
// Search order: customPath -> ~/.seed/configs/seed.yaml -> ./configs/seed.yaml -> embedded default.
// Files are layered over the defaults, so a partial file only overrides the
// keys it names. The result is validated.
func LoadSeed(customPath string) (SeedConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (SeedConfig, error) {
	cfg := DefaultSeedConfig()

	// Custom path errors are fatal; the user asked for that file.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(ConfigFile), filepath.Join("configs", ConfigFile)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		layered := DefaultSeedConfig()
		if err := yaml.Unmarshal(data, &layered); err == nil {
			return layered, nil
		}
	}

	if err := yaml.Unmarshal(defaultSeedYAML, &cfg); err != nil {
		return DefaultSeedConfig(), nil
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is
// unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".seed", "configs", filename)
}
