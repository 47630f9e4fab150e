package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// userDir is the dot-directory that holds user-level overrides.
const userDir = ".arcade-hall"

// load resolves a game config through the standard search order:
// custom path -> ~/.arcade-hall/configs/<name>.yaml -> ./configs/<name>.yaml
// -> embedded default -> hardcoded fallback. Only an explicit custom
// path surfaces read/parse errors; the implicit locations fall through.
func load[T any](name, customPath string, embedded []byte, fallback T) (T, error) {
	var cfg T

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

	filename := name + ".yaml"
	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback, nil
	}
	return cfg, nil
}

// userConfigPath returns the user override path for a config file, or
// empty when the home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, userDir, "configs", filename)
}

// LoadRumble loads Rocket Rumble tuning.
func LoadRumble(customPath string) (RumbleConfig, error) {
	return load("rumble", customPath, defaultRumbleYAML, DefaultRumbleConfig())
}

// LoadHeist loads Pixel Heist tuning.
func LoadHeist(customPath string) (HeistConfig, error) {
	return load("heist", customPath, defaultHeistYAML, DefaultHeistConfig())
}

// LoadBrawl loads Button Brawl tuning.
func LoadBrawl(customPath string) (BrawlConfig, error) {
	return load("brawl", customPath, defaultBrawlYAML, DefaultBrawlConfig())
}

// LoadRally loads Midnight Rally tuning.
func LoadRally(customPath string) (RallyConfig, error) {
	return load("rally", customPath, defaultRallyYAML, DefaultRallyConfig())
}
