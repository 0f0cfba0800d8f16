package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the realm configuration.
// Search order: customPath -> ~/.gridrealm/configs/realm.yaml -> ./configs/realm.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := Validate(cfg); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("realm.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/realm.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && Validate(cfg) == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultRealmYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridrealm", "configs", filename)
}

// Validate checks structural constraints a custom config must satisfy.
// Tuning values themselves are free to vary; the checks below guard
// contract violations the engine cannot recover from.
func Validate(cfg Config) error {
	if cfg.Grid.Size < 2 {
		return fmt.Errorf("grid.size must be at least 2, got %d", cfg.Grid.Size)
	}
	if cfg.Grid.MaxLevel < 1 {
		return fmt.Errorf("grid.max_level must be at least 1, got %d", cfg.Grid.MaxLevel)
	}
	if len(cfg.Buildings) == 0 {
		return fmt.Errorf("buildings list is empty")
	}

	seen := make(map[string]bool, len(cfg.Buildings))
	for _, b := range cfg.Buildings {
		if b.ID == "" {
			return fmt.Errorf("building with empty id")
		}
		if seen[b.ID] {
			return fmt.Errorf("duplicate building id %q", b.ID)
		}
		seen[b.ID] = true
		if b.Cost < 0 {
			return fmt.Errorf("building %q has negative cost", b.ID)
		}
		if b.ServiceRadius > 0 && b.Coverage == "" {
			return fmt.Errorf("building %q has a service radius but no coverage category", b.ID)
		}
		if b.Coverage != "" {
			if _, ok := cfg.Coverage.Bonuses[b.Coverage]; !ok {
				return fmt.Errorf("building %q emits unknown coverage category %q", b.ID, b.Coverage)
			}
		}
	}
	return nil
}
