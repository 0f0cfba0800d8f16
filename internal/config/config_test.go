package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigMatchesEmbeddedYAML(t *testing.T) {
	// The embedded YAML is the source of truth; the hardcoded fallback
	// must agree with it on the engine-critical numbers.
	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	hard := DefaultConfig()

	if loaded.Grid != hard.Grid {
		t.Errorf("grid mismatch: yaml=%+v hardcoded=%+v", loaded.Grid, hard.Grid)
	}
	if loaded.Economy != hard.Economy {
		t.Errorf("economy mismatch: yaml=%+v hardcoded=%+v", loaded.Economy, hard.Economy)
	}
	if loaded.Happiness != hard.Happiness {
		t.Errorf("happiness mismatch: yaml=%+v hardcoded=%+v", loaded.Happiness, hard.Happiness)
	}
	if loaded.Clock != hard.Clock {
		t.Errorf("clock mismatch: yaml=%+v hardcoded=%+v", loaded.Clock, hard.Clock)
	}
	if len(loaded.Buildings) != len(hard.Buildings) {
		t.Errorf("building count mismatch: yaml=%d hardcoded=%d", len(loaded.Buildings), len(hard.Buildings))
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "realm.yaml")
	if err := os.WriteFile(path, DefaultRealmYAML(), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Grid.Size != 15 {
		t.Errorf("grid size = %d, want 15", cfg.Grid.Size)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadInvalidCustomConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "realm.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  size: 1\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected validation error for 1x1 grid")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "default is valid",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "tiny grid",
			mutate:  func(c *Config) { c.Grid.Size = 1 },
			wantErr: true,
		},
		{
			name:    "zero max level",
			mutate:  func(c *Config) { c.Grid.MaxLevel = 0 },
			wantErr: true,
		},
		{
			name:    "no buildings",
			mutate:  func(c *Config) { c.Buildings = nil },
			wantErr: true,
		},
		{
			name:    "duplicate building id",
			mutate:  func(c *Config) { c.Buildings = append(c.Buildings, c.Buildings[0]) },
			wantErr: true,
		},
		{
			name:    "negative cost",
			mutate:  func(c *Config) { c.Buildings[0].Cost = -10 },
			wantErr: true,
		},
		{
			name: "radius without category",
			mutate: func(c *Config) {
				c.Buildings[0].ServiceRadius = 3
				c.Buildings[0].Coverage = ""
			},
			wantErr: true,
		},
		{
			name:    "unknown coverage category",
			mutate:  func(c *Config) { c.Buildings[0].Coverage = "dragons" },
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := Validate(cfg)
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
