// Package config provides YAML-based configuration loading for the
// gridrealm simulation: the building catalog, the economy and happiness
// tuning knobs, and the simulation clock.
package config

// Config contains all tunable parameters for a gridrealm city.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Economy   EconomyConfig   `yaml:"economy"`
	Happiness HappinessConfig `yaml:"happiness"`
	Clock     ClockConfig     `yaml:"clock"`
	Coverage  CoverageConfig  `yaml:"coverage"`
	Buildings []Building      `yaml:"buildings"`
}

// GridConfig defines the playing field dimensions and level cap.
type GridConfig struct {
	Size     int `yaml:"size"`      // Grid is Size x Size tiles
	MaxLevel int `yaml:"max_level"` // Upgrade ceiling for every building
}

// EconomyConfig defines treasury-related tuning.
type EconomyConfig struct {
	InitialMoney      int     `yaml:"initial_money"`
	UpgradeMultiplier float64 `yaml:"upgrade_multiplier"` // Upgrade cost = floor(base * level * multiplier)
	BulldozeFee       int     `yaml:"bulldoze_fee"`
	TaxRate           float64 `yaml:"tax_rate"` // Scales gross income during the tick
}

// HappinessConfig defines the per-tile happiness scoring parameters.
type HappinessConfig struct {
	Baseline         int     `yaml:"baseline"`
	ManaPenalty      int     `yaml:"mana_penalty"`
	EssencePenalty   int     `yaml:"essence_penalty"`
	PollutionRadius  int     `yaml:"pollution_radius"`
	PollutionPenalty int     `yaml:"pollution_penalty"`
	BaseEffect       float64 `yaml:"base_effectiveness"`      // Effectiveness floor when utilities are satisfied
	ThrottledEffect  float64 `yaml:"throttled_effectiveness"` // Effectiveness when a utility is missing
}

// ClockConfig defines the simulated clock and tick cadence.
type ClockConfig struct {
	TimeStep float64 `yaml:"time_step"` // Hours added to the in-game clock per tick
	TickMS   int     `yaml:"tick_ms"`   // Wall-clock milliseconds between ticks
}

// CoverageBonus defines the happiness delta for one coverage category.
// Present is added when a residential tile is covered; Absent is added
// (usually negative or zero) when it is not.
type CoverageBonus struct {
	Present int `yaml:"present"`
	Absent  int `yaml:"absent"`
}

// CoverageConfig maps coverage category names to their happiness deltas.
// Categories are configuration-driven so new service buildings can add
// a category without engine changes.
type CoverageConfig struct {
	Bonuses map[string]CoverageBonus `yaml:"bonuses"`
}

// Building defines the catalog entry for a single building type.
type Building struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Description   string `yaml:"description"`
	Cost          int    `yaml:"cost"`
	Maintenance   int    `yaml:"maintenance"` // Per level, per tick
	PopGen        int    `yaml:"pop_gen"`     // Population generated per level per tick
	IncomeGen     int    `yaml:"income_gen"`  // Income generated per level per tick
	ManaReq       int    `yaml:"mana_req"`    // Mana consumed per level
	EssenceReq    int    `yaml:"essence_req"` // Essence consumed per level
	ManaOutput    int    `yaml:"mana_output"` // Mana produced per level (utility buildings)
	EssenceOutput int    `yaml:"essence_output"`
	ServiceRadius int    `yaml:"service_radius"` // 0 = no coverage emitted
	Coverage      string `yaml:"coverage"`       // Coverage category emitted, "" = none
	Polluting     bool   `yaml:"polluting"`
	Residential   bool   `yaml:"residential"`
}
