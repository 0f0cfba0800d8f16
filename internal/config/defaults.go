package config

import (
	_ "embed"
)

//go:embed defaults/realm.yaml
var defaultRealmYAML []byte

// DefaultRealmYAML returns the embedded default configuration, used by the
// `config` subcommand to print a starting point for customization.
func DefaultRealmYAML() []byte {
	return defaultRealmYAML
}

// DefaultConfig returns the default realm configuration. Values mirror
// defaults/realm.yaml and serve as a fallback if the embed fails to parse.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Size:     15,
			MaxLevel: 3,
		},
		Economy: EconomyConfig{
			InitialMoney:      1500,
			UpgradeMultiplier: 1.5,
			BulldozeFee:       20,
			TaxRate:           1.0,
		},
		Happiness: HappinessConfig{
			Baseline:         75,
			ManaPenalty:      40,
			EssencePenalty:   40,
			PollutionRadius:  3,
			PollutionPenalty: 30,
			BaseEffect:       0.2,
			ThrottledEffect:  0.1,
		},
		Clock: ClockConfig{
			TimeStep: 0.5,
			TickMS:   2500,
		},
		Coverage: CoverageConfig{
			Bonuses: map[string]CoverageBonus{
				"guards": {Present: 15, Absent: -20},
				"wards":  {Present: 15, Absent: -15},
				"wisdom": {Present: 20, Absent: 0},
				"nature": {Present: 20, Absent: 0},
				"sweets": {Present: 12, Absent: 0},
			},
		},
		Buildings: []Building{
			{ID: "road", Name: "Cobblestone Road", Description: "Connects the realm", Cost: 10},
			{ID: "cottage", Name: "Cottage", Description: "Houses villagers", Cost: 100,
				Maintenance: 1, PopGen: 5, ManaReq: 1, EssenceReq: 1, Residential: true},
			{ID: "tavern", Name: "Tavern", Description: "Earns gold", Cost: 250,
				Maintenance: 2, IncomeGen: 20, ManaReq: 2, EssenceReq: 1},
			{ID: "mine", Name: "Mine", Description: "Earns much gold, fouls the air", Cost: 500,
				Maintenance: 5, IncomeGen: 50, ManaReq: 5, EssenceReq: 3, Polluting: true},
			{ID: "lumber_mill", Name: "Lumber Mill", Description: "Steady income, noisy neighbour", Cost: 350,
				Maintenance: 3, IncomeGen: 30, ManaReq: 3, EssenceReq: 2, Polluting: true},
			{ID: "park", Name: "Enchanted Forest", Description: "Nature coverage", Cost: 150,
				Maintenance: 1, PopGen: 1, EssenceReq: 2, ServiceRadius: 3, Coverage: "nature"},
			{ID: "wizard_tower", Name: "Wizard Tower", Description: "Produces mana", Cost: 800,
				Maintenance: 8, IncomeGen: -20, EssenceReq: 2, ManaOutput: 120},
			{ID: "ancient_well", Name: "Ancient Well", Description: "Produces essence", Cost: 600,
				Maintenance: 6, IncomeGen: -15, ManaReq: 2, EssenceOutput: 100},
			{ID: "monolith", Name: "Great Monolith", Description: "High prestige", Cost: 2500,
				Maintenance: 10, IncomeGen: 100, ManaReq: 10, EssenceReq: 5},
			{ID: "guard_post", Name: "Guard Post", Description: "Security coverage", Cost: 400,
				Maintenance: 4, ManaReq: 2, EssenceReq: 1, ServiceRadius: 4, Coverage: "guards"},
			{ID: "mage_sanctum", Name: "Mage Sanctum", Description: "Magical ward coverage", Cost: 450,
				Maintenance: 4, ManaReq: 3, EssenceReq: 1, ServiceRadius: 4, Coverage: "wards"},
			{ID: "academy", Name: "Alchemy Academy", Description: "Wisdom coverage", Cost: 700,
				Maintenance: 5, ManaReq: 3, EssenceReq: 2, ServiceRadius: 5, Coverage: "wisdom"},
			{ID: "bakery", Name: "Bakery", Description: "Sweet-smelling streets", Cost: 200,
				Maintenance: 2, IncomeGen: 10, ManaReq: 1, EssenceReq: 1, ServiceRadius: 2, Coverage: "sweets"},
		},
	}
}
