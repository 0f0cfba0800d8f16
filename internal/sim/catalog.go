// Package sim implements the tick-based city simulation engine: coverage
// propagation, utility allocation, happiness scoring, the tick orchestrator,
// and the build/upgrade/bulldoze action engine. All entry points are pure
// functions over a grid+stats snapshot; callers own serialization of access.
package sim

import (
	"fmt"

	"github.com/quintrel/gridrealm/internal/config"
)

// BuildingType identifies what occupies a tile.
type BuildingType string

const (
	BuildingNone        BuildingType = "none"
	BuildingRoad        BuildingType = "road"
	BuildingCottage     BuildingType = "cottage"
	BuildingTavern      BuildingType = "tavern"
	BuildingMine        BuildingType = "mine"
	BuildingLumberMill  BuildingType = "lumber_mill"
	BuildingPark        BuildingType = "park"
	BuildingWizardTower BuildingType = "wizard_tower"
	BuildingAncientWell BuildingType = "ancient_well"
	BuildingMonolith    BuildingType = "monolith"
	BuildingGuardPost   BuildingType = "guard_post"
	BuildingMageSanctum BuildingType = "mage_sanctum"
	BuildingAcademy     BuildingType = "academy"
	BuildingBakery      BuildingType = "bakery"
)

// knownTypes is the closed set of building types the engine understands.
// The catalog is configuration-driven for tuning values, but an id outside
// this set is a config error, not a new building.
var knownTypes = map[BuildingType]bool{
	BuildingRoad:        true,
	BuildingCottage:     true,
	BuildingTavern:      true,
	BuildingMine:        true,
	BuildingLumberMill:  true,
	BuildingPark:        true,
	BuildingWizardTower: true,
	BuildingAncientWell: true,
	BuildingMonolith:    true,
	BuildingGuardPost:   true,
	BuildingMageSanctum: true,
	BuildingAcademy:     true,
	BuildingBakery:      true,
}

// BuildingSpec is the immutable catalog entry for one building type.
type BuildingSpec struct {
	Type          BuildingType
	Name          string
	Description   string
	Cost          int
	Maintenance   int // Per level, per tick
	PopGen        int // Population generated per level per tick
	IncomeGen     int // Income generated per level per tick
	ManaReq       int
	EssenceReq    int
	ManaOutput    int // Per level, utility producers only
	EssenceOutput int
	ServiceRadius int    // 0 = emits no coverage
	Coverage      string // Coverage category emitted
	Polluting     bool
	Residential   bool
}

// IsUtility reports whether this building produces mana or essence.
func (s BuildingSpec) IsUtility() bool {
	return s.ManaOutput > 0 || s.EssenceOutput > 0
}

// Catalog holds the building specs for a session, keyed by type.
// Constructed once from config at startup and shared read-only.
type Catalog struct {
	specs map[BuildingType]BuildingSpec
	order []BuildingType // config order, used for tool palettes
}

// NewCatalog builds a catalog from config entries.
// Returns an error for ids outside the closed building-type set.
func NewCatalog(buildings []config.Building) (*Catalog, error) {
	c := &Catalog{
		specs: make(map[BuildingType]BuildingSpec, len(buildings)),
	}
	for _, b := range buildings {
		t := BuildingType(b.ID)
		if !knownTypes[t] {
			return nil, fmt.Errorf("catalog: unknown building id %q", b.ID)
		}
		if _, dup := c.specs[t]; dup {
			return nil, fmt.Errorf("catalog: duplicate building id %q", b.ID)
		}
		c.specs[t] = BuildingSpec{
			Type:          t,
			Name:          b.Name,
			Description:   b.Description,
			Cost:          b.Cost,
			Maintenance:   b.Maintenance,
			PopGen:        b.PopGen,
			IncomeGen:     b.IncomeGen,
			ManaReq:       b.ManaReq,
			EssenceReq:    b.EssenceReq,
			ManaOutput:    b.ManaOutput,
			EssenceOutput: b.EssenceOutput,
			ServiceRadius: b.ServiceRadius,
			Coverage:      b.Coverage,
			Polluting:     b.Polluting,
			Residential:   b.Residential,
		}
		c.order = append(c.order, t)
	}
	return c, nil
}

// Spec returns the catalog entry for a building type.
// Empty tiles have no spec; the second return is false for BuildingNone
// and any type missing from the config.
func (c *Catalog) Spec(t BuildingType) (BuildingSpec, bool) {
	s, ok := c.specs[t]
	return s, ok
}

// Buildable returns all specs in config order, for tool palettes.
func (c *Catalog) Buildable() []BuildingSpec {
	out := make([]BuildingSpec, 0, len(c.order))
	for _, t := range c.order {
		out = append(out, c.specs[t])
	}
	return out
}

// Categories returns the coverage categories emitted by at least one
// building, in config order without duplicates.
func (c *Catalog) Categories() []string {
	var cats []string
	seen := make(map[string]bool)
	for _, t := range c.order {
		cov := c.specs[t].Coverage
		if cov != "" && !seen[cov] {
			seen[cov] = true
			cats = append(cats, cov)
		}
	}
	return cats
}

// CoverageBonus is the happiness delta pair for one coverage category.
type CoverageBonus struct {
	Present int
	Absent  int
}

// Tuning carries the numeric policy of the simulation, flattened from
// config so engine functions do not reach into config structs per tile.
type Tuning struct {
	MaxLevel          int
	UpgradeMultiplier float64
	BulldozeFee       int
	Baseline          int
	ManaPenalty       int
	EssencePenalty    int
	PollutionRadius   int
	PollutionPenalty  int
	BaseEffect        float64
	ThrottledEffect   float64
	TimeStep          float64
	CoverageBonuses   map[string]CoverageBonus
}

// TuningFromConfig flattens a loaded config into engine tuning.
func TuningFromConfig(cfg config.Config) Tuning {
	bonuses := make(map[string]CoverageBonus, len(cfg.Coverage.Bonuses))
	for cat, b := range cfg.Coverage.Bonuses {
		bonuses[cat] = CoverageBonus{Present: b.Present, Absent: b.Absent}
	}
	return Tuning{
		MaxLevel:          cfg.Grid.MaxLevel,
		UpgradeMultiplier: cfg.Economy.UpgradeMultiplier,
		BulldozeFee:       cfg.Economy.BulldozeFee,
		Baseline:          cfg.Happiness.Baseline,
		ManaPenalty:       cfg.Happiness.ManaPenalty,
		EssencePenalty:    cfg.Happiness.EssencePenalty,
		PollutionRadius:   cfg.Happiness.PollutionRadius,
		PollutionPenalty:  cfg.Happiness.PollutionPenalty,
		BaseEffect:        cfg.Happiness.BaseEffect,
		ThrottledEffect:   cfg.Happiness.ThrottledEffect,
		TimeStep:          cfg.Clock.TimeStep,
		CoverageBonuses:   bonuses,
	}
}
