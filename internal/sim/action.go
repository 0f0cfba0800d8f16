package sim

import (
	"fmt"
	"math"
)

// ActionKind is a discrete player intent against a single tile.
type ActionKind string

const (
	ActionBuild    ActionKind = "build"
	ActionUpgrade  ActionKind = "upgrade"
	ActionBulldoze ActionKind = "bulldoze"
)

// Action is one build/upgrade/bulldoze request at (X, Y).
// Building is only consulted for ActionBuild.
type Action struct {
	Kind     ActionKind
	X, Y     int
	Building BuildingType
}

// Severity classifies an action outcome for the presentation layer.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityNegative Severity = "negative"
	SeverityNeutral  Severity = "neutral"
)

// FailureCode enumerates the expected, recoverable action failures.
// All of them leave the grid and stats untouched.
type FailureCode string

const (
	FailNone              FailureCode = ""
	FailAlreadyOccupied   FailureCode = "already_occupied"
	FailInsufficientFunds FailureCode = "insufficient_funds"
	FailNotUpgradable     FailureCode = "not_upgradable"
	FailMaxLevelReached   FailureCode = "max_level_reached"
	FailAlreadyEmpty      FailureCode = "already_empty"
	FailUnknownBuilding   FailureCode = "unknown_building"
)

// ActionResponse carries the outcome of an action. On failure Grid and
// Stats are the unchanged inputs. Building and Level describe the affected
// tile after the action, for feedback layers (sound, news).
type ActionResponse struct {
	Grid     Grid
	Stats    CityStats
	Success  bool
	Code     FailureCode
	Severity Severity
	Message  string
	Building BuildingType
	Level    int
}

// Apply validates and executes one action against the current snapshot.
// It performs no I/O and triggers no side effects; callers react to the
// response.
func Apply(g Grid, stats CityStats, cat *Catalog, tun Tuning, a Action) ActionResponse {
	switch a.Kind {
	case ActionUpgrade:
		return upgradeTile(g, stats, cat, tun, a.X, a.Y)
	case ActionBulldoze:
		return bulldozeTile(g, stats, tun, a.X, a.Y)
	default:
		return buildTile(g, stats, cat, a.X, a.Y, a.Building)
	}
}

// UpgradeCost returns the treasury cost of raising a building from the
// given level. The multiplier applies to the current level, so each tier
// is more expensive than the last.
func UpgradeCost(spec BuildingSpec, level int, multiplier float64) int {
	return int(math.Floor(float64(spec.Cost) * float64(level) * multiplier))
}

func buildTile(g Grid, stats CityStats, cat *Catalog, x, y int, building BuildingType) ActionResponse {
	fail := func(code FailureCode, sev Severity, msg string) ActionResponse {
		return ActionResponse{Grid: g, Stats: stats, Code: code, Severity: sev, Message: msg,
			Building: g.At(x, y).Building, Level: g.At(x, y).Level}
	}

	spec, ok := cat.Spec(building)
	if !ok {
		return fail(FailUnknownBuilding, SeverityNegative, fmt.Sprintf("No such structure: %s.", building))
	}
	tile := g.At(x, y)
	if tile.Building != BuildingNone {
		return fail(FailAlreadyOccupied, SeverityNeutral, "That land is already occupied.")
	}
	if stats.Money < spec.Cost {
		return fail(FailInsufficientFunds, SeverityNegative,
			fmt.Sprintf("The treasury needs %dg to establish this %s.", spec.Cost, spec.Name))
	}

	newGrid := g.Clone()
	newGrid.Tiles[y][x].Building = building
	newGrid.Tiles[y][x].Level = 1

	newStats := stats
	newStats.Money -= spec.Cost

	return ActionResponse{
		Grid: newGrid, Stats: newStats, Success: true,
		Severity: SeverityPositive,
		Message:  fmt.Sprintf("Established %s.", spec.Name),
		Building: building, Level: 1,
	}
}

func upgradeTile(g Grid, stats CityStats, cat *Catalog, tun Tuning, x, y int) ActionResponse {
	tile := g.At(x, y)
	fail := func(code FailureCode, sev Severity, msg string) ActionResponse {
		return ActionResponse{Grid: g, Stats: stats, Code: code, Severity: sev, Message: msg,
			Building: tile.Building, Level: tile.Level}
	}

	if !tile.Occupied() {
		return fail(FailNotUpgradable, SeverityNeutral, "Only structures can be enhanced.")
	}
	if tile.Level >= tun.MaxLevel {
		return fail(FailMaxLevelReached, SeverityNeutral, "Structure is already at max resonance.")
	}

	spec, _ := cat.Spec(tile.Building)
	cost := UpgradeCost(spec, tile.Level, tun.UpgradeMultiplier)
	if stats.Money < cost {
		return fail(FailInsufficientFunds, SeverityNegative,
			fmt.Sprintf("The treasury lacks the %dg required for this rite.", cost))
	}

	newGrid := g.Clone()
	newGrid.Tiles[y][x].Level = tile.Level + 1

	newStats := stats
	newStats.Money -= cost

	return ActionResponse{
		Grid: newGrid, Stats: newStats, Success: true,
		Severity: SeverityPositive,
		Message:  fmt.Sprintf("%s enhanced to tier %d.", spec.Name, tile.Level+1),
		Building: tile.Building, Level: tile.Level + 1,
	}
}

func bulldozeTile(g Grid, stats CityStats, tun Tuning, x, y int) ActionResponse {
	tile := g.At(x, y)
	if tile.Building == BuildingNone {
		return ActionResponse{Grid: g, Stats: stats, Code: FailAlreadyEmpty,
			Severity: SeverityNeutral, Message: "The land is already clear.",
			Building: tile.Building, Level: tile.Level}
	}

	newGrid := g.Clone()
	newGrid.Tiles[y][x].Building = BuildingNone
	newGrid.Tiles[y][x].Level = 1

	newStats := stats
	// Demolition fee floors at zero; the treasury never goes negative here.
	newStats.Money = max(0, stats.Money-tun.BulldozeFee)

	return ActionResponse{
		Grid: newGrid, Stats: newStats, Success: true,
		Severity: SeverityNeutral,
		Message:  "Tile cleared by royal decree.",
		Building: tile.Building, Level: tile.Level,
	}
}
