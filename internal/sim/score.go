package sim

import "github.com/quintrel/gridrealm/internal/core"

// TileScore is the per-tile outcome of the happiness and output pass.
type TileScore struct {
	Happiness int
	Income    float64
	PopGrowth float64
}

// ScoreTile combines utility satisfaction, service coverage and industrial
// proximity into a 0-100 happiness value, then derives the tile's economic
// output from it.
//
// Coverage deltas apply to residential tiles only: essential categories
// carry a malus when absent, quality categories only a bonus when present
// (both expressed through the configured Present/Absent pair). Output is a
// linear blend of happiness when both utilities are satisfied, and
// collapses to a small floor when either is missing - buildings never
// produce zero, but are heavily throttled.
func ScoreTile(g Grid, tile Tile, cov CoverageMaps, hasMana, hasEssence bool, cat *Catalog, tun Tuning) TileScore {
	spec, ok := cat.Spec(tile.Building)
	if !ok {
		return TileScore{Happiness: 100}
	}

	happiness := tun.Baseline
	if !hasMana {
		happiness -= tun.ManaPenalty
	}
	if !hasEssence {
		happiness -= tun.EssencePenalty
	}

	if spec.Residential {
		for category, bonus := range tun.CoverageBonuses {
			if cov.Covered(category, tile.X, tile.Y) {
				happiness += bonus.Present
			} else {
				happiness += bonus.Absent
			}
		}
		if pollutionNearby(g, tile.X, tile.Y, tun.PollutionRadius, cat) {
			happiness -= tun.PollutionPenalty
		}
	}

	happiness = core.Clamp(happiness, 0, 100)

	effectiveness := tun.ThrottledEffect
	if hasMana && hasEssence {
		effectiveness = tun.BaseEffect + float64(happiness)/100*(1-tun.BaseEffect)
	}

	return TileScore{
		Happiness: happiness,
		Income:    float64(spec.IncomeGen*tile.Level) * effectiveness,
		PopGrowth: float64(spec.PopGen*tile.Level) * effectiveness,
	}
}

// pollutionNearby reports whether any polluting building sits within the
// square window of the given radius around (x, y). This is a pure
// existence check with no distance weighting.
func pollutionNearby(g Grid, x, y, radius int, cat *Catalog) bool {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := x+dx, y+dy
			if !g.InBounds(nx, ny) {
				continue
			}
			if spec, ok := cat.Spec(g.Tiles[ny][nx].Building); ok && spec.Polluting {
				return true
			}
		}
	}
	return false
}
