package sim

import "math"

// Tick advances the city by one simulated step. It is a pure function:
// the input grid and stats are not mutated, and the same inputs always
// produce the same outputs. Ticks never change what is built, only the
// operating state of each tile and the city-wide aggregates.
func Tick(g Grid, stats CityStats, cat *Catalog, tun Tuning) (Grid, CityStats) {
	coverage := ComputeCoverage(g, cat)
	alloc := Allocate(g, cat)

	var (
		incomeTotal          float64
		maintenanceTotal     int
		popGrowth            float64
		residentialHappiness int
		residentialCount     int
	)

	newGrid := g.Clone()
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			tile := g.Tiles[y][x]

			if !tile.Occupied() {
				// Empty ground and roads are always content and fully supplied.
				newGrid.Tiles[y][x].Happiness = 100
				newGrid.Tiles[y][x].HasMana = true
				newGrid.Tiles[y][x].HasEssence = true
				newGrid.Tiles[y][x].Coverage = coverage.TileFlags(x, y)
				continue
			}

			spec, _ := cat.Spec(tile.Building)
			maintenanceTotal += spec.Maintenance * tile.Level

			hasMana := alloc.HasMana[y][x]
			hasEssence := alloc.HasEssence[y][x]
			score := ScoreTile(g, tile, coverage, hasMana, hasEssence, cat, tun)

			incomeTotal += score.Income
			popGrowth += score.PopGrowth
			if spec.Residential {
				residentialCount++
				residentialHappiness += score.Happiness
			}

			newGrid.Tiles[y][x].HasMana = hasMana
			newGrid.Tiles[y][x].HasEssence = hasEssence
			newGrid.Tiles[y][x].Coverage = coverage.TileFlags(x, y)
			newGrid.Tiles[y][x].Happiness = score.Happiness
		}
	}

	// Average happiness counts residential tiles only; a city with no
	// residents reports 100.
	avgHappiness := 100
	if residentialCount > 0 {
		avgHappiness = residentialHappiness / residentialCount
	}

	taxedIncome := incomeTotal * stats.TaxRate

	newStats := stats
	// Treasury may go negative on a bad tick: debt is allowed, only
	// demolition fees floor at zero.
	newStats.Money = stats.Money + int(math.Floor(taxedIncome-float64(maintenanceTotal)))
	newStats.Population = max(0, stats.Population+int(math.Floor(popGrowth)))
	newStats.Happiness = avgHappiness
	newStats.ManaSupply = alloc.ManaSupply
	newStats.EssenceSupply = alloc.EssenceSupply
	newStats.ManaUsage = alloc.ManaUsed
	newStats.EssenceUsage = alloc.EssenceUsed
	newStats.IncomeTotal = int(math.Floor(taxedIncome))
	newStats.MaintenanceTotal = maintenanceTotal
	newStats.Day = stats.Day + 1
	newStats.Time = math.Mod(stats.Time+tun.TimeStep, 24)

	return newGrid, newStats
}
