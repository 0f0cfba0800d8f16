package sim

import "github.com/quintrel/gridrealm/internal/core"

// CoverageMaps holds one boolean map per coverage category, with the same
// dimensions as the grid. Coverage is binary: a tile is covered by a
// category if any emitter of that category reaches it.
type CoverageMaps struct {
	size int
	cats map[string][][]bool
}

// Covered reports whether (x, y) is covered for the given category.
// Unknown categories are never covered.
func (m CoverageMaps) Covered(cat string, x, y int) bool {
	grid, ok := m.cats[cat]
	if !ok {
		return false
	}
	return grid[y][x]
}

// TileFlags returns the coverage flags at (x, y) as a category->bool map,
// for storing on the tile. Returns nil if no categories are configured.
func (m CoverageMaps) TileFlags(x, y int) map[string]bool {
	if len(m.cats) == 0 {
		return nil
	}
	flags := make(map[string]bool, len(m.cats))
	for cat, grid := range m.cats {
		flags[cat] = grid[y][x]
	}
	return flags
}

// ComputeCoverage calculates service coverage for every tile. For each
// building with a service radius, the effective radius grows by one per
// level above 1 and covers every tile within Euclidean distance of it.
// Multiple emitters OR together; there is no decay with distance.
//
// The pass is read-only and idempotent: calling it twice on the same grid
// yields identical maps.
func ComputeCoverage(g Grid, cat *Catalog) CoverageMaps {
	maps := CoverageMaps{
		size: g.Size,
		cats: make(map[string][][]bool),
	}
	for _, c := range cat.Categories() {
		rows := make([][]bool, g.Size)
		for y := range rows {
			rows[y] = make([]bool, g.Size)
		}
		maps.cats[c] = rows
	}

	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			tile := g.Tiles[y][x]
			spec, ok := cat.Spec(tile.Building)
			if !ok || spec.ServiceRadius == 0 {
				continue
			}
			radius := spec.ServiceRadius + (tile.Level - 1)
			markCoverage(maps.cats[spec.Coverage], g.Size, x, y, radius)
		}
	}
	return maps
}

// markCoverage sets every in-bounds cell within radius of (cx, cy).
func markCoverage(grid [][]bool, size, cx, cy, radius int) {
	center := core.Point{X: cx, Y: cy}
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			nx, ny := cx+dx, cy+dy
			if nx < 0 || nx >= size || ny < 0 || ny >= size {
				continue
			}
			if core.Dist2(center, core.Point{X: nx, Y: ny}) <= radius*radius {
				grid[ny][nx] = true
			}
		}
	}
}
