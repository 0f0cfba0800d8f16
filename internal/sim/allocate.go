package sim

// Allocation is the result of distributing the two utilities across the
// grid for one tick.
type Allocation struct {
	ManaSupply    int
	EssenceSupply int
	ManaUsed      int
	EssenceUsed   int
	// HasMana[y][x] / HasEssence[y][x] record per-tile satisfaction.
	// Empty and road tiles consume nothing and are always satisfied.
	HasMana    [][]bool
	HasEssence [][]bool
}

// Allocate computes total utility supply and then grants consumption
// tile-by-tile in row-major order. A tile is granted a utility only if the
// cumulative demand so far plus its own requirement fits within supply;
// denied tiles do not consume, so the allocator never over-commits.
//
// Row-major order privileges earlier tiles when supply is scarce. That is
// a deliberate simplification inherited from the design, not a fairness
// guarantee; changing the order would change which tiles brown out.
func Allocate(g Grid, cat *Catalog) Allocation {
	a := Allocation{
		HasMana:    make([][]bool, g.Size),
		HasEssence: make([][]bool, g.Size),
	}
	for y := range a.HasMana {
		a.HasMana[y] = make([]bool, g.Size)
		a.HasEssence[y] = make([]bool, g.Size)
	}

	// Supply pass: sum producer output scaled by level.
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			tile := g.Tiles[y][x]
			spec, ok := cat.Spec(tile.Building)
			if !ok {
				continue
			}
			a.ManaSupply += spec.ManaOutput * tile.Level
			a.EssenceSupply += spec.EssenceOutput * tile.Level
		}
	}

	// Consumption pass: greedy, order-sensitive, non-reversible.
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			tile := g.Tiles[y][x]
			if !tile.Occupied() {
				a.HasMana[y][x] = true
				a.HasEssence[y][x] = true
				continue
			}
			spec, ok := cat.Spec(tile.Building)
			if !ok {
				continue
			}

			manaReq := spec.ManaReq * tile.Level
			essenceReq := spec.EssenceReq * tile.Level

			if a.ManaUsed+manaReq <= a.ManaSupply {
				a.ManaUsed += manaReq
				a.HasMana[y][x] = true
			}
			if a.EssenceUsed+essenceReq <= a.EssenceSupply {
				a.EssenceUsed += essenceReq
				a.HasEssence[y][x] = true
			}
		}
	}
	return a
}
