package sim

// Weather is set by external command (session or advisor), never by the tick.
type Weather string

const (
	WeatherClear Weather = "clear"
	WeatherRain  Weather = "rain"
	WeatherStorm Weather = "storm"
)

// Tile is one cell of the city grid. Position is fixed at grid creation;
// building type and level change only through the action engine; the
// remaining fields are recomputed every tick.
type Tile struct {
	X          int             `json:"x"`
	Y          int             `json:"y"`
	Building   BuildingType    `json:"building"`
	Level      int             `json:"level"`
	HasMana    bool            `json:"hasMana"`
	HasEssence bool            `json:"hasEssence"`
	Coverage   map[string]bool `json:"coverage,omitempty"`
	Happiness  int             `json:"happiness"`
}

// Occupied reports whether the tile hosts a leveled structure
// (anything but empty ground or a road).
func (t Tile) Occupied() bool {
	return t.Building != BuildingNone && t.Building != BuildingRoad
}

// Grid is the fixed-size square field of tiles. Dimensions never change
// for the life of a session.
type Grid struct {
	Size  int      `json:"size"`
	Tiles [][]Tile `json:"tiles"` // Tiles[y][x]
}

// NewGrid creates an all-empty grid: every tile level 1, fully supplied,
// happiness 100.
func NewGrid(size int) Grid {
	tiles := make([][]Tile, size)
	for y := range tiles {
		row := make([]Tile, size)
		for x := range row {
			row[x] = Tile{
				X:          x,
				Y:          y,
				Building:   BuildingNone,
				Level:      1,
				HasMana:    true,
				HasEssence: true,
				Happiness:  100,
			}
		}
		tiles[y] = row
	}
	return Grid{Size: size, Tiles: tiles}
}

// InBounds reports whether (x, y) lies on the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Size && y >= 0 && y < g.Size
}

// At returns the tile at (x, y). Callers must bounds-check first.
func (g Grid) At(x, y int) Tile {
	return g.Tiles[y][x]
}

// Clone returns a deep copy of the grid. Every mutating operation in the
// engine clones first, so snapshots held by callers stay valid.
func (g Grid) Clone() Grid {
	tiles := make([][]Tile, g.Size)
	for y := range tiles {
		row := make([]Tile, g.Size)
		copy(row, g.Tiles[y])
		for x := range row {
			if row[x].Coverage != nil {
				cov := make(map[string]bool, len(row[x].Coverage))
				for k, v := range row[x].Coverage {
					cov[k] = v
				}
				row[x].Coverage = cov
			}
		}
		tiles[y] = row
	}
	return Grid{Size: g.Size, Tiles: tiles}
}

// Count returns how many tiles host the given building type.
func (g Grid) Count(t BuildingType) int {
	n := 0
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.Tiles[y][x].Building == t {
				n++
			}
		}
	}
	return n
}

// CountOccupied returns how many tiles host any structure. Roads and
// empty land do not count.
func (g Grid) CountOccupied() int {
	n := 0
	for y := 0; y < g.Size; y++ {
		for x := 0; x < g.Size; x++ {
			if g.Tiles[y][x].Occupied() {
				n++
			}
		}
	}
	return n
}

// CityStats holds city-wide aggregates. Supply, usage, income, maintenance
// and happiness are recomputed from scratch every tick.
type CityStats struct {
	Money            int     `json:"money"`
	Population       int     `json:"population"`
	Day              int     `json:"day"`
	Happiness        int     `json:"happiness"`
	ManaSupply       int     `json:"manaSupply"`
	EssenceSupply    int     `json:"essenceSupply"`
	ManaUsage        int     `json:"manaUsage"`
	EssenceUsage     int     `json:"essenceUsage"`
	IncomeTotal      int     `json:"incomeTotal"`
	MaintenanceTotal int     `json:"maintenanceTotal"`
	Weather          Weather `json:"weather"`
	Time             float64 `json:"time"` // In-game clock, hours [0, 24)
	TaxRate          float64 `json:"taxRate"`
}

// NewStats returns starting stats for a fresh city.
func NewStats(initialMoney int, taxRate float64) CityStats {
	return CityStats{
		Money:      initialMoney,
		Population: 0,
		Day:        1,
		Happiness:  100,
		Weather:    WeatherClear,
		Time:       10,
		TaxRate:    taxRate,
	}
}
