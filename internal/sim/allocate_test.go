package sim

import (
	"reflect"
	"testing"

	"github.com/quintrel/gridrealm/internal/config"
)

func TestAllocateSingleProducerAndConsumer(t *testing.T) {
	cat, _ := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[0][0].Building = BuildingWizardTower // 120 mana per level
	g.Tiles[5][5].Building = BuildingCottage     // requires 1 mana, 1 essence

	a := Allocate(g, cat)

	if a.ManaSupply != 120 {
		t.Errorf("ManaSupply = %d, want 120", a.ManaSupply)
	}
	if !a.HasMana[5][5] {
		t.Error("cottage should have its mana requirement met")
	}
	if a.HasEssence[5][5] {
		t.Error("cottage essence should be unmet with no well built")
	}
	// The tower itself consumes essence (2/level) but none is available.
	if a.HasEssence[0][0] {
		t.Error("tower essence should be unmet with no well built")
	}
	if a.ManaUsed != 1 {
		t.Errorf("ManaUsed = %d, want 1 (cottage only)", a.ManaUsed)
	}
}

func TestAllocateScaledByLevel(t *testing.T) {
	cat, _ := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[0][0].Building = BuildingWizardTower
	g.Tiles[0][0].Level = 3
	g.Tiles[1][0].Building = BuildingMine // 5 mana per level
	g.Tiles[1][0].Level = 2

	a := Allocate(g, cat)

	if a.ManaSupply != 360 {
		t.Errorf("ManaSupply = %d, want 360 for level 3 tower", a.ManaSupply)
	}
	if a.ManaUsed != 10 {
		t.Errorf("ManaUsed = %d, want 10 for level 2 mine", a.ManaUsed)
	}
}

// scarceCatalog builds a catalog where one producer covers one consumer's
// requirement but not two, to observe the greedy order.
func scarceCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := NewCatalog([]config.Building{
		{ID: "wizard_tower", Name: "Wizard Tower", Cost: 800, ManaOutput: 120},
		{ID: "cottage", Name: "Cottage", Cost: 100, ManaReq: 70, Residential: true},
	})
	if err != nil {
		t.Fatalf("NewCatalog() failed: %v", err)
	}
	return cat
}

func TestAllocateGreedyRowMajorOrder(t *testing.T) {
	cat := scarceCatalog(t)
	g := NewGrid(15)
	g.Tiles[0][0].Building = BuildingWizardTower
	// Each cottage wants 70 of the 120 supply; row-major order decides.
	g.Tiles[2][3].Building = BuildingCottage // earlier in iteration
	g.Tiles[9][1].Building = BuildingCottage // later

	a := Allocate(g, cat)

	if !a.HasMana[2][3] {
		t.Error("earlier cottage should win the scarce supply")
	}
	if a.HasMana[9][1] {
		t.Error("later cottage should be denied")
	}
	if a.ManaUsed != 70 {
		t.Errorf("ManaUsed = %d, want 70 (denied tile must not consume)", a.ManaUsed)
	}
}

func TestAllocateNeverOverCommits(t *testing.T) {
	cat, _ := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[0][0].Building = BuildingWizardTower
	g.Tiles[0][1].Building = BuildingAncientWell
	// More demand than either utility can serve.
	for y := 2; y < 15; y++ {
		for x := 0; x < 15; x++ {
			g.Tiles[y][x].Building = BuildingMine
			g.Tiles[y][x].Level = 3
		}
	}

	a := Allocate(g, cat)

	if a.ManaUsed > a.ManaSupply {
		t.Errorf("ManaUsed %d exceeds supply %d", a.ManaUsed, a.ManaSupply)
	}
	if a.EssenceUsed > a.EssenceSupply {
		t.Errorf("EssenceUsed %d exceeds supply %d", a.EssenceUsed, a.EssenceSupply)
	}
}

func TestAllocateEmptyAndRoadAlwaysSatisfied(t *testing.T) {
	cat, _ := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[4][4].Building = BuildingRoad

	a := Allocate(g, cat)

	if !a.HasMana[0][0] || !a.HasEssence[0][0] {
		t.Error("empty tiles are always fully supplied")
	}
	if !a.HasMana[4][4] || !a.HasEssence[4][4] {
		t.Error("road tiles are always fully supplied")
	}
	if a.ManaUsed != 0 || a.EssenceUsed != 0 {
		t.Errorf("roads and empty tiles must not consume, got mana %d essence %d",
			a.ManaUsed, a.EssenceUsed)
	}
}

func TestAllocateIdempotent(t *testing.T) {
	cat, _ := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[0][0].Building = BuildingWizardTower
	g.Tiles[3][3].Building = BuildingCottage
	g.Tiles[3][4].Building = BuildingTavern

	first := Allocate(g, cat)
	second := Allocate(g, cat)

	if !reflect.DeepEqual(first, second) {
		t.Error("Allocate should be idempotent over the same grid")
	}
}
