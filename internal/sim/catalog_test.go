package sim

import (
	"testing"

	"github.com/quintrel/gridrealm/internal/config"
)

func TestNewCatalogRejectsUnknownID(t *testing.T) {
	_, err := NewCatalog([]config.Building{{ID: "spaceport", Cost: 10}})
	if err == nil {
		t.Fatal("expected error for id outside the building-type set")
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	_, err := NewCatalog([]config.Building{
		{ID: "road", Cost: 10},
		{ID: "road", Cost: 20},
	})
	if err == nil {
		t.Fatal("expected error for duplicate building id")
	}
}

func TestCatalogCategories(t *testing.T) {
	cat, _ := testCatalog(t)
	cats := cat.Categories()

	want := map[string]bool{"guards": true, "wards": true, "wisdom": true, "nature": true, "sweets": true}
	if len(cats) != len(want) {
		t.Fatalf("Categories() = %v, want the 5 default categories", cats)
	}
	for _, c := range cats {
		if !want[c] {
			t.Errorf("unexpected category %q", c)
		}
	}
}

func TestSpecLookup(t *testing.T) {
	cat, _ := testCatalog(t)

	if _, ok := cat.Spec(BuildingNone); ok {
		t.Error("empty tiles must have no catalog entry")
	}

	spec, ok := cat.Spec(BuildingWizardTower)
	if !ok {
		t.Fatal("wizard tower missing from default catalog")
	}
	if !spec.IsUtility() {
		t.Error("wizard tower should be a utility producer")
	}
	if spec.ManaOutput != 120 {
		t.Errorf("ManaOutput = %d, want 120", spec.ManaOutput)
	}
}

func TestGridCloneIsDeep(t *testing.T) {
	g := NewGrid(5)
	g.Tiles[2][2].Building = BuildingCottage
	g.Tiles[2][2].Coverage = map[string]bool{"guards": true}

	clone := g.Clone()
	clone.Tiles[2][2].Building = BuildingMine
	clone.Tiles[2][2].Coverage["guards"] = false

	if g.Tiles[2][2].Building != BuildingCottage {
		t.Error("clone shares tile storage with the original")
	}
	if !g.Tiles[2][2].Coverage["guards"] {
		t.Error("clone shares coverage maps with the original")
	}
}

func TestGridCount(t *testing.T) {
	g := NewGrid(10)
	g.Tiles[1][1].Building = BuildingCottage
	g.Tiles[2][5].Building = BuildingCottage
	g.Tiles[9][9].Building = BuildingRoad

	if n := g.Count(BuildingCottage); n != 2 {
		t.Errorf("Count(cottage) = %d, want 2", n)
	}
	if n := g.Count(BuildingNone); n != 97 {
		t.Errorf("Count(none) = %d, want 97", n)
	}
}
