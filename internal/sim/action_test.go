package sim

import (
	"reflect"
	"testing"
)

func TestBuildSuccess(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	stats := NewStats(1500, 1.0)

	resp := Apply(g, stats, cat, tun, Action{Kind: ActionBuild, X: 3, Y: 4, Building: BuildingCottage})

	if !resp.Success {
		t.Fatalf("build failed: %s", resp.Message)
	}
	if resp.Severity != SeverityPositive {
		t.Errorf("Severity = %q, want positive", resp.Severity)
	}
	tile := resp.Grid.At(3, 4)
	if tile.Building != BuildingCottage || tile.Level != 1 {
		t.Errorf("tile = %+v, want cottage level 1", tile)
	}
	if resp.Stats.Money != 1400 {
		t.Errorf("Money = %d, want 1400 (cost 100 deducted)", resp.Stats.Money)
	}
	// The input snapshot must be untouched.
	if g.At(3, 4).Building != BuildingNone {
		t.Error("build mutated the input grid")
	}
}

func TestBuildInsufficientFunds(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	stats := NewStats(50, 1.0)

	resp := Apply(g, stats, cat, tun, Action{Kind: ActionBuild, X: 0, Y: 0, Building: BuildingCottage})

	if resp.Success {
		t.Fatal("build should fail with 50g against a 100g cost")
	}
	if resp.Code != FailInsufficientFunds {
		t.Errorf("Code = %q, want insufficient_funds", resp.Code)
	}
	if resp.Severity != SeverityNegative {
		t.Errorf("Severity = %q, want negative", resp.Severity)
	}
	if !reflect.DeepEqual(resp.Grid, g) {
		t.Error("failed action must return the grid unchanged")
	}
	if resp.Stats != stats {
		t.Error("failed action must return the stats unchanged")
	}
}

func TestBuildOccupiedTile(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[2][2].Building = BuildingRoad
	stats := NewStats(1500, 1.0)

	resp := Apply(g, stats, cat, tun, Action{Kind: ActionBuild, X: 2, Y: 2, Building: BuildingCottage})

	if resp.Success || resp.Code != FailAlreadyOccupied {
		t.Errorf("Code = %q, want already_occupied", resp.Code)
	}
	if !reflect.DeepEqual(resp.Grid, g) || resp.Stats != stats {
		t.Error("failed action must leave grid and stats unchanged")
	}
}

func TestBuildUnknownType(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	stats := NewStats(1500, 1.0)

	resp := Apply(g, stats, cat, tun, Action{Kind: ActionBuild, X: 0, Y: 0, Building: "castle_in_the_sky"})

	if resp.Success || resp.Code != FailUnknownBuilding {
		t.Errorf("Code = %q, want unknown_building", resp.Code)
	}
}

func TestUpgradeLadder(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[5][5].Building = BuildingTavern // base cost 250
	stats := NewStats(5000, 1.0)

	// Level 1 -> 2: floor(250 * 1 * 1.5) = 375.
	resp := Apply(g, stats, cat, tun, Action{Kind: ActionUpgrade, X: 5, Y: 5})
	if !resp.Success {
		t.Fatalf("first upgrade failed: %s", resp.Message)
	}
	if resp.Grid.At(5, 5).Level != 2 {
		t.Errorf("Level = %d, want 2", resp.Grid.At(5, 5).Level)
	}
	if got := stats.Money - resp.Stats.Money; got != 375 {
		t.Errorf("first upgrade cost %d, want 375", got)
	}

	// Level 2 -> 3: floor(250 * 2 * 1.5) = 750.
	resp2 := Apply(resp.Grid, resp.Stats, cat, tun, Action{Kind: ActionUpgrade, X: 5, Y: 5})
	if !resp2.Success {
		t.Fatalf("second upgrade failed: %s", resp2.Message)
	}
	if got := resp.Stats.Money - resp2.Stats.Money; got != 750 {
		t.Errorf("second upgrade cost %d, want 750", got)
	}

	// Level 3 is the cap.
	resp3 := Apply(resp2.Grid, resp2.Stats, cat, tun, Action{Kind: ActionUpgrade, X: 5, Y: 5})
	if resp3.Success || resp3.Code != FailMaxLevelReached {
		t.Errorf("Code = %q, want max_level_reached", resp3.Code)
	}
	if !reflect.DeepEqual(resp3.Grid, resp2.Grid) || resp3.Stats != resp2.Stats {
		t.Error("failed upgrade must leave grid and stats unchanged")
	}
}

func TestUpgradeRejectsEmptyAndRoad(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[1][1].Building = BuildingRoad
	stats := NewStats(5000, 1.0)

	tests := []struct {
		name string
		x, y int
	}{
		{"empty tile", 0, 0},
		{"road tile", 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Apply(g, stats, cat, tun, Action{Kind: ActionUpgrade, X: tt.x, Y: tt.y})
			if resp.Success || resp.Code != FailNotUpgradable {
				t.Errorf("Code = %q, want not_upgradable", resp.Code)
			}
		})
	}
}

func TestUpgradeInsufficientFunds(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[5][5].Building = BuildingTavern
	stats := NewStats(300, 1.0) // upgrade needs 375

	resp := Apply(g, stats, cat, tun, Action{Kind: ActionUpgrade, X: 5, Y: 5})
	if resp.Success || resp.Code != FailInsufficientFunds {
		t.Errorf("Code = %q, want insufficient_funds", resp.Code)
	}
	if resp.Grid.At(5, 5).Level != 1 {
		t.Error("failed upgrade must not change level")
	}
}

func TestBulldoze(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[5][5].Building = BuildingMine
	g.Tiles[5][5].Level = 3
	stats := NewStats(1500, 1.0)

	resp := Apply(g, stats, cat, tun, Action{Kind: ActionBulldoze, X: 5, Y: 5})

	if !resp.Success {
		t.Fatalf("bulldoze failed: %s", resp.Message)
	}
	tile := resp.Grid.At(5, 5)
	if tile.Building != BuildingNone || tile.Level != 1 {
		t.Errorf("tile = %+v, want empty level 1", tile)
	}
	if resp.Stats.Money != 1480 {
		t.Errorf("Money = %d, want 1480 (fee 20)", resp.Stats.Money)
	}
	// Feedback layers receive what was demolished.
	if resp.Building != BuildingMine || resp.Level != 3 {
		t.Errorf("response building/level = %s/%d, want mine/3", resp.Building, resp.Level)
	}
}

func TestBulldozeFeeFloorsAtZero(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	g.Tiles[0][0].Building = BuildingRoad
	stats := NewStats(5, 1.0)

	resp := Apply(g, stats, cat, tun, Action{Kind: ActionBulldoze, X: 0, Y: 0})

	if !resp.Success {
		t.Fatalf("bulldoze failed: %s", resp.Message)
	}
	if resp.Stats.Money != 0 {
		t.Errorf("Money = %d, want 0 (fee floored, never negative)", resp.Stats.Money)
	}
}

func TestBulldozeEmptyTile(t *testing.T) {
	cat, tun := testCatalog(t)
	g := NewGrid(15)
	stats := NewStats(1500, 1.0)

	resp := Apply(g, stats, cat, tun, Action{Kind: ActionBulldoze, X: 7, Y: 7})

	if resp.Success || resp.Code != FailAlreadyEmpty {
		t.Errorf("Code = %q, want already_empty", resp.Code)
	}
	if resp.Stats.Money != 1500 {
		t.Error("failed bulldoze must not charge the fee")
	}
}
