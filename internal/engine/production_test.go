package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hamlet/internal/agents"
	"github.com/talgya/hamlet/internal/world"
)

func TestBehaviorForUnknownForages(t *testing.T) {
	assert.IsType(t, forageBehavior{}, BehaviorFor(agents.BehaviorKind(99)))
	assert.IsType(t, farmBehavior{}, BehaviorFor(agents.BehaviorFarm))
	assert.IsType(t, craftBehavior{}, BehaviorFor(agents.BehaviorCraft))
}

func TestHarvestScenario(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(7, 0, "Morning", "Autumn")
	farmer := byRole(t, s, "Farmer")
	farmer.Inventory.AddTool("hoe", 10)

	tile := s.Grid.Get(2, 2)
	require.True(t, tile.OwnedBy(uint64(farmer.ID)))
	tile.Level = 8
	food := farmer.Inventory.Count("food")

	require.True(t, farmBehavior{}.Perform(s, farmer))
	assert.Equal(t, food+8, farmer.Inventory.Count("food"))
	assert.Zero(t, tile.Level)
	assert.Equal(t, 9.0, farmer.Inventory.Tools["hoe"][0].Durability)
}

func TestHarvestWithoutToolHalves(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(7, 0, "Morning", "Autumn")
	farmer := byRole(t, s, "Farmer")
	s.Grid.Get(2, 2).Level = 9
	food := farmer.Inventory.Count("food")

	require.True(t, farmBehavior{}.Perform(s, farmer))
	assert.Equal(t, food+4, farmer.Inventory.Count("food"))
}

func TestTendingRaisesOwnedField(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(1, 0, "Morning", "Spring")
	farmer := byRole(t, s, "Farmer")
	tile := s.Grid.Get(2, 2)
	tile.Level = 19

	require.True(t, farmBehavior{}.Perform(s, farmer))
	assert.Equal(t, 20.0, tile.Level, "tending stops at the field cap")
}

func TestWinterFarmingForages(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(10, 0, "Morning", "Winter")
	farmer := byRole(t, s, "Farmer")
	food := farmer.Inventory.Count("food")

	assert.False(t, farmBehavior{}.Perform(s, farmer))
	assert.Equal(t, food+1, farmer.Inventory.Count("food"))
}

func forestFirst(s *Simulation, level float64) *world.Tile {
	for _, tl := range s.Grid.Tiles {
		if tl.Terrain == world.TerrainForest {
			tl.Level = 0
		}
	}
	tile := s.Grid.Tiles[0]
	tile.Terrain = world.TerrainForest
	tile.Owner = nil
	tile.Cap = 10
	tile.Level = level
	return tile
}

func TestHuntWithBow(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(1, 0, "Morning", "Spring")
	hunter := byRole(t, s, "Hunter")
	hunter.Inventory.AddTool("bow", 10)
	tile := forestFirst(s, 5)
	food := hunter.Inventory.Count("food")

	require.True(t, BehaviorFor(hunter.Behavior).Perform(s, hunter))
	assert.Equal(t, food+3, hunter.Inventory.Count("food"))
	assert.Equal(t, 4.0, tile.Level)
}

func TestLogWithoutAxeUsesFallback(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(1, 0, "Morning", "Spring")
	logger := byRole(t, s, "Logger")
	tile := forestFirst(s, 1)
	wood := logger.Inventory.Count("wood")

	require.True(t, BehaviorFor(logger.Behavior).Perform(s, logger))
	assert.Equal(t, wood+1, logger.Inventory.Count("wood"))
	assert.Zero(t, tile.Level, "tile level floors at zero")
}

func TestEmptyForestFallsBackToForage(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(1, 0, "Morning", "Spring")
	hunter := byRole(t, s, "Hunter")
	forestFirst(s, 0)
	food := hunter.Inventory.Count("food")

	s.performRole(hunter)
	assert.Equal(t, food+1, hunter.Inventory.Count("food"))
	assert.Equal(t, 1.0, hunter.Skill, "foraging earns no skill")
}

func TestSkillGainCapped(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(1, 0, "Morning", "Spring")
	hunter := byRole(t, s, "Hunter")
	forestFirst(s, 10)
	for i := 0; i < 5; i++ {
		s.performRole(hunter)
	}
	assert.InDelta(t, 1.25, hunter.Skill, 1e-9)

	hunter.Skill = hunter.SkillCap
	s.performRole(hunter)
	assert.Equal(t, hunter.SkillCap, hunter.Skill)
}

func TestCraftChoosesNeediestTool(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(1, 0, "Morning", "Spring")
	byRole(t, s, "Farmer").Inventory.AddTool("hoe", 10)
	byRole(t, s, "Logger").Inventory.AddTool("axe", 10)
	smith := byRole(t, s, "Blacksmith")

	assert.Equal(t, []string{"axe", "bow", "hoe"}, s.craftable())
	tool, ok := s.chooseCraft()
	require.True(t, ok)
	assert.Equal(t, "bow", tool)

	require.True(t, craftBehavior{}.Perform(s, smith))
	assert.Equal(t, 6, s.Market.Stock("bow"))
	assert.Equal(t, 15, smith.Coins)
	assert.Equal(t, 1, smith.Inventory.Count("wood"))
	assert.Zero(t, smith.Inventory.ToolCount("bow"))
	assert.Equal(t, 1, s.Stats.ToolsCrafted)
}

func TestCraftSellsTheNewTool(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(1, 0, "Morning", "Spring")
	byRole(t, s, "Farmer").Inventory.AddTool("hoe", 10)
	byRole(t, s, "Logger").Inventory.AddTool("axe", 10)
	smith := byRole(t, s, "Blacksmith")
	smith.Coins = 0
	smith.Inventory.Take("wood", 1)
	smith.Inventory.AddTool("bow", 10)
	smith.Inventory.Degrade("bow", 9)

	require.True(t, craftBehavior{}.Perform(s, smith))
	require.Equal(t, 1, smith.Inventory.ToolCount("bow"))
	assert.InDelta(t, 1.0, smith.Inventory.Tools["bow"][0].Durability, 1e-9)
	assert.Equal(t, 6, s.Market.Stock("bow"))
	assert.Equal(t, 5, smith.Coins)
}

func TestCraftTieBreaksByName(t *testing.T) {
	s := newTestSim(t, nil)
	tool, ok := s.chooseCraft()
	require.True(t, ok)
	assert.Equal(t, "axe", tool)

	for _, name := range []string{"axe", "bow", "hoe"} {
		s.Market.Entries[name].Stock = s.Market.MaxStock(name)
	}
	_, ok = s.chooseCraft()
	assert.False(t, ok)
}

func TestCraftRepairsFirst(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(1, 0, "Morning", "Spring")
	smith := byRole(t, s, "Blacksmith")
	smith.Inventory.AddTool("hammer", 10)
	smith.Inventory.Degrade("hammer", 3)
	axes := s.Market.Stock("axe")

	require.True(t, craftBehavior{}.Perform(s, smith))
	assert.Equal(t, 10.0, smith.Inventory.Tools["hammer"][0].Durability)
	assert.Equal(t, 1, smith.Inventory.Count("wood"))
	assert.Equal(t, axes, s.Market.Stock("axe"))
}

func TestCraftWithoutWoodOrCoinsForages(t *testing.T) {
	s := newTestSim(t, nil)
	s.tick = tickAt(1, 0, "Morning", "Spring")
	smith := byRole(t, s, "Blacksmith")
	smith.Inventory.Take("wood", 2)
	smith.Coins = 0
	food := smith.Inventory.Count("food")

	assert.False(t, craftBehavior{}.Perform(s, smith))
	assert.Equal(t, food+1, smith.Inventory.Count("food"))
	assert.Zero(t, s.Stats.ToolsCrafted)
}
