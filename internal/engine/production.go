// Resource-based production: villagers draw from grid tiles when working.
package engine

import (
	"math"

	"github.com/talgya/hamlet/internal/agents"
	"github.com/talgya/hamlet/internal/world"
)

// Behavior is one role action. Perform reports whether the primary action
// succeeded; false means the villager fell back to foraging.
type Behavior interface {
	Perform(s *Simulation, v *agents.Villager) bool
}

// BehaviorFor maps a behavior kind to its implementation. Anything
// unrecognised forages.
func BehaviorFor(kind agents.BehaviorKind) Behavior {
	switch kind {
	case agents.BehaviorFarm:
		return farmBehavior{}
	case agents.BehaviorHunt:
		return gatherBehavior{output: "food", hunt: true}
	case agents.BehaviorLogWood:
		return gatherBehavior{output: "wood"}
	case agents.BehaviorCraft:
		return craftBehavior{}
	default:
		return forageBehavior{}
	}
}

// performRole runs the villager's role action and grants skill on success.
func (s *Simulation) performRole(v *agents.Villager) {
	if BehaviorFor(v.Behavior).Perform(s, v) && v.Behavior.Primary() {
		v.GainSkill(s.Config.Yields.SkillGain)
	}
}

type forageBehavior struct{}

func (forageBehavior) Perform(s *Simulation, v *agents.Villager) bool {
	s.forage(v)
	return true
}

func (s *Simulation) forage(v *agents.Villager) {
	n := s.Config.Yields.Forage
	v.Inventory.Add("food", n)
	s.logf(v, "Foraging, +%d food.", n)
}

// useTool degrades the oldest instance of tool and reports breakage.
func (s *Simulation) useTool(v *agents.Villager, tool string) {
	res := v.Inventory.Degrade(tool, v.Wear(s.Config.Tools.WearPerUse, s.Config.Tools.SkillWearReduction))
	switch {
	case res.Broken:
		s.Stats.ToolsBroken++
		s.logf(v, "%s broke (durability 0).", tool)
	case res.Warn:
		s.logf(v, "%s is nearly broken (durability %.2f).", tool, res.Remaining)
	}
}

type farmBehavior struct{}

// Perform harvests in harvest seasons, tends in growing seasons and forages
// otherwise. Harvest takes the whole tile: its level with a tool, half of it
// without, scaled by skill.
func (farmBehavior) Perform(s *Simulation, v *agents.Villager) bool {
	season := s.tick.Season
	owner := uint64(v.ID)

	switch {
	case s.Calendar.IsHarvest(season):
		tile := s.Grid.FindField(owner, func(t *world.Tile) bool { return t.Level > 0 })
		if tile == nil {
			s.forage(v)
			return false
		}
		amount := tile.Level
		if v.HasPrimaryTool() {
			s.useTool(v, v.Tool)
		} else {
			amount = math.Floor(amount / 2)
		}
		food := s.Rng.Round(amount * v.Skill)
		tile.Level = 0
		v.Inventory.Add("food", food)
		s.logf(v, "Harvested %d food (tile resource now=%g).", food, tile.Level)
		return true

	case s.Calendar.IsGrowing(season):
		tile := s.Grid.FindField(owner, func(t *world.Tile) bool { return t.Level < t.Cap })
		if tile == nil {
			s.forage(v)
			return false
		}
		tile.Add(s.Config.Yields.FarmTend)
		s.logf(v, "Prepared fields (resource now %g).", tile.Level)
		return true

	default:
		s.logf(v, "Cannot farm in %s.", season)
		s.forage(v)
		return false
	}
}

// gatherBehavior draws from forests: hunting yields food, logging yields wood.
type gatherBehavior struct {
	output string
	hunt   bool
}

func (g gatherBehavior) Perform(s *Simulation, v *agents.Villager) bool {
	y := s.Config.Yields
	tile := s.Grid.Find(world.TerrainForest, func(t *world.Tile) bool { return t.Level > 0 })
	if tile == nil {
		s.forage(v)
		return false
	}

	base, fallback, cost := y.BaseLog, y.FallbackLog, y.LogTileCost
	if g.hunt {
		base, fallback, cost = y.BaseHunt, y.FallbackHunt, y.HuntTileCost
	}

	var amount float64
	if v.HasPrimaryTool() {
		s.useTool(v, v.Tool)
		mult := 1 + (v.Skill-1)*y.SkillBonusFactor + y.ToolBonus
		if mult > y.MaxMultiplier {
			mult = y.MaxMultiplier
		}
		amount = base * mult
	} else {
		amount = fallback * v.Skill
	}

	n := s.Rng.Round(amount)
	v.Inventory.Add(g.output, n)
	tile.Take(cost)

	verb := "Logging"
	if g.hunt {
		verb = "Hunting"
	}
	s.logf(v, "%s, +%d %s (tile resource now=%g).", verb, n, g.output, tile.Level)
	return true
}
