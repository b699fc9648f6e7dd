package engine

import (
	"github.com/talgya/hamlet/internal/agents"
)

type craftBehavior struct{}

// Perform repairs a damaged tool when the crafter can pay for it in wood,
// otherwise crafts the tool the settlement needs most and sells it at once.
func (craftBehavior) Perform(s *Simulation, v *agents.Villager) bool {
	if res, ok := v.Inventory.Repair(s.Config.Tools.RepairWoodPerPoint); ok {
		s.logf(v, "Repaired %s using %d wood.", res.Tool, res.Wood)
		return true
	}

	tool, ok := s.chooseCraft()
	if !ok {
		s.logf(v, "No tool is in short supply.")
		s.forage(v)
		return false
	}

	need := s.Config.Yields.CraftWood
	if short := need - v.Inventory.Count("wood"); short > 0 {
		s.buy(v, "wood", short)
	}
	if !v.Inventory.Take("wood", need) {
		s.logf(v, "Wanted to craft but no wood available.")
		s.forage(v)
		return false
	}

	def, _ := s.Catalog.Get(tool)
	v.Inventory.AddTool(tool, def.Durability)
	s.Stats.ToolsCrafted++
	if v.HasPrimaryTool() {
		s.useTool(v, v.Tool)
	}
	s.logf(v, "Crafted 1 %s (consumed %d wood).", tool, need)
	s.sellCrafted(v, tool)
	return true
}

// craftable returns the catalog tools used by roles that do not craft, in
// name order.
func (s *Simulation) craftable() []string {
	var out []string
	for _, tool := range s.Catalog.Tools() {
		for _, role := range s.Config.Roles {
			kind, _ := agents.ParseBehavior(role.Behavior)
			if role.Tool == tool && kind != agents.BehaviorCraft {
				out = append(out, tool)
				break
			}
		}
	}
	return out
}

// toolDemand counts living villagers whose role tool is tool and who hold none.
func (s *Simulation) toolDemand(tool string) int {
	n := 0
	for _, v := range s.Villagers {
		if v.Alive && v.Tool == tool && v.Inventory.ToolCount(tool) == 0 {
			n++
		}
	}
	return n
}

// chooseCraft picks the tool maximising (1 + demand) × shortage. Ties go to
// the first name. Fails when every candidate is fully stocked.
func (s *Simulation) chooseCraft() (string, bool) {
	best, bestScore := "", 0.0
	for _, tool := range s.craftable() {
		score := float64(1+s.toolDemand(tool)) * s.Market.Shortage(tool)
		if score > bestScore {
			best, bestScore = tool, score
		}
	}
	return best, best != ""
}
