package engine

import (
	"sort"

	"github.com/talgya/hamlet/internal/agents"
)

// runRoutine runs one villager's part of a tick, in order: eat, buy winter
// wood, buy the primary tool, work, sell surplus, night upkeep, spoilage,
// needs decay, death check. A villager already at zero health dies before
// doing anything.
func (s *Simulation) runRoutine(v *agents.Villager) {
	if s.checkDeath(v, "failing health") {
		return
	}
	t := s.tick
	needs := s.Config.Needs
	winter := s.Calendar.IsWinter(t.Season)

	if v.Eat(needs) {
		s.logf(v, "Ate 1 food to increase hunger.")
	}

	if winter {
		if short := needs.WinterWoodConsumption - v.Inventory.Count("wood"); short > 0 {
			s.buy(v, "wood", short)
		}
	}

	if v.Tool != "" && !v.HasPrimaryTool() {
		s.buy(v, v.Tool, 1)
	}

	if s.Calendar.IsWorking(t.PartName) {
		if v.Inventory.Count("food") == 0 {
			s.buy(v, "food", 1)
		}
		s.performRole(v)
	}

	s.sellSurplus(v, winter)

	if s.Calendar.IsNight(t.Part) {
		if winter {
			s.burnWood(v)
			if s.checkDeath(v, "cold") {
				return
			}
		}
		v.NightRecovery(needs)
	}

	if cadence := s.Config.Tools.SpoilageCadence; cadence > 0 && (t.Seq+1)%cadence == 0 {
		for _, st := range v.Inventory.Spoil(cadence) {
			s.logf(v, "%d %s spoiled and was discarded.", st.Quantity, st.Item)
			if st.Item == "food" {
				s.Stats.FoodSpoiled += st.Quantity
			}
		}
	}

	out := v.UpdateNeeds(needs, s.Config.PartsPerDay())
	if out.HungerPenalty {
		s.logf(v, "Suffering from prolonged hunger, health and happiness penalty.")
	}
	if out.RestPenalty {
		s.logf(v, "Suffering from prolonged lack of rest, health and happiness penalty.")
	}

	s.checkDeath(v, "exhaustion and want")
}

// sellSurplus sells everything above the configured thresholds. In winter
// wood is never sold below the reserve.
func (s *Simulation) sellSurplus(v *agents.Villager, winter bool) {
	thresholds := s.Config.Market.SurplusThresholds
	items := make([]string, 0, len(thresholds))
	for item := range thresholds {
		items = append(items, item)
	}
	sort.Strings(items)

	for _, item := range items {
		keep := thresholds[item]
		if item == "wood" && winter && keep < s.Config.Market.WinterWoodReserve {
			keep = s.Config.Market.WinterWoodReserve
		}
		if surplus := v.Inventory.Count(item) - keep; surplus > 0 {
			s.sell(v, item, surplus)
		}
	}
}

func (s *Simulation) burnWood(v *agents.Villager) {
	needs := s.Config.Needs
	burn := needs.WinterWoodConsumption
	if burn <= 0 {
		return
	}
	if v.Inventory.Take("wood", burn) {
		s.logf(v, "Burned %d wood on winter night.", burn)
		return
	}
	v.Suffer(needs, needs.ColdPenalty, needs.ColdPenalty)
	s.logf(v, "No wood, suffered cold (health and happiness -%g).", needs.ColdPenalty)
}
