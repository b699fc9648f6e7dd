// Market transactions. A trade checks the villager's funds or holdings and
// the market's stock before touching anything, then moves coins, stock and
// goods together. A failed trade changes nothing.
package engine

import (
	"github.com/talgya/hamlet/internal/agents"
)

// buy purchases up to qty of item for v. Partial-fill items may deliver less
// than asked. Returns the quantity delivered.
func (s *Simulation) buy(v *agents.Villager, item string, qty int) (int, bool) {
	if !v.Alive {
		return 0, false
	}
	ok, cost, actual := s.Market.AttemptBuy(item, qty)
	if !ok || v.Coins < cost {
		return 0, false
	}

	v.Coins -= cost
	s.Market.FinalizeBuy(item, actual)
	if s.Catalog.IsTool(item) {
		def, _ := s.Catalog.Get(item)
		for i := 0; i < actual; i++ {
			v.Inventory.AddTool(item, def.Durability)
		}
	} else {
		v.Inventory.Add(item, actual)
	}

	s.logf(v, "Bought %d %s for %d coins. Market now has %d left.", actual, item, cost, s.Market.Stock(item))
	return actual, true
}

// sell hands qty of item to the market at the price quoted before the sale.
// The market pays for every unit; units past its ceiling are discarded and
// reported as a world event.
func (s *Simulation) sell(v *agents.Villager, item string, qty int) bool {
	if !v.Alive || qty <= 0 {
		return false
	}
	if _, known := s.Catalog.Get(item); !known {
		return false
	}

	if s.Catalog.IsTool(item) {
		if v.Inventory.ToolCount(item) < qty {
			return false
		}
		for i := 0; i < qty; i++ {
			v.Inventory.RemoveTool(item)
		}
	} else if !v.Inventory.Take(item, qty) {
		return false
	}

	s.settleSale(v, item, qty)
	return true
}

// sellCrafted sells the tool instance v just made. Older instances of the
// same tool stay in hand.
func (s *Simulation) sellCrafted(v *agents.Villager, tool string) bool {
	if !v.Alive {
		return false
	}
	if _, ok := v.Inventory.RemoveNewestTool(tool); !ok {
		return false
	}
	s.settleSale(v, tool, 1)
	return true
}

// settleSale pays v for goods already taken from its inventory.
func (s *Simulation) settleSale(v *agents.Villager, item string, qty int) {
	revenue := s.Market.Price(item) * qty
	v.Coins += revenue
	overflow := s.Market.FinalizeSell(item, qty)

	s.logf(v, "Sold %d %s for %d coins. Market stock now %d.", qty, item, revenue, s.Market.Stock(item))
	if overflow > 0 {
		s.eventf("Market at capacity for %s; discarded %d.", item, overflow)
	}
}
