package economy

import (
	"math"

	"github.com/talgya/hamlet/internal/config"
)

// MarketEntry is the ledger line for one item.
type MarketEntry struct {
	Item     string `json:"item"`
	Stock    int    `json:"stock"`
	MaxStock int    `json:"max_stock"`
	Partial  bool   `json:"partial"` // Buys may fill with less than requested
}

// Market is the settlement's bounded stock ledger. It knows nothing about
// coins or buyers; the transaction protocol that pairs a ledger mutation with
// a villager's balance lives with the caller.
type Market struct {
	Entries       map[string]*MarketEntry `json:"entries"`
	CeilingFactor float64                 `json:"ceiling_factor"`

	catalog *Catalog
}

// NewMarket creates a market with configured initial and maximum stock for
// every catalog item. Items without a configured maximum are capped at their
// initial stock.
func NewMarket(catalog *Catalog, cfg config.MarketConfig) *Market {
	m := &Market{
		Entries:       make(map[string]*MarketEntry, len(catalog.Names())),
		CeilingFactor: cfg.CeilingPriceFactor,
		catalog:       catalog,
	}
	for _, name := range catalog.Names() {
		max, ok := cfg.MaxStock[name]
		if !ok {
			max = cfg.InitialStock[name]
		}
		if max < 0 {
			max = 0
		}
		m.Entries[name] = &MarketEntry{
			Item:     name,
			Stock:    clampStock(cfg.InitialStock[name], max),
			MaxStock: max,
			Partial:  config.Contains(cfg.PartialFill, name),
		}
	}
	return m
}

// Stock returns current stock of item, 0 for unknown items.
func (m *Market) Stock(item string) int {
	if e, ok := m.Entries[item]; ok {
		return e.Stock
	}
	return 0
}

// MaxStock returns the ceiling for item, 0 for unknown items.
func (m *Market) MaxStock(item string) int {
	if e, ok := m.Entries[item]; ok {
		return e.MaxStock
	}
	return 0
}

// Price returns the unit price of item. Stock at its ceiling signals a glut
// and the price drops by the ceiling factor, floored to a whole coin and never
// below 1 for items that cost anything.
func (m *Market) Price(item string) int {
	def, ok := m.catalog.Get(item)
	if !ok {
		return 0
	}
	e := m.Entries[item]
	if e == nil || e.MaxStock == 0 || e.Stock < e.MaxStock {
		return def.BasePrice
	}
	price := int(math.Floor(float64(def.BasePrice) * m.CeilingFactor))
	if price < 1 && def.BasePrice > 0 {
		price = 1
	}
	return price
}

// AttemptBuy quotes a purchase without mutating anything. It fails when the
// item is unknown or out of stock. Partial-fill items return the available
// quantity when stock is short; other items fail. Callers must settle with
// actualQty, never qty.
func (m *Market) AttemptBuy(item string, qty int) (ok bool, cost int, actualQty int) {
	e, found := m.Entries[item]
	if !found || qty <= 0 || e.Stock <= 0 {
		return false, 0, 0
	}
	actualQty = qty
	if e.Stock < qty {
		if !e.Partial {
			return false, 0, 0
		}
		actualQty = e.Stock
	}
	return true, m.Price(item) * actualQty, actualQty
}

// FinalizeBuy removes qty from stock, clamped at zero.
func (m *Market) FinalizeBuy(item string, qty int) {
	e, ok := m.Entries[item]
	if !ok || qty <= 0 {
		return
	}
	e.Stock = clampStock(e.Stock-qty, e.MaxStock)
}

// FinalizeSell adds qty to stock, clamped at the ceiling. Units past the
// ceiling are discarded and returned as overflow.
func (m *Market) FinalizeSell(item string, qty int) (overflow int) {
	e, ok := m.Entries[item]
	if !ok || qty <= 0 {
		return 0
	}
	next := e.Stock + qty
	if next > e.MaxStock {
		overflow = next - e.MaxStock
	}
	e.Stock = clampStock(next, e.MaxStock)
	return overflow
}

// Shortage returns how under-stocked item is, from 0 (at ceiling) to 1 (empty).
func (m *Market) Shortage(item string) float64 {
	e, ok := m.Entries[item]
	if !ok || e.MaxStock == 0 {
		return 0
	}
	return float64(e.MaxStock-e.Stock) / float64(e.MaxStock)
}

func clampStock(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
