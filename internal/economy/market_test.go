package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hamlet/internal/config"
)

func newTestMarket(t *testing.T) *Market {
	t.Helper()
	cfg := config.Default()
	return NewMarket(NewCatalog(cfg.Items), cfg.Market)
}

func TestCatalogSplitsCategories(t *testing.T) {
	c := NewCatalog(config.Default().Items)
	assert.Equal(t, []string{"axe", "bow", "hammer", "hoe"}, c.Tools())
	assert.Equal(t, []string{"food", "wood"}, c.Resources())
	assert.True(t, c.IsTool("bow"))
	assert.False(t, c.IsTool("wood"))

	food, ok := c.Get("food")
	require.True(t, ok)
	assert.Equal(t, 18, food.SpoilageTicks)
	assert.Zero(t, food.Durability)
}

func TestPriceDecaysAtCeiling(t *testing.T) {
	m := newTestMarket(t)
	assert.Equal(t, 2, m.Price("wood"))

	m.Entries["wood"].Stock = m.MaxStock("wood")
	assert.Equal(t, 1, m.Price("wood"))

	m.Entries["food"].Stock = m.MaxStock("food")
	assert.Equal(t, 1, m.Price("food"), "decayed price never drops below one coin")
	assert.Equal(t, 0, m.Price("gold"))
}

func TestAttemptBuyDoesNotMutate(t *testing.T) {
	m := newTestMarket(t)
	m.Entries["wood"].Stock = 5

	ok, cost, qty := m.AttemptBuy("wood", 3)
	require.True(t, ok)
	assert.Equal(t, 6, cost)
	assert.Equal(t, 3, qty)
	assert.Equal(t, 5, m.Stock("wood"))
}

func TestAttemptBuyPartialFill(t *testing.T) {
	m := newTestMarket(t)
	m.Entries["wood"].Stock = 2

	ok, cost, qty := m.AttemptBuy("wood", 5)
	require.True(t, ok)
	assert.Equal(t, 2, qty)
	assert.Equal(t, 4, cost)

	m.Entries["axe"].Stock = 1
	ok, _, _ = m.AttemptBuy("axe", 2)
	assert.False(t, ok, "tools are not partial-fill items")
}

func TestAttemptBuyFailsWhenEmpty(t *testing.T) {
	m := newTestMarket(t)
	m.Entries["food"].Stock = 0

	ok, cost, qty := m.AttemptBuy("food", 1)
	assert.False(t, ok)
	assert.Zero(t, cost)
	assert.Zero(t, qty)

	ok, _, _ = m.AttemptBuy("unobtainium", 1)
	assert.False(t, ok)
}

func TestFinalizeClampsAndReportsOverflow(t *testing.T) {
	m := newTestMarket(t)
	m.Entries["axe"].Stock = 9

	overflow := m.FinalizeSell("axe", 3)
	assert.Equal(t, 2, overflow)
	assert.Equal(t, 10, m.Stock("axe"))

	m.FinalizeBuy("axe", 15)
	assert.Equal(t, 0, m.Stock("axe"))
}

func TestShortage(t *testing.T) {
	m := newTestMarket(t)
	m.Entries["bow"].Stock = 0
	m.Entries["hoe"].Stock = 10
	assert.Equal(t, 1.0, m.Shortage("bow"))
	assert.Equal(t, 0.0, m.Shortage("hoe"))
}
