package social

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hamlet/internal/agents"
	"github.com/talgya/hamlet/internal/config"
	"github.com/talgya/hamlet/internal/economy"
	"github.com/talgya/hamlet/internal/entropy"
)

func roster(t *testing.T) ([]*agents.Villager, *config.Config) {
	t.Helper()
	cfg := config.Default()
	return agents.NewSpawner(cfg, economy.NewCatalog(cfg.Items)).SpawnRoster(), cfg
}

func TestEligibility(t *testing.T) {
	vs, cfg := roster(t)
	m := cfg.Events.Marriage
	assert.True(t, Eligible(vs[0], m))

	vs[1].Coins = m.MinCoins - 1
	assert.False(t, Eligible(vs[1], m))

	vs[2].Status.Health = m.MinHealth - 0.5
	assert.False(t, Eligible(vs[2], m))

	vs[3].Alive = false
	assert.False(t, Eligible(vs[3], m))

	assert.Len(t, Candidates(vs, m), 1)
}

func TestMarryIsMutualAndExclusive(t *testing.T) {
	vs, _ := roster(t)
	require.NoError(t, Marry(vs[0], vs[1]))
	assert.Equal(t, agents.Married, vs[0].Relationship)
	assert.Equal(t, vs[1].ID, vs[0].Partner)
	assert.Equal(t, vs[0].ID, vs[1].Partner)

	err := Marry(vs[1], vs[2])
	assert.ErrorIs(t, err, ErrAlreadyMarried)
	assert.True(t, vs[2].IsSingle())

	assert.ErrorIs(t, Marry(vs[2], vs[2]), ErrSelfMarriage)

	vs[3].Alive = false
	assert.ErrorIs(t, Marry(vs[2], vs[3]), ErrNotAlive)
	assert.True(t, vs[2].IsSingle())
}

func TestPickPairDistinct(t *testing.T) {
	vs, _ := roster(t)
	rng := entropy.New(8)
	for i := 0; i < 100; i++ {
		a, b, ok := PickPair(vs, rng)
		require.True(t, ok)
		require.NotEqual(t, a.ID, b.ID)
	}
	assert.Equal(t, uint64(200), rng.Draws())

	_, _, ok := PickPair(vs[:1], rng)
	assert.False(t, ok)
	assert.Equal(t, uint64(200), rng.Draws())
}
