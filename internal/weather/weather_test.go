package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/hamlet/internal/entropy"
)

func TestRollAlwaysDrawsOnce(t *testing.T) {
	rng := entropy.New(1)
	c := Roll("Spring", rng, 0)
	assert.False(t, c.Storm)
	assert.Equal(t, "mild spring weather", c.Description)
	assert.Equal(t, uint64(1), rng.Draws())
}

func TestRollCertainStorm(t *testing.T) {
	c := Roll("Winter", entropy.New(2), 1)
	assert.True(t, c.Storm)
	assert.Equal(t, "a blizzard sweeps the valley", c.Description)
	assert.Equal(t, "Winter", c.Season)
}

func TestUnknownSeasonIsFair(t *testing.T) {
	assert.Equal(t, "fair weather", seasonDefault("Monsoon"))
}
