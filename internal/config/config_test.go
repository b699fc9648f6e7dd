package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Empty(t, c.Warnings())
	assert.Equal(t, 3, c.PartsPerDay())
}

func TestParseOverlaysDefaults(t *testing.T) {
	doc := []byte(`
seed: 7
time:
  total_days: 12
roles:
  - name: Farmer
    behavior: farm
    tool: hoe
    count: 2
    skill_cap: 3
market:
  initial_stock:
    food: 10
`)
	c, err := Parse(doc)
	require.NoError(t, err)

	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, 12, c.Time.TotalDays)
	assert.Equal(t, 3, c.Time.DaysPerSeason, "unset keys keep defaults")
	require.Len(t, c.Roles, 1)
	assert.Equal(t, 2, c.Roles[0].Count)
	assert.Equal(t, 10, c.Market.InitialStock["food"])
	assert.Equal(t, 50, c.Market.InitialStock["wood"], "maps merge with defaults")
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hamlet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("grid:\n  width: 4\n  height: 5\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, c.Grid.Width)
	assert.Equal(t, 5, c.Grid.Height)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsStructuralErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"zero grid", func(c *Config) { c.Grid.Width = 0 }},
		{"no parts", func(c *Config) { c.Time.PartsOfDay = nil }},
		{"unknown working part", func(c *Config) { c.Time.WorkingParts = []string{"Evening"} }},
		{"unknown harvest season", func(c *Config) { c.Time.HarvestSeasons = []string{"Autum"} }},
		{"tool without durability", func(c *Config) { c.Items[2].Durability = 0 }},
		{"duplicate item", func(c *Config) { c.Items = append(c.Items, c.Items[0]) }},
		{"negative stock", func(c *Config) { c.Market.InitialStock["food"] = -1 }},
		{"bad combat range", func(c *Config) { c.Events.MonsterHealthMin = 20 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}

func TestWarningsSuggestCloseNames(t *testing.T) {
	c := Default()
	c.Roles[1].Behavior = "hant"
	c.Roles[2].Tool = "axee"

	warnings := c.Warnings()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], `did you mean "hunt"?`)
	assert.Contains(t, warnings[1], `did you mean "axe"?`)
}

func TestSuggestIgnoresDistantNames(t *testing.T) {
	assert.Equal(t, "", suggest("blacksmithing", BehaviorNames))
	assert.Equal(t, ` (did you mean "field"?)`, suggest("feild", TerrainNames))
}

func TestRoleOrder(t *testing.T) {
	c := Default()
	assert.Equal(t, 0, c.RoleOrder("Farmer"))
	assert.Equal(t, 3, c.RoleOrder("Blacksmith"))
	assert.Equal(t, len(c.Roles), c.RoleOrder("Bard"))
}

func TestRoleEndowmentOverridesShared(t *testing.T) {
	c := Default()
	c.Roles[1].InitialResources = map[string]int{"food": 8, "fod": 1}

	assert.Equal(t, map[string]int{"food": 8, "wood": 2, "fod": 1}, c.StartingResources(c.Roles[1]))
	assert.Equal(t, map[string]int{"food": 3, "wood": 2}, c.StartingResources(c.Roles[0]))

	warnings := c.Warnings()
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `did you mean "food"?`)

	c.Roles[1].InitialResources["hoe"] = 1
	warnings = c.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, `starting resource "hoe" is a tool and will be ignored`, warnings[0])

	c.Roles[1].InitialResources["food"] = -1
	assert.Error(t, c.Validate())
}
