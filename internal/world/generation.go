// World generation. Terrain is drawn cell by cell from the shared random
// source; starting resource levels are shaped by a layered simplex fertility map.
package world

import (
	"fmt"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hamlet/internal/config"
	"github.com/talgya/hamlet/internal/entropy"
)

const (
	fertilityOctaves     = 3
	fertilityPersistence = 0.5

	claimColumn   = 2
	claimFirstRow = 2
)

// Generate creates a grid from configuration. Terrain picks are the first
// draws taken from rng. The fertility map is seeded from rng's seed and draws
// nothing from it.
func Generate(cfg config.GridConfig, rng *entropy.Source) (*Grid, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}

	// Sorted so the weighted table is stable across map iteration orders.
	names := make([]string, 0, len(cfg.Terrain))
	for name := range cfg.Terrain {
		if _, ok := TerrainFromName(name); ok {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	weights := make([]int, len(names))
	total := 0
	for i, name := range names {
		weights[i] = cfg.Terrain[name].Weight
		if weights[i] > 0 {
			total += weights[i]
		}
	}
	if total == 0 {
		return nil, fmt.Errorf("terrain weights must sum to a positive value")
	}

	fertility := opensimplex.NewNormalized(rng.Seed())

	g := NewGrid(cfg.Width, cfg.Height)
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			name := names[rng.Weighted(weights)]
			terrain, _ := TerrainFromName(name)
			tc := cfg.Terrain[name]

			factor := fertilityFactor(fertility, x, y, cfg.FertilityScale, cfg.FertilityVariance)
			g.Tiles = append(g.Tiles, &Tile{
				X:       x,
				Y:       y,
				Terrain: terrain,
				Level:   clampLevel(tc.BaseLevel*factor, tc.Cap),
				Cap:     tc.Cap,
			})
		}
	}
	return g, nil
}

// fertilityFactor maps the noise value at (x, y) into [1-variance, 1+variance].
func fertilityFactor(noise opensimplex.Noise, x, y int, scale, variance float64) float64 {
	if variance <= 0 {
		return 1
	}
	n := octaveNoise(noise, float64(x), float64(y), fertilityOctaves, scale, fertilityPersistence)
	return 1 + (n*2-1)*variance
}

// ClaimFields assigns one field to each owner, walking down a fixed column
// from the third row. A claimed tile becomes a field at the given level. Only
// valid before the first tick. Owners beyond the grid's height get no field
// and farm public land instead. Returns the number of fields claimed.
func (g *Grid) ClaimFields(owners []uint64, level float64, fieldCap float64) int {
	col := claimColumn
	if col >= g.Width {
		col = g.Width - 1
	}
	claimed := 0
	for i, owner := range owners {
		t := g.Get(col, claimFirstRow+i)
		if t == nil {
			break
		}
		id := owner
		t.Terrain = TerrainField
		t.Cap = fieldCap
		t.Level = clampLevel(level, fieldCap)
		t.Owner = &id
		claimed++
	}
	return claimed
}

// octaveNoise sums multiple octaves of noise for more natural patterns.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}

// TerrainCounts returns a summary of terrain type distribution keyed by name.
func TerrainCounts(g *Grid) map[string]int {
	counts := make(map[string]int)
	for t, n := range g.Counts() {
		counts[TerrainName(t)] = n
	}
	return counts
}
