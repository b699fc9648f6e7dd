// Package world provides the tile grid that is the settlement's spatial
// resource substrate: forests, fields and water with bounded resource levels.
package world

import (
	"fmt"

	"github.com/talgya/hamlet/internal/entropy"
)

// Terrain types for grid tiles. Terrain never changes after generation.
type Terrain uint8

const (
	TerrainForest Terrain = iota // Game and timber; regrows nightly
	TerrainField                 // Farmland; tended, harvested, decays in winter
	TerrainWater                 // No extractable resource
)

// TerrainName returns the configuration name of a terrain type.
func TerrainName(t Terrain) string {
	switch t {
	case TerrainForest:
		return "forest"
	case TerrainField:
		return "field"
	case TerrainWater:
		return "water"
	default:
		return "unknown"
	}
}

// TerrainFromName parses a configuration terrain name.
func TerrainFromName(name string) (Terrain, bool) {
	switch name {
	case "forest":
		return TerrainForest, true
	case "field":
		return TerrainField, true
	case "water":
		return TerrainWater, true
	default:
		return 0, false
	}
}

// Tile is a single grid cell.
type Tile struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Terrain Terrain `json:"terrain"`
	Level   float64 `json:"level"`           // 0..Cap
	Cap     float64 `json:"cap"`             // Per-terrain ceiling
	Owner   *uint64 `json:"owner,omitempty"` // Villager that owns this field, if any
}

// OwnedBy reports whether the tile belongs to villager id.
func (t *Tile) OwnedBy(id uint64) bool {
	return t.Owner != nil && *t.Owner == id
}

// Add raises the resource level by amount, clamped to [0, Cap].
func (t *Tile) Add(amount float64) {
	t.Level = clampLevel(t.Level+amount, t.Cap)
}

// Take lowers the resource level by amount, floored at 0.
func (t *Tile) Take(amount float64) {
	t.Level = clampLevel(t.Level-amount, t.Cap)
}

// Grid holds every tile, row-major. Tiles are never added or removed after
// generation; only their levels and owners change.
type Grid struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Tiles  []*Tile `json:"tiles"`
}

// NewGrid creates an empty grid. Generate fills it.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  make([]*Tile, 0, width*height),
	}
}

// Get returns the tile at (x, y), or nil if out of bounds.
func (g *Grid) Get(x, y int) *Tile {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return nil
	}
	idx := y*g.Width + x
	if idx >= len(g.Tiles) {
		return nil
	}
	return g.Tiles[idx]
}

// Area returns the number of cells.
func (g *Grid) Area() int {
	return g.Width * g.Height
}

// Find returns the first tile in scan order with the given terrain that
// satisfies pred. A nil pred matches any tile of that terrain.
func (g *Grid) Find(terrain Terrain, pred func(*Tile) bool) *Tile {
	for _, t := range g.Tiles {
		if t.Terrain != terrain {
			continue
		}
		if pred == nil || pred(t) {
			return t
		}
	}
	return nil
}

// FindField returns the first field owned by owner that satisfies pred,
// falling back to the first unowned field that does.
func (g *Grid) FindField(owner uint64, pred func(*Tile) bool) *Tile {
	own := g.Find(TerrainField, func(t *Tile) bool {
		return t.OwnedBy(owner) && (pred == nil || pred(t))
	})
	if own != nil {
		return own
	}
	return g.Find(TerrainField, func(t *Tile) bool {
		return t.Owner == nil && (pred == nil || pred(t))
	})
}

// Regrow raises every forest by amount up to its cap. Called once per day.
func (g *Grid) Regrow(amount float64) {
	for _, t := range g.Tiles {
		if t.Terrain == TerrainForest {
			t.Add(amount)
		}
	}
}

// Storm reduces the level of area/divisor randomly drawn cells by reduction,
// floored at 0. Cells may be drawn more than once. Returns the number of draws.
func (g *Grid) Storm(rng *entropy.Source, divisor int, reduction float64) int {
	if divisor <= 0 || len(g.Tiles) == 0 {
		return 0
	}
	count := g.Area() / divisor
	for i := 0; i < count; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		if t := g.Get(x, y); t != nil {
			t.Take(reduction)
		}
	}
	return count
}

// WinterDecay multiplies every field's level by factor.
func (g *Grid) WinterDecay(factor float64) {
	if factor < 0 {
		factor = 0
	}
	for _, t := range g.Tiles {
		if t.Terrain == TerrainField {
			t.Level = clampLevel(t.Level*factor, t.Cap)
		}
	}
}

// Counts returns the number of tiles per terrain.
func (g *Grid) Counts() map[Terrain]int {
	counts := make(map[Terrain]int)
	for _, t := range g.Tiles {
		counts[t.Terrain]++
	}
	return counts
}

// TotalLevel sums resource levels of one terrain type.
func (g *Grid) TotalLevel(terrain Terrain) float64 {
	total := 0.0
	for _, t := range g.Tiles {
		if t.Terrain == terrain {
			total += t.Level
		}
	}
	return total
}

// String returns a summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(%dx%d, tiles=%d)", g.Width, g.Height, len(g.Tiles))
}

func clampLevel(v, cap float64) float64 {
	if v < 0 {
		return 0
	}
	if v > cap {
		return cap
	}
	return v
}
