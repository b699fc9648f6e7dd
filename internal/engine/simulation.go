// Simulation ties together all settlement systems and runs them each tick.
package engine

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hamlet/internal/agents"
	"github.com/talgya/hamlet/internal/config"
	"github.com/talgya/hamlet/internal/economy"
	"github.com/talgya/hamlet/internal/entropy"
	"github.com/talgya/hamlet/internal/weather"
	"github.com/talgya/hamlet/internal/world"
)

// Simulation holds the complete settlement state and wires systems together.
type Simulation struct {
	Config    *config.Config
	Calendar  Calendar
	Rng       *entropy.Source
	Catalog   *economy.Catalog
	Market    *economy.Market
	Grid      *world.Grid
	Villagers []*agents.Villager // Living villagers in stable routine order
	Weather   weather.Conditions // Most recent morning roll

	Records   []LogRecord
	Snapshots []Snapshot
	Stats     SimStats

	observers []Observer
	tick      Tick
}

// SimStats tracks aggregate settlement statistics.
type SimStats struct {
	Day           int     `json:"day"`
	Alive         int     `json:"alive"`
	Deaths        int     `json:"deaths"`
	Marriages     int     `json:"marriages"`
	Storms        int     `json:"storms"`
	Diseases      int     `json:"diseases"`
	Monsters      int     `json:"monsters"`
	MonstersSlain int     `json:"monsters_slain"`
	ToolsCrafted  int     `json:"tools_crafted"`
	ToolsBroken   int     `json:"tools_broken"`
	FoodSpoiled   int     `json:"food_spoiled"`
	TotalCoins    int     `json:"total_coins"`
	AvgHealth     float64 `json:"avg_health"`
	AvgHappiness  float64 `json:"avg_happiness"`
}

// NewSimulation builds the world from configuration: random source, catalog,
// market, terrain grid, roster and farm claims. Terrain generation takes the
// first draws of the run.
func NewSimulation(cfg *config.Config) (*Simulation, error) {
	rng := entropy.New(cfg.Seed)
	catalog := economy.NewCatalog(cfg.Items)

	grid, err := world.Generate(cfg.Grid, rng)
	if err != nil {
		return nil, fmt.Errorf("generate grid: %w", err)
	}

	roster := agents.NewSpawner(cfg, catalog).SpawnRoster()
	sortRoster(cfg, roster)

	var farmers []uint64
	for _, v := range roster {
		if v.Behavior == agents.BehaviorFarm {
			farmers = append(farmers, uint64(v.ID))
		}
	}
	fieldCap := cfg.Grid.Terrain[world.TerrainName(world.TerrainField)].Cap
	claimed := grid.ClaimFields(farmers, cfg.Grid.OwnedFieldLevel, fieldCap)

	sim := &Simulation{
		Config:    cfg,
		Calendar:  NewCalendar(cfg.Time),
		Rng:       rng,
		Catalog:   catalog,
		Market:    economy.NewMarket(catalog, cfg.Market),
		Grid:      grid,
		Villagers: roster,
	}
	sim.updateStats()

	slog.Info("settlement founded",
		"seed", cfg.Seed,
		"grid", grid.String(),
		"villagers", len(roster),
		"fields_claimed", claimed,
		"terrain", world.TerrainCounts(grid),
	)
	return sim, nil
}

// sortRoster orders villagers by configured role order, then id.
func sortRoster(cfg *config.Config, roster []*agents.Villager) {
	sort.SliceStable(roster, func(i, j int) bool {
		ri, rj := cfg.RoleOrder(roster[i].Role), cfg.RoleOrder(roster[j].Role)
		if ri != rj {
			return ri < rj
		}
		return roster[i].ID < roster[j].ID
	})
}

// AddObserver registers a consumer of records and snapshots.
func (s *Simulation) AddObserver(o Observer) {
	s.observers = append(s.observers, o)
}

// Attach wires the simulation into an engine's callbacks.
func (s *Simulation) Attach(e *Engine) {
	e.OnPart = s.TickPart
	e.OnDay = s.TickDay
}

// Run drives the simulation for the configured number of days.
func (s *Simulation) Run() {
	e := NewEngine(s.Calendar, s.Config.Time.TotalDays)
	s.Attach(e)
	e.Run()
}

// CurrentTick returns the tick most recently processed.
func (s *Simulation) CurrentTick() Tick {
	return s.tick
}

// Villager returns the living villager with id.
func (s *Simulation) Villager(id agents.VillagerID) *agents.Villager {
	for _, v := range s.Villagers {
		if v.ID == id {
			return v
		}
	}
	return nil
}

// TickPart runs one part of a day: the morning social check, every living
// villager's routine, world work, the purge of the dead, then snapshots.
func (s *Simulation) TickPart(t Tick) {
	s.tick = t

	if s.Calendar.IsMorning(t.Part) {
		s.processMarriage()
	}

	for _, v := range s.Villagers {
		if v.Alive {
			s.runRoutine(v)
		}
	}

	if s.Calendar.IsMorning(t.Part) {
		s.processEvents(t)
	}
	if s.Calendar.IsNight(t.Part) {
		s.nightUpkeep(t)
	}

	s.purgeDead()

	for _, v := range s.Villagers {
		snap := snapshotOf(t, v)
		s.Snapshots = append(s.Snapshots, snap)
		for _, o := range s.observers {
			o.OnSnapshot(snap)
		}
	}
}

// TickDay runs after the last part of each day: statistics and the daily report.
func (s *Simulation) TickDay(day int) {
	s.Stats.Day = day
	s.updateStats()

	slog.Info("daily report",
		"day", humanize.Ordinal(day),
		"season", s.Calendar.SeasonAt(day),
		"weather", s.Weather.Description,
		"alive", s.Stats.Alive,
		"deaths", s.Stats.Deaths,
		"marriages", s.Stats.Marriages,
		"avg_health", fmt.Sprintf("%.2f", s.Stats.AvgHealth),
		"avg_happiness", fmt.Sprintf("%.2f", s.Stats.AvgHappiness),
		"total_coins", humanize.Comma(int64(s.Stats.TotalCoins)),
		"records", humanize.Comma(int64(len(s.Records))),
	)
}

func (s *Simulation) updateStats() {
	alive := 0
	coins := 0
	health, happiness := 0.0, 0.0
	for _, v := range s.Villagers {
		if !v.Alive {
			continue
		}
		alive++
		coins += v.Coins
		health += v.Status.Health
		happiness += v.Status.Happiness
	}
	s.Stats.Alive = alive
	s.Stats.TotalCoins = coins
	s.Stats.AvgHealth, s.Stats.AvgHappiness = 0, 0
	if alive > 0 {
		s.Stats.AvgHealth = health / float64(alive)
		s.Stats.AvgHappiness = happiness / float64(alive)
	}
}
