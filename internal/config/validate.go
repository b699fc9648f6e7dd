package config

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// BehaviorNames lists the behavior identifiers the action engine knows.
// A role mapped to anything else falls back to foraging.
var BehaviorNames = []string{"farm", "hunt", "log_wood", "craft", "forage"}

// TerrainNames lists the terrain types the grid generator understands.
var TerrainNames = []string{"forest", "field", "water"}

// Validate checks structural invariants the simulation cannot run without.
func (c *Config) Validate() error {
	var errs []error

	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid: width and height must be positive, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	totalWeight := 0
	for name, t := range c.Grid.Terrain {
		if !Contains(TerrainNames, name) {
			errs = append(errs, fmt.Errorf("grid.terrain: unknown terrain %q%s", name, suggest(name, TerrainNames)))
		}
		if t.Weight < 0 || t.BaseLevel < 0 || t.Cap < 0 {
			errs = append(errs, fmt.Errorf("grid.terrain.%s: weight, base_level and cap must be non-negative", name))
		}
		totalWeight += t.Weight
	}
	if totalWeight <= 0 {
		errs = append(errs, errors.New("grid.terrain: total weight must be positive"))
	}
	if c.Grid.FertilityVariance < 0 || c.Grid.FertilityVariance > 1 {
		errs = append(errs, fmt.Errorf("grid.fertility_variance must be within [0, 1], got %v", c.Grid.FertilityVariance))
	}

	if c.Time.TotalDays < 0 {
		errs = append(errs, fmt.Errorf("time.total_days must be non-negative, got %d", c.Time.TotalDays))
	}
	if c.Time.DaysPerSeason <= 0 {
		errs = append(errs, fmt.Errorf("time.days_per_season must be positive, got %d", c.Time.DaysPerSeason))
	}
	if len(c.Time.Seasons) == 0 {
		errs = append(errs, errors.New("time.seasons must not be empty"))
	}
	if len(c.Time.PartsOfDay) == 0 {
		errs = append(errs, errors.New("time.parts_of_day must not be empty"))
	}
	for _, p := range c.Time.WorkingParts {
		if !Contains(c.Time.PartsOfDay, p) {
			errs = append(errs, fmt.Errorf("time.working_parts: unknown part %q%s", p, suggest(p, c.Time.PartsOfDay)))
		}
	}
	for _, group := range [][]string{c.Time.HarvestSeasons, c.Time.GrowingSeasons, c.Time.WinterSeasons} {
		for _, s := range group {
			if !Contains(c.Time.Seasons, s) {
				errs = append(errs, fmt.Errorf("time: unknown season %q%s", s, suggest(s, c.Time.Seasons)))
			}
		}
	}

	seen := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if it.Name == "" {
			errs = append(errs, errors.New("items: item with empty name"))
			continue
		}
		if seen[it.Name] {
			errs = append(errs, fmt.Errorf("items: duplicate item %q", it.Name))
		}
		seen[it.Name] = true
		switch it.Category {
		case "tool":
			if it.Durability <= 0 {
				errs = append(errs, fmt.Errorf("items.%s: tool durability must be positive", it.Name))
			}
		case "resource":
			if it.SpoilageTicks < 0 {
				errs = append(errs, fmt.Errorf("items.%s: spoilage_ticks must be non-negative", it.Name))
			}
		default:
			errs = append(errs, fmt.Errorf("items.%s: unknown category %q", it.Name, it.Category))
		}
		if it.BasePrice < 0 {
			errs = append(errs, fmt.Errorf("items.%s: base_price must be non-negative", it.Name))
		}
	}
	for _, m := range []map[string]int{c.Market.InitialStock, c.Market.MaxStock, c.Villagers.InitialResources} {
		for name, qty := range m {
			if qty < 0 {
				errs = append(errs, fmt.Errorf("quantity for %q must be non-negative, got %d", name, qty))
			}
		}
	}
	if c.Market.CeilingPriceFactor < 0 {
		errs = append(errs, errors.New("market.ceiling_price_factor must be non-negative"))
	}

	for _, r := range c.Roles {
		if r.Count < 0 {
			errs = append(errs, fmt.Errorf("roles.%s: count must be non-negative", r.Name))
		}
		for name, qty := range r.InitialResources {
			if qty < 0 {
				errs = append(errs, fmt.Errorf("roles.%s: initial_resources.%s must be non-negative, got %d", r.Name, name, qty))
			}
		}
	}
	if c.Needs.Max <= 0 {
		errs = append(errs, errors.New("needs.max must be positive"))
	}
	if c.Events.StormDivisor <= 0 {
		errs = append(errs, errors.New("events.storm_divisor must be positive"))
	}
	if c.Events.MonsterHealthMin > c.Events.MonsterHealthMax ||
		c.Events.MonsterDamageMin > c.Events.MonsterDamageMax ||
		c.Events.VillagerDamageMin > c.Events.VillagerDamageMax {
		errs = append(errs, errors.New("events: combat ranges must have min <= max"))
	}

	return errors.Join(errs...)
}

// Warnings reports tolerable oddities: names the core will resolve to a
// fallback rather than reject. Each warning carries a suggestion when a
// known name is close.
func (c *Config) Warnings() []string {
	var out []string
	items := make([]string, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, it.Name)
	}
	sort.Strings(items)

	for _, r := range c.Roles {
		if !Contains(BehaviorNames, r.Behavior) {
			out = append(out, fmt.Sprintf("role %s: unknown behavior %q, will forage%s", r.Name, r.Behavior, suggest(r.Behavior, BehaviorNames)))
		}
		if r.Tool != "" && !Contains(items, r.Tool) {
			out = append(out, fmt.Sprintf("role %s: tool %q is not in the catalog%s", r.Name, r.Tool, suggest(r.Tool, items)))
		}
	}
	endowments := []map[string]int{c.Villagers.InitialResources}
	for _, r := range c.Roles {
		if len(r.InitialResources) > 0 {
			endowments = append(endowments, r.InitialResources)
		}
	}
	tools := make(map[string]bool)
	for _, it := range c.Items {
		tools[it.Name] = it.Category == "tool"
	}
	for _, m := range endowments {
		for _, name := range sortedNames(m) {
			if tools[name] {
				out = append(out, fmt.Sprintf("starting resource %q is a tool and will be ignored", name))
			}
		}
	}

	maps := append([]map[string]int{c.Market.InitialStock, c.Market.MaxStock, c.Market.SurplusThresholds}, endowments...)
	for _, m := range maps {
		for _, name := range sortedNames(m) {
			if !Contains(items, name) {
				out = append(out, fmt.Sprintf("item %q is not in the catalog and will be ignored%s", name, suggest(name, items)))
			}
		}
	}
	return out
}

func sortedNames(m map[string]int) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// suggest returns a " (did you mean ...?)" hint for the closest candidate
// within a small edit distance, or "" when nothing is close.
func suggest(name string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(name, cand)
		if dist > suggestLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf(" (did you mean %q?)", best)
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
