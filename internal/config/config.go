// Package config holds the single structured configuration document for a run.
// The document is loaded once at startup and treated as read-only afterwards.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the complete parameter set for one simulation run.
type Config struct {
	Seed      int64          `yaml:"seed" json:"seed"`
	Grid      GridConfig     `yaml:"grid" json:"grid"`
	Time      TimeConfig     `yaml:"time" json:"time"`
	Items     []ItemConfig   `yaml:"items" json:"items"`
	Market    MarketConfig   `yaml:"market" json:"market"`
	Roles     []RoleConfig   `yaml:"roles" json:"roles"`
	Villagers VillagerConfig `yaml:"villagers" json:"villagers"`
	Needs     NeedsConfig    `yaml:"needs" json:"needs"`
	Tools     ToolConfig     `yaml:"tools" json:"tools"`
	Yields    YieldConfig    `yaml:"yields" json:"yields"`
	Events    EventConfig    `yaml:"events" json:"events"`
	Export    ExportConfig   `yaml:"export" json:"export"`
}

// GridConfig controls world generation and tile dynamics.
type GridConfig struct {
	Width             int                      `yaml:"width" json:"width"`
	Height            int                      `yaml:"height" json:"height"`
	Terrain           map[string]TerrainConfig `yaml:"terrain" json:"terrain"`
	FertilityVariance float64                  `yaml:"fertility_variance" json:"fertility_variance"`
	FertilityScale    float64                  `yaml:"fertility_scale" json:"fertility_scale"`
	ForestRegrow      float64                  `yaml:"forest_regrow" json:"forest_regrow"`
	WinterFieldDecay  float64                  `yaml:"winter_field_decay" json:"winter_field_decay"`
	OwnedFieldLevel   float64                  `yaml:"owned_field_level" json:"owned_field_level"`
}

// TerrainConfig is the generation weight and resource bounds of one terrain type.
type TerrainConfig struct {
	Weight    int     `yaml:"weight" json:"weight"`
	BaseLevel float64 `yaml:"base_level" json:"base_level"`
	Cap       float64 `yaml:"cap" json:"cap"`
}

// TimeConfig describes the calendar: parts of day, seasons and run length.
type TimeConfig struct {
	TotalDays      int      `yaml:"total_days" json:"total_days"`
	DaysPerSeason  int      `yaml:"days_per_season" json:"days_per_season"`
	Seasons        []string `yaml:"seasons" json:"seasons"`
	PartsOfDay     []string `yaml:"parts_of_day" json:"parts_of_day"`
	WorkingParts   []string `yaml:"working_parts" json:"working_parts"`
	HarvestSeasons []string `yaml:"harvest_seasons" json:"harvest_seasons"`
	GrowingSeasons []string `yaml:"growing_seasons" json:"growing_seasons"`
	WinterSeasons  []string `yaml:"winter_seasons" json:"winter_seasons"`
}

// ItemConfig defines one catalog entry.
type ItemConfig struct {
	Name          string  `yaml:"name" json:"name"`
	Category      string  `yaml:"category" json:"category"` // "resource" or "tool"
	BasePrice     int     `yaml:"base_price" json:"base_price"`
	Durability    float64 `yaml:"durability,omitempty" json:"durability,omitempty"`
	SpoilageTicks int     `yaml:"spoilage_ticks,omitempty" json:"spoilage_ticks,omitempty"`
}

// MarketConfig sets initial and maximum stock plus the ceiling price factor.
type MarketConfig struct {
	InitialStock       map[string]int `yaml:"initial_stock" json:"initial_stock"`
	MaxStock           map[string]int `yaml:"max_stock" json:"max_stock"`
	CeilingPriceFactor float64        `yaml:"ceiling_price_factor" json:"ceiling_price_factor"`
	PartialFill        []string       `yaml:"partial_fill" json:"partial_fill"`
	SurplusThresholds  map[string]int `yaml:"surplus_thresholds" json:"surplus_thresholds"`
	WinterWoodReserve  int            `yaml:"winter_wood_reserve" json:"winter_wood_reserve"`
}

// RoleConfig maps a role name to its behavior, tool and population.
// InitialResources overrides the shared endowment item by item for this role.
type RoleConfig struct {
	Name             string         `yaml:"name" json:"name"`
	Behavior         string         `yaml:"behavior" json:"behavior"`
	Tool             string         `yaml:"tool,omitempty" json:"tool,omitempty"`
	Count            int            `yaml:"count" json:"count"`
	SkillCap         float64        `yaml:"skill_cap" json:"skill_cap"`
	InitialResources map[string]int `yaml:"initial_resources,omitempty" json:"initial_resources,omitempty"`
}

// StartingResources merges the shared endowment with the role's overrides.
func (c *Config) StartingResources(role RoleConfig) map[string]int {
	out := make(map[string]int, len(c.Villagers.InitialResources)+len(role.InitialResources))
	for name, qty := range c.Villagers.InitialResources {
		out[name] = qty
	}
	for name, qty := range role.InitialResources {
		out[name] = qty
	}
	return out
}

// VillagerConfig is the starting endowment of every villager.
type VillagerConfig struct {
	InitialCoins     int            `yaml:"initial_coins" json:"initial_coins"`
	InitialResources map[string]int `yaml:"initial_resources" json:"initial_resources"`
	StartWithTool    bool           `yaml:"start_with_tool" json:"start_with_tool"`
}

// NeedsConfig parameterises the needs and status model.
type NeedsConfig struct {
	Max                   float64 `yaml:"max" json:"max"`
	Initial               float64 `yaml:"initial" json:"initial"`
	HungerDecayPerDay     float64 `yaml:"hunger_decay_per_day" json:"hunger_decay_per_day"`
	RestDecayPerDay       float64 `yaml:"rest_decay_per_day" json:"rest_decay_per_day"`
	HungerCritical        float64 `yaml:"hunger_critical" json:"hunger_critical"`
	FoodRestore           float64 `yaml:"food_restore" json:"food_restore"`
	LowThreshold          float64 `yaml:"low_threshold" json:"low_threshold"`
	StreakPersistence     int     `yaml:"streak_persistence" json:"streak_persistence"`
	HealthPenalty         float64 `yaml:"health_penalty" json:"health_penalty"`
	HappinessPenalty      float64 `yaml:"happiness_penalty" json:"happiness_penalty"`
	NightRestBonus        float64 `yaml:"night_rest_bonus" json:"night_rest_bonus"`
	NightHealthRecovery   float64 `yaml:"night_health_recovery" json:"night_health_recovery"`
	WinterWoodConsumption int     `yaml:"winter_wood_consumption" json:"winter_wood_consumption"`
	ColdPenalty           float64 `yaml:"cold_penalty" json:"cold_penalty"`
}

// ToolConfig covers wear, repair and spoilage cadence.
type ToolConfig struct {
	WearPerUse         float64 `yaml:"wear_per_use" json:"wear_per_use"`
	SkillWearReduction float64 `yaml:"skill_wear_reduction" json:"skill_wear_reduction"`
	RepairWoodPerPoint float64 `yaml:"repair_wood_per_point" json:"repair_wood_per_point"`
	SpoilageCadence    int     `yaml:"spoilage_cadence" json:"spoilage_cadence"`
	CombatTool         string  `yaml:"combat_tool" json:"combat_tool"`
	CombatToolBonus    int     `yaml:"combat_tool_bonus" json:"combat_tool_bonus"`
}

// YieldConfig is the production table for the action engine.
type YieldConfig struct {
	FarmTend         float64 `yaml:"farm_tend" json:"farm_tend"`
	BaseHunt         float64 `yaml:"base_hunt" json:"base_hunt"`
	BaseLog          float64 `yaml:"base_log" json:"base_log"`
	FallbackHunt     float64 `yaml:"fallback_hunt" json:"fallback_hunt"`
	FallbackLog      float64 `yaml:"fallback_log" json:"fallback_log"`
	Forage           int     `yaml:"forage" json:"forage"`
	HuntTileCost     float64 `yaml:"hunt_tile_cost" json:"hunt_tile_cost"`
	LogTileCost      float64 `yaml:"log_tile_cost" json:"log_tile_cost"`
	ToolBonus        float64 `yaml:"tool_bonus" json:"tool_bonus"`
	SkillBonusFactor float64 `yaml:"skill_bonus_factor" json:"skill_bonus_factor"`
	MaxMultiplier    float64 `yaml:"max_multiplier" json:"max_multiplier"`
	SkillGain        float64 `yaml:"skill_gain" json:"skill_gain"`
	CraftWood        int     `yaml:"craft_wood" json:"craft_wood"`
}

// EventConfig holds hazard and social event probabilities.
type EventConfig struct {
	StormProbability   float64 `yaml:"storm_probability" json:"storm_probability"`
	StormDivisor       int     `yaml:"storm_divisor" json:"storm_divisor"`
	StormReduction     float64 `yaml:"storm_reduction" json:"storm_reduction"`
	DiseaseProbability float64 `yaml:"disease_probability" json:"disease_probability"`
	DiseaseHealthLoss  float64 `yaml:"disease_health_loss" json:"disease_health_loss"`
	MonsterProbability float64 `yaml:"monster_probability" json:"monster_probability"`
	MonsterHealthMin   int     `yaml:"monster_health_min" json:"monster_health_min"`
	MonsterHealthMax   int     `yaml:"monster_health_max" json:"monster_health_max"`
	MonsterDamageMin   int     `yaml:"monster_damage_min" json:"monster_damage_min"`
	MonsterDamageMax   int     `yaml:"monster_damage_max" json:"monster_damage_max"`
	VillagerDamageMin  int     `yaml:"villager_damage_min" json:"villager_damage_min"`
	VillagerDamageMax  int     `yaml:"villager_damage_max" json:"villager_damage_max"`
	CombatRounds       int     `yaml:"combat_rounds" json:"combat_rounds"`

	Marriage MarriageConfig `yaml:"marriage" json:"marriage"`
}

// MarriageConfig gates the low-frequency social pairing check.
type MarriageConfig struct {
	Probability float64 `yaml:"probability" json:"probability"`
	MinHealth   float64 `yaml:"min_health" json:"min_health"`
	MinHunger   float64 `yaml:"min_hunger" json:"min_hunger"`
	MinCoins    int     `yaml:"min_coins" json:"min_coins"`
	MinFood     int     `yaml:"min_food" json:"min_food"`
}

// ExportConfig names where external collaborators write their output.
// Empty paths disable the corresponding exporter.
type ExportConfig struct {
	LogPath      string `yaml:"log_path" json:"log_path"`
	DatabasePath string `yaml:"database_path" json:"database_path"`
}

// Load reads a YAML document from path and overlays it on Default().
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(b)
}

// Parse decodes a YAML document on top of the defaults and validates it.
func Parse(b []byte) (*Config, error) {
	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// PartsPerDay returns the number of ticks in one day.
func (c *Config) PartsPerDay() int {
	return len(c.Time.PartsOfDay)
}

// Role returns the role entry with the given name.
func (c *Config) Role(name string) (RoleConfig, bool) {
	for _, r := range c.Roles {
		if r.Name == name {
			return r, true
		}
	}
	return RoleConfig{}, false
}

// RoleOrder returns the position of a role in the roster ordering, or
// len(Roles) for unknown roles so they sort last.
func (c *Config) RoleOrder(name string) int {
	for i, r := range c.Roles {
		if r.Name == name {
			return i
		}
	}
	return len(c.Roles)
}

// Contains reports whether name is in list.
func Contains(list []string, name string) bool {
	for _, s := range list {
		if s == name {
			return true
		}
	}
	return false
}
