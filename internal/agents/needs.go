package agents

import "github.com/talgya/hamlet/internal/config"

// Status holds the four villager needs. Every value stays within [0, Max].
type Status struct {
	Hunger    float64 `json:"hunger"`
	Rest      float64 `json:"rest"`
	Health    float64 `json:"health"`
	Happiness float64 `json:"happiness"`
}

// NewStatus returns a status with every need at initial, clamped to max.
func NewStatus(initial, max float64) Status {
	s := Status{Hunger: initial, Rest: initial, Health: initial, Happiness: initial}
	s.clamp(max)
	return s
}

func (s *Status) clamp(max float64) {
	s.Hunger = clampNeed(s.Hunger, max)
	s.Rest = clampNeed(s.Rest, max)
	s.Health = clampNeed(s.Health, max)
	s.Happiness = clampNeed(s.Happiness, max)
}

func clampNeed(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// NeedsOutcome reports which streak penalties fired during an update.
type NeedsOutcome struct {
	HungerPenalty bool
	RestPenalty   bool
}

// Eat consumes one food when hunger is below the critical threshold and food
// is on hand. Returns whether the villager ate.
func (v *Villager) Eat(cfg config.NeedsConfig) bool {
	if !v.active() || v.Status.Hunger >= cfg.HungerCritical {
		return false
	}
	if !v.Inventory.Take("food", 1) {
		return false
	}
	v.Status.Hunger += cfg.FoodRestore
	v.Status.clamp(cfg.Max)
	return true
}

// UpdateNeeds applies one part of decay. Hunger and rest fall by their daily
// rate divided by partsPerDay. A need that stays below the low threshold for
// more than the configured number of consecutive parts costs health and
// happiness, independently for hunger and rest.
func (v *Villager) UpdateNeeds(cfg config.NeedsConfig, partsPerDay int) NeedsOutcome {
	var out NeedsOutcome
	if !v.active() || partsPerDay <= 0 {
		return out
	}
	v.Status.Hunger -= cfg.HungerDecayPerDay / float64(partsPerDay)
	v.Status.Rest -= cfg.RestDecayPerDay / float64(partsPerDay)
	v.Status.clamp(cfg.Max)

	v.HungerStreak = nextStreak(v.HungerStreak, v.Status.Hunger, cfg.LowThreshold)
	v.RestStreak = nextStreak(v.RestStreak, v.Status.Rest, cfg.LowThreshold)

	if v.HungerStreak > cfg.StreakPersistence {
		v.penalize(cfg.HealthPenalty, cfg.HappinessPenalty)
		out.HungerPenalty = true
	}
	if v.RestStreak > cfg.StreakPersistence {
		v.penalize(cfg.HealthPenalty, cfg.HappinessPenalty)
		out.RestPenalty = true
	}
	v.Status.clamp(cfg.Max)
	return out
}

func nextStreak(streak int, value, threshold float64) int {
	if value < threshold {
		return streak + 1
	}
	return 0
}

func (v *Villager) penalize(health, happiness float64) {
	v.Status.Health -= health
	v.Status.Happiness -= happiness
}

// NightRecovery adds the rest bonus and passive health recovery.
func (v *Villager) NightRecovery(cfg config.NeedsConfig) {
	if !v.active() {
		return
	}
	v.Status.Rest += cfg.NightRestBonus
	v.Status.Health += cfg.NightHealthRecovery
	v.Status.clamp(cfg.Max)
}

// Suffer lowers health and happiness, e.g. from a cold night.
func (v *Villager) Suffer(cfg config.NeedsConfig, health, happiness float64) {
	if !v.Alive {
		return
	}
	v.penalize(health, happiness)
	v.Status.clamp(cfg.Max)
}

// Damage lowers health only. Returns the health remaining.
func (v *Villager) Damage(cfg config.NeedsConfig, amount float64) float64 {
	if v.Alive {
		v.Status.Health -= amount
		v.Status.clamp(cfg.Max)
	}
	return v.Status.Health
}

// active reports whether the villager can still act and recover. A villager
// at zero health is past recovery even before CheckDeath marks it dead.
func (v *Villager) active() bool {
	return v.Alive && v.Status.Health > 0
}

// CheckDeath marks the villager dead when health has reached zero. Returns
// true only on the call that performs the transition.
func (v *Villager) CheckDeath() bool {
	if !v.Alive || v.Status.Health > 0 {
		return false
	}
	v.Alive = false
	return true
}
