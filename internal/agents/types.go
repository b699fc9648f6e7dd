// Package agents provides the villager data model, the needs and status
// rules, the inventory and tool subsystem, and the roster spawner.
package agents

import (
	"fmt"
	"sort"
)

// VillagerID is a unique identifier for a villager. Zero is reserved for
// world events in the record stream.
type VillagerID uint64

// RelationshipStatus is a villager's marital state.
type RelationshipStatus uint8

const (
	Single RelationshipStatus = iota
	Married
)

func (r RelationshipStatus) String() string {
	if r == Married {
		return "married"
	}
	return "single"
}

// Villager is one member of the settlement.
type Villager struct {
	ID       VillagerID   `json:"id"`
	Role     string       `json:"role"`
	Behavior BehaviorKind `json:"behavior"`
	Tool     string       `json:"tool,omitempty"` // Primary role tool; empty when the role needs none

	Status       Status `json:"status"`
	HungerStreak int    `json:"hunger_streak"` // Consecutive parts below the low threshold
	RestStreak   int    `json:"rest_streak"`

	Coins     int        `json:"coins"`
	Inventory *Inventory `json:"inventory"`

	Skill    float64 `json:"skill"`     // Starts at 1.0
	SkillCap float64 `json:"skill_cap"` // Per-role ceiling

	Relationship RelationshipStatus `json:"relationship"`
	Partner      VillagerID         `json:"partner,omitempty"`

	Alive bool `json:"alive"`
}

// HasPrimaryTool reports whether the villager holds at least one of its role tool.
func (v *Villager) HasPrimaryTool() bool {
	return v.Tool != "" && v.Inventory.ToolCount(v.Tool) > 0
}

// SkillProgress is how far skill has advanced from 1.0 toward the cap, in [0, 1].
func (v *Villager) SkillProgress() float64 {
	if v.SkillCap <= 1 {
		return 0
	}
	p := (v.Skill - 1) / (v.SkillCap - 1)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// GainSkill raises skill by gain, capped at the role ceiling.
func (v *Villager) GainSkill(gain float64) {
	if !v.Alive || gain <= 0 {
		return
	}
	v.Skill += gain
	if v.Skill > v.SkillCap {
		v.Skill = v.SkillCap
	}
}

// Wear returns the durability one use of a tool costs this villager. A novice
// wears exactly wearPerUse; a villager at its skill cap wears
// wearPerUse × (1 − reduction).
func (v *Villager) Wear(wearPerUse, reduction float64) float64 {
	w := wearPerUse * (1 - reduction*v.SkillProgress())
	if w < 0 {
		return 0
	}
	return w
}

// IsSingle reports whether the villager is unmarried.
func (v *Villager) IsSingle() bool {
	return v.Relationship == Single
}

func (v *Villager) String() string {
	return fmt.Sprintf("Villager %d (%s)", v.ID, v.Role)
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
