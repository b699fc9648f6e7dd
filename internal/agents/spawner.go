// Villager spawning: builds the starting roster from the role table.
package agents

import (
	"github.com/talgya/hamlet/internal/config"
	"github.com/talgya/hamlet/internal/economy"
)

// Spawner creates villagers with sequential ids. It draws no randomness, so
// the roster for a given configuration is always identical.
type Spawner struct {
	cfg     *config.Config
	catalog *economy.Catalog
	nextID  VillagerID
}

// NewSpawner creates a spawner that issues ids starting at 1.
func NewSpawner(cfg *config.Config, catalog *economy.Catalog) *Spawner {
	return &Spawner{cfg: cfg, catalog: catalog, nextID: 1}
}

// SpawnRoster creates every configured villager, role by role in
// configuration order.
func (s *Spawner) SpawnRoster() []*Villager {
	var roster []*Villager
	for _, role := range s.cfg.Roles {
		for i := 0; i < role.Count; i++ {
			roster = append(roster, s.Spawn(role))
		}
	}
	return roster
}

// Spawn creates one villager of the given role.
func (s *Spawner) Spawn(role config.RoleConfig) *Villager {
	id := s.nextID
	s.nextID++

	behavior, _ := ParseBehavior(role.Behavior)

	tool := ""
	if s.catalog.IsTool(role.Tool) {
		tool = role.Tool
	}

	skillCap := role.SkillCap
	if skillCap < 1 {
		skillCap = 1
	}

	v := &Villager{
		ID:        id,
		Role:      role.Name,
		Behavior:  behavior,
		Tool:      tool,
		Status:    NewStatus(s.cfg.Needs.Initial, s.cfg.Needs.Max),
		Coins:     s.cfg.Villagers.InitialCoins,
		Inventory: NewInventory(s.spoilageTable()),
		Skill:     1,
		SkillCap:  skillCap,
		Alive:     true,
	}

	start := s.cfg.StartingResources(role)
	for _, name := range sortedKeys(start) {
		def, ok := s.catalog.Get(name)
		if !ok || def.Category != economy.CategoryResource {
			continue
		}
		v.Inventory.Add(name, start[name])
	}
	if s.cfg.Villagers.StartWithTool && tool != "" {
		def, _ := s.catalog.Get(tool)
		v.Inventory.AddTool(tool, def.Durability)
	}
	return v
}

func (s *Spawner) spoilageTable() map[string]int {
	table := make(map[string]int)
	for _, name := range s.catalog.Resources() {
		def, _ := s.catalog.Get(name)
		if def.SpoilageTicks > 0 {
			table[name] = def.SpoilageTicks
		}
	}
	return table
}
