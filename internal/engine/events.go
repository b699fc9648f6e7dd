// World events rolled each morning: weather and storms, disease, monsters.
package engine

import (
	"github.com/talgya/hamlet/internal/agents"
	"github.com/talgya/hamlet/internal/weather"
)

// Monster is a transient threat. It lives only for the encounter that
// spawned it and is never stored on the simulation.
type Monster struct {
	Health    int
	DamageMin int
	DamageMax int
}

// processEvents rolls the morning events, each independently and in a fixed
// order so the random sequence is stable.
func (s *Simulation) processEvents(t Tick) {
	ev := s.Config.Events

	s.Weather = weather.Roll(t.Season, s.Rng, ev.StormProbability)
	if s.Weather.Storm {
		s.Stats.Storms++
		n := s.Grid.Storm(s.Rng, ev.StormDivisor, ev.StormReduction)
		s.eventf("Storm (%s) reduced resources in ~%d tiles.", s.Weather.Description, n)
	}

	if s.Rng.Chance(ev.DiseaseProbability) {
		s.disease()
	}

	if s.Rng.Chance(ev.MonsterProbability) {
		s.monsterAttack()
	}
}

func (s *Simulation) disease() {
	alive := s.living()
	if len(alive) == 0 {
		return
	}
	v := alive[s.Rng.Intn(len(alive))]
	s.Stats.Diseases++
	v.Damage(s.Config.Needs, s.Config.Events.DiseaseHealthLoss)
	s.eventf("Disease struck Villager %d (%s).", v.ID, v.Role)
	s.logf(v, "Fell ill and lost %g health.", s.Config.Events.DiseaseHealthLoss)
	s.checkDeath(v, "disease")
}

func (s *Simulation) monsterAttack() {
	alive := s.living()
	if len(alive) == 0 {
		return
	}
	ev := s.Config.Events
	m := &Monster{
		Health:    s.Rng.Range(ev.MonsterHealthMin, ev.MonsterHealthMax),
		DamageMin: ev.MonsterDamageMin,
		DamageMax: ev.MonsterDamageMax,
	}
	v := alive[s.Rng.Intn(len(alive))]
	s.Stats.Monsters++
	s.eventf("A monster (health %d) attacked Villager %d (%s).", m.Health, v.ID, v.Role)

	if s.fight(v, m) {
		s.Stats.MonstersSlain++
		s.eventf("Villager %d (%s) slew the monster.", v.ID, v.Role)
		return
	}
	if v.Alive {
		s.eventf("The monster retreated from Villager %d (%s).", v.ID, v.Role)
	}
}

// fight runs up to the configured number of simultaneous exchanges. Holding
// the combat tool adds a flat bonus to the villager's blows. Returns true when
// the monster is slain.
func (s *Simulation) fight(v *agents.Villager, m *Monster) bool {
	ev := s.Config.Events
	bonus := 0
	if tool := s.Config.Tools.CombatTool; tool != "" && v.Inventory.ToolCount(tool) > 0 {
		bonus = s.Config.Tools.CombatToolBonus
	}

	for round := 1; round <= ev.CombatRounds; round++ {
		dealt := s.Rng.Range(ev.VillagerDamageMin, ev.VillagerDamageMax) + bonus
		taken := s.Rng.Range(m.DamageMin, m.DamageMax)
		m.Health -= dealt
		v.Damage(s.Config.Needs, float64(taken))
		s.logf(v, "Fought the monster: dealt %d, took %d.", dealt, taken)

		if s.checkDeath(v, "a monster attack") {
			return m.Health <= 0
		}
		if m.Health <= 0 {
			return true
		}
	}
	return false
}
