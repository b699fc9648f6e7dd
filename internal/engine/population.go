// Population bookkeeping: deaths and the removal of the dead from the roster.
package engine

import (
	"log/slog"

	"github.com/talgya/hamlet/internal/agents"
)

// checkDeath performs the terminal transition for a villager whose health
// has reached zero. Later calls for the same villager do nothing.
func (s *Simulation) checkDeath(v *agents.Villager, cause string) bool {
	if !v.CheckDeath() {
		return false
	}
	s.Stats.Deaths++
	s.logf(v, "Died of %s.", cause)
	slog.Info("villager died", "id", v.ID, "role", v.Role, "cause", cause, "tick", s.tick.String())
	return true
}

// purgeDead rebuilds the roster without dead villagers.
func (s *Simulation) purgeDead() {
	alive := make([]*agents.Villager, 0, len(s.Villagers))
	for _, v := range s.Villagers {
		if v.Alive {
			alive = append(alive, v)
		}
	}
	s.Villagers = alive
}

// living returns villagers still alive at this point in the tick.
func (s *Simulation) living() []*agents.Villager {
	var out []*agents.Villager
	for _, v := range s.Villagers {
		if v.Alive {
			out = append(out, v)
		}
	}
	return out
}
