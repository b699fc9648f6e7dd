// Relationship dynamics: the morning marriage check.
package engine

import (
	"log/slog"

	"github.com/talgya/hamlet/internal/social"
)

// processMarriage rolls once per morning; on success it marries two randomly
// picked eligible singles. Fewer than two candidates means no pairing.
func (s *Simulation) processMarriage() {
	cfg := s.Config.Events.Marriage
	if !s.Rng.Chance(cfg.Probability) {
		return
	}
	a, b, ok := social.PickPair(social.Candidates(s.Villagers, cfg), s.Rng)
	if !ok {
		return
	}
	if err := social.Marry(a, b); err != nil {
		slog.Warn("marriage failed", "a", a.ID, "b", b.ID, "error", err)
		return
	}
	s.Stats.Marriages++
	s.eventf("Villager %d (%s) and Villager %d (%s) married.", a.ID, a.Role, b.ID, b.Role)
	s.logf(a, "Married Villager %d.", b.ID)
	s.logf(b, "Married Villager %d.", a.ID)
}
