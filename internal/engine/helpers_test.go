package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/hamlet/internal/agents"
	"github.com/talgya/hamlet/internal/config"
)

// quietConfig disables every random world event.
func quietConfig() *config.Config {
	cfg := config.Default()
	cfg.Events.StormProbability = 0
	cfg.Events.DiseaseProbability = 0
	cfg.Events.MonsterProbability = 0
	cfg.Events.Marriage.Probability = 0
	return cfg
}

func newTestSim(t *testing.T, cfg *config.Config) *Simulation {
	t.Helper()
	if cfg == nil {
		cfg = quietConfig()
	}
	s, err := NewSimulation(cfg)
	require.NoError(t, err)
	return s
}

func tickAt(day, part int, partName, season string) Tick {
	return Tick{Seq: (day-1)*3 + part, Day: day, Part: part, PartName: partName, Season: season}
}

func byRole(t *testing.T, s *Simulation, role string) *agents.Villager {
	t.Helper()
	for _, v := range s.Villagers {
		if v.Role == role {
			return v
		}
	}
	t.Fatalf("no villager with role %s", role)
	return nil
}
