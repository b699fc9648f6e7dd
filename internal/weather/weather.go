// Package weather rolls the settlement's daily weather. A storm is the only
// condition with mechanical effect; the rest is flavor for the day's records.
package weather

import (
	"log/slog"
	"strings"

	"github.com/talgya/hamlet/internal/entropy"
)

// Conditions is one day's weather.
type Conditions struct {
	Season      string `json:"season"`
	Storm       bool   `json:"storm"`
	Description string `json:"description"`
}

// Roll draws the day's weather. Exactly one draw is taken from rng whatever
// the probability, so the sequence of later rolls does not depend on it.
func Roll(season string, rng *entropy.Source, stormProbability float64) Conditions {
	c := Conditions{
		Season:      season,
		Storm:       rng.Chance(stormProbability),
		Description: seasonDefault(season),
	}
	if c.Storm {
		c.Description = stormDescription(season)
		slog.Debug("storm rolled", "season", season)
	}
	return c
}

func seasonDefault(season string) string {
	switch strings.ToLower(season) {
	case "spring":
		return "mild spring weather"
	case "summer":
		return "warm summer sun"
	case "autumn", "fall":
		return "cool autumn breeze"
	case "winter":
		return "cold winter chill"
	default:
		return "fair weather"
	}
}

func stormDescription(season string) string {
	switch strings.ToLower(season) {
	case "winter":
		return "a blizzard sweeps the valley"
	case "summer":
		return "a thunderstorm rolls over the hills"
	default:
		return "a storm batters the land"
	}
}
