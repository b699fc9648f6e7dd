// Seasons, parts of day, and the nightly world upkeep they drive.
package engine

import (
	"github.com/talgya/hamlet/internal/config"
)

// SeasonAt returns the season for a 1-based day. Seasons cycle forever.
func SeasonAt(day, daysPerSeason int, seasons []string) string {
	if len(seasons) == 0 {
		return ""
	}
	if daysPerSeason <= 0 {
		daysPerSeason = 1
	}
	if day < 1 {
		day = 1
	}
	return seasons[((day-1)/daysPerSeason)%len(seasons)]
}

// Calendar answers time questions from the configured time policy. The first
// part of the day is the morning, when world events roll; the last is the
// night, when villagers recover and the land regrows.
type Calendar struct {
	cfg config.TimeConfig
}

// NewCalendar wraps a time configuration.
func NewCalendar(cfg config.TimeConfig) Calendar {
	return Calendar{cfg: cfg}
}

// Parts returns the parts of day in order.
func (c Calendar) Parts() []string {
	return c.cfg.PartsOfDay
}

// PartName returns the name of part index i.
func (c Calendar) PartName(i int) string {
	if i < 0 || i >= len(c.cfg.PartsOfDay) {
		return ""
	}
	return c.cfg.PartsOfDay[i]
}

// SeasonAt returns the season of day.
func (c Calendar) SeasonAt(day int) string {
	return SeasonAt(day, c.cfg.DaysPerSeason, c.cfg.Seasons)
}

// IsMorning reports whether part is the first of the day.
func (c Calendar) IsMorning(part int) bool {
	return part == 0
}

// IsNight reports whether part is the last of the day.
func (c Calendar) IsNight(part int) bool {
	return part == len(c.cfg.PartsOfDay)-1
}

// IsWorking reports whether villagers perform role actions during part.
func (c Calendar) IsWorking(part string) bool {
	return config.Contains(c.cfg.WorkingParts, part)
}

// IsHarvest reports whether fields are harvested in season.
func (c Calendar) IsHarvest(season string) bool {
	return config.Contains(c.cfg.HarvestSeasons, season)
}

// IsGrowing reports whether fields are tended in season.
func (c Calendar) IsGrowing(season string) bool {
	return config.Contains(c.cfg.GrowingSeasons, season)
}

// IsWinter reports whether season needs firewood and decays fields.
func (c Calendar) IsWinter(season string) bool {
	return config.Contains(c.cfg.WinterSeasons, season)
}

// nightUpkeep regrows forests and, in winter, decays fields.
func (s *Simulation) nightUpkeep(t Tick) {
	s.Grid.Regrow(s.Config.Grid.ForestRegrow)
	if s.Calendar.IsWinter(t.Season) {
		s.Grid.WinterDecay(s.Config.Grid.WinterFieldDecay)
	}
}
