package engine

import (
	"fmt"

	"github.com/talgya/hamlet/internal/agents"
)

// EventRole is the role shown on records that belong to the world rather
// than to a villager.
const EventRole = "EVENT"

// LogRecord is one entry in the ordered record stream.
type LogRecord struct {
	Day        int               `json:"day"`
	Part       string            `json:"part"`
	VillagerID agents.VillagerID `json:"villager_id"` // 0 for world events
	Role       string            `json:"role"`
	Message    string            `json:"message"`
}

func (r LogRecord) String() string {
	return fmt.Sprintf("Day %d [%s] - Villager %d (%s): %s", r.Day, r.Part, r.VillagerID, r.Role, r.Message)
}

// Snapshot is the state of one living villager at the end of a tick.
type Snapshot struct {
	Day        int               `json:"day"`
	Part       string            `json:"part"`
	VillagerID agents.VillagerID `json:"villager_id"`
	Role       string            `json:"role"`
	Hunger     float64           `json:"hunger"`
	Rest       float64           `json:"rest"`
	Health     float64           `json:"health"`
	Happiness  float64           `json:"happiness"`
	Coins      int               `json:"coins"`
	Food       int               `json:"food"`
	Wood       int               `json:"wood"`
}

// Observer receives records and snapshots as they are produced. Observers
// get copies and cannot reach back into the simulation.
type Observer interface {
	OnRecord(LogRecord)
	OnSnapshot(Snapshot)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Record   func(LogRecord)
	Snapshot func(Snapshot)
}

func (o ObserverFuncs) OnRecord(r LogRecord) {
	if o.Record != nil {
		o.Record(r)
	}
}

func (o ObserverFuncs) OnSnapshot(s Snapshot) {
	if o.Snapshot != nil {
		o.Snapshot(s)
	}
}

func snapshotOf(t Tick, v *agents.Villager) Snapshot {
	return Snapshot{
		Day:        t.Day,
		Part:       t.PartName,
		VillagerID: v.ID,
		Role:       v.Role,
		Hunger:     v.Status.Hunger,
		Rest:       v.Status.Rest,
		Health:     v.Status.Health,
		Happiness:  v.Status.Happiness,
		Coins:      v.Coins,
		Food:       v.Inventory.Count("food"),
		Wood:       v.Inventory.Count("wood"),
	}
}

// logf appends a villager record.
func (s *Simulation) logf(v *agents.Villager, format string, args ...any) {
	s.emit(LogRecord{
		Day:        s.tick.Day,
		Part:       s.tick.PartName,
		VillagerID: v.ID,
		Role:       v.Role,
		Message:    fmt.Sprintf(format, args...),
	})
}

// eventf appends a world event record.
func (s *Simulation) eventf(format string, args ...any) {
	s.emit(LogRecord{
		Day:     s.tick.Day,
		Part:    s.tick.PartName,
		Role:    EventRole,
		Message: fmt.Sprintf(format, args...),
	})
}

func (s *Simulation) emit(r LogRecord) {
	s.Records = append(s.Records, r)
	for _, o := range s.observers {
		o.OnRecord(r)
	}
}
