// Package engine runs the settlement: the clock, the per-villager routine,
// the action engine, world events and the market transaction protocol.
package engine

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Tick identifies one part of one day.
type Tick struct {
	Seq      int    // 0-based count of parts since the start of the run
	Day      int    // 1-based
	Part     int    // Index into the configured parts of day
	PartName string
	Season   string
}

func (t Tick) String() string {
	return fmt.Sprintf("%s Day %d, %s", t.Season, t.Day, t.PartName)
}

// Engine drives the simulation forward. It is the only component that
// advances time.
type Engine struct {
	Calendar  Calendar
	TotalDays int
	Tick      Tick // Most recent tick

	running atomic.Bool

	// Callbacks for each tick layer, populated during setup.
	OnPart func(t Tick)  // Every part of every day
	OnDay  func(day int) // After the last part of each day
}

// NewEngine creates an engine for the given calendar and run length.
func NewEngine(cal Calendar, totalDays int) *Engine {
	return &Engine{Calendar: cal, TotalDays: totalDays}
}

// Run iterates day 1..TotalDays and every part of each day. Stop ends the
// run after the current part.
func (e *Engine) Run() {
	e.running.Store(true)
	slog.Info("simulation engine started", "days", e.TotalDays, "parts_per_day", len(e.Calendar.Parts()))

	seq := 0
	for day := 1; day <= e.TotalDays && e.running.Load(); day++ {
		for part := range e.Calendar.Parts() {
			if !e.running.Load() {
				break
			}
			e.step(Tick{
				Seq:      seq,
				Day:      day,
				Part:     part,
				PartName: e.Calendar.PartName(part),
				Season:   e.Calendar.SeasonAt(day),
			})
			seq++
		}
		if e.running.Load() && e.OnDay != nil {
			e.OnDay(day)
		}
	}

	e.running.Store(false)
	slog.Info("simulation engine stopped", "tick", e.Tick.String())
}

// Stop halts the loop after the part in progress. Safe to call from another
// goroutine.
func (e *Engine) Stop() {
	e.running.Store(false)
}

// Running reports whether Run is in progress.
func (e *Engine) Running() bool {
	return e.running.Load()
}

func (e *Engine) step(t Tick) {
	e.Tick = t
	if e.OnPart != nil {
		e.OnPart(t)
	}
}
