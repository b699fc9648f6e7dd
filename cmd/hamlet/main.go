// Command hamlet runs the agrarian settlement simulation.
//
// Usage:
//
//	hamlet [config.yaml]
//
// Without an argument the built-in defaults are used.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"

	"github.com/talgya/hamlet/internal/config"
	"github.com/talgya/hamlet/internal/engine"
	"github.com/talgya/hamlet/internal/persistence"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	slog.Info("hamlet: agrarian settlement simulation")

	// ── Configuration ─────────────────────────────────────────────────
	cfg := config.Default()
	if len(os.Args) > 1 {
		loaded, err := config.Load(os.Args[1])
		if err != nil {
			slog.Error("failed to load config", "path", os.Args[1], "error", err)
			os.Exit(1)
		}
		cfg = loaded
		slog.Info("config loaded", "path", os.Args[1])
	}
	for _, w := range cfg.Warnings() {
		slog.Warn("config", "warning", w)
	}

	// ── World ─────────────────────────────────────────────────────────
	sim, err := engine.NewSimulation(cfg)
	if err != nil {
		slog.Error("failed to build simulation", "error", err)
		os.Exit(1)
	}

	eng := engine.NewEngine(sim.Calendar, cfg.Time.TotalDays)
	sim.Attach(eng)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, stopping after current part", "signal", sig)
		eng.Stop()
	}()

	eng.Run()
	signal.Stop(sigCh)

	// ── Report ────────────────────────────────────────────────────────
	digest := persistence.Digest(sim.Records)
	slog.Info("final report",
		"days", sim.Stats.Day,
		"alive", sim.Stats.Alive,
		"deaths", sim.Stats.Deaths,
		"marriages", sim.Stats.Marriages,
		"storms", sim.Stats.Storms,
		"monsters", fmt.Sprintf("%d (%d slain)", sim.Stats.Monsters, sim.Stats.MonstersSlain),
		"tools_crafted", sim.Stats.ToolsCrafted,
		"tools_broken", sim.Stats.ToolsBroken,
		"food_spoiled", sim.Stats.FoodSpoiled,
		"total_coins", humanize.Comma(int64(sim.Stats.TotalCoins)),
		"records", humanize.Comma(int64(len(sim.Records))),
		"snapshots", humanize.Comma(int64(len(sim.Snapshots))),
		"draws", humanize.Comma(int64(sim.Rng.Draws())),
		"digest", digest,
	)

	// ── Export ────────────────────────────────────────────────────────
	if path := cfg.Export.LogPath; path != "" {
		if err := persistence.ExportLog(path, sim.Records); err != nil {
			slog.Error("log export failed", "path", path, "error", err)
			os.Exit(1)
		}
		info, err := os.Stat(path)
		if err == nil {
			slog.Info("log exported", "path", path, "size", humanize.Bytes(uint64(info.Size())))
		}
	}

	if path := cfg.Export.DatabasePath; path != "" {
		st, err := persistence.Open(path)
		if err != nil {
			slog.Error("failed to open database", "path", path, "error", err)
			os.Exit(1)
		}
		defer st.Close()

		run := persistence.NewRun(sim)
		run.Digest = digest
		id, err := st.SaveRun(run, sim.Records, sim.Snapshots)
		if err != nil {
			slog.Error("run archive failed", "error", err)
			os.Exit(1)
		}
		slog.Info("run archived", "id", id, "path", path)
	}
}
