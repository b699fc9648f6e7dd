// Package persistence archives finished runs: an SQLite store of run
// metadata, records and snapshots, plus plain-text log export and digests.
// Nothing here is ever read back into a simulation.
package persistence

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/talgya/hamlet/internal/agents"
	"github.com/talgya/hamlet/internal/engine"
)

// Run is the archived summary of one finished simulation.
type Run struct {
	ID         string    `db:"id" json:"id"`
	Seed       int64     `db:"seed" json:"seed"`
	Days       int       `db:"days" json:"days"`
	Digest     string    `db:"digest" json:"digest"`
	Alive      int       `db:"alive" json:"alive"`
	Deaths     int       `db:"deaths" json:"deaths"`
	Marriages  int       `db:"marriages" json:"marriages"`
	TotalCoins int       `db:"total_coins" json:"total_coins"`
	Records    int       `db:"records" json:"records"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// NewRun summarises a finished simulation. The id is left for SaveRun to fill.
func NewRun(sim *engine.Simulation) Run {
	return Run{
		Seed:       sim.Config.Seed,
		Days:       sim.Stats.Day,
		Digest:     Digest(sim.Records),
		Alive:      sim.Stats.Alive,
		Deaths:     sim.Stats.Deaths,
		Marriages:  sim.Stats.Marriages,
		TotalCoins: sim.Stats.TotalCoins,
		Records:    len(sim.Records),
	}
}

// Store wraps a SQLite connection for the run archive.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	if err := ensureDir(path); err != nil {
		return nil, err
	}
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	st := &Store{conn: conn}
	if err := st.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return st, nil
}

// Close closes the database connection.
func (st *Store) Close() error {
	return st.conn.Close()
}

func (st *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		seed INTEGER NOT NULL,
		days INTEGER NOT NULL,
		digest TEXT NOT NULL,
		alive INTEGER NOT NULL,
		deaths INTEGER NOT NULL,
		marriages INTEGER NOT NULL,
		total_coins INTEGER NOT NULL,
		records INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	);

	CREATE TABLE IF NOT EXISTS log_records (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		day INTEGER NOT NULL,
		part TEXT NOT NULL,
		villager_id INTEGER NOT NULL,
		role TEXT NOT NULL,
		message TEXT NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE TABLE IF NOT EXISTS snapshots (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		day INTEGER NOT NULL,
		part TEXT NOT NULL,
		villager_id INTEGER NOT NULL,
		role TEXT NOT NULL,
		hunger REAL NOT NULL,
		rest REAL NOT NULL,
		health REAL NOT NULL,
		happiness REAL NOT NULL,
		coins INTEGER NOT NULL,
		food INTEGER NOT NULL,
		wood INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_records_villager ON log_records(run_id, villager_id);
	CREATE INDEX IF NOT EXISTS idx_snapshots_villager ON snapshots(run_id, villager_id);
	`
	_, err := st.conn.Exec(schema)
	return err
}

// SaveRun writes a run with all of its records and snapshots in one
// transaction. A run without an id gets a fresh one. Returns the id.
func (st *Store) SaveRun(run Run, records []engine.LogRecord, snapshots []engine.Snapshot) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	tx, err := st.conn.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	if _, err := tx.NamedExec(`INSERT INTO runs
		(id, seed, days, digest, alive, deaths, marriages, total_coins, records, created_at)
		VALUES (:id, :seed, :days, :digest, :alive, :deaths, :marriages, :total_coins, :records, :created_at)`,
		run); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	recStmt, err := tx.Preparex(`INSERT INTO log_records
		(run_id, seq, day, part, villager_id, role, message)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer recStmt.Close()

	for i, r := range records {
		if _, err := recStmt.Exec(run.ID, i, r.Day, r.Part, r.VillagerID, r.Role, r.Message); err != nil {
			return "", fmt.Errorf("insert record %d: %w", i, err)
		}
	}

	snapStmt, err := tx.Preparex(`INSERT INTO snapshots
		(run_id, seq, day, part, villager_id, role, hunger, rest, health, happiness, coins, food, wood)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", err
	}
	defer snapStmt.Close()

	for i, s := range snapshots {
		if _, err := snapStmt.Exec(run.ID, i, s.Day, s.Part, s.VillagerID, s.Role,
			s.Hunger, s.Rest, s.Health, s.Happiness, s.Coins, s.Food, s.Wood); err != nil {
			return "", fmt.Errorf("insert snapshot %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	slog.Info("run archived", "id", run.ID, "records", len(records), "snapshots", len(snapshots))
	return run.ID, nil
}

// Runs lists archived runs, oldest first.
func (st *Store) Runs() ([]Run, error) {
	var runs []Run
	err := st.conn.Select(&runs, "SELECT * FROM runs ORDER BY created_at, id")
	return runs, err
}

// GetRun returns one archived run.
func (st *Store) GetRun(id string) (Run, error) {
	var run Run
	err := st.conn.Get(&run, "SELECT * FROM runs WHERE id = ?", id)
	return run, err
}

type recordRow struct {
	Day        int    `db:"day"`
	Part       string `db:"part"`
	VillagerID uint64 `db:"villager_id"`
	Role       string `db:"role"`
	Message    string `db:"message"`
}

// RunRecords returns the record stream of a run in its original order.
func (st *Store) RunRecords(id string) ([]engine.LogRecord, error) {
	var rows []recordRow
	if err := st.conn.Select(&rows,
		"SELECT day, part, villager_id, role, message FROM log_records WHERE run_id = ? ORDER BY seq",
		id,
	); err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	out := make([]engine.LogRecord, len(rows))
	for i, r := range rows {
		out[i] = engine.LogRecord{
			Day:        r.Day,
			Part:       r.Part,
			VillagerID: agents.VillagerID(r.VillagerID),
			Role:       r.Role,
			Message:    r.Message,
		}
	}
	return out, nil
}

// SnapshotCount returns how many snapshots a run archived.
func (st *Store) SnapshotCount(id string) (int, error) {
	var n int
	err := st.conn.Get(&n, "SELECT COUNT(*) FROM snapshots WHERE run_id = ?", id)
	return n, err
}
