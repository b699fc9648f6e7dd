package persistence

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hamlet/internal/engine"
)

func sampleRecords() []engine.LogRecord {
	return []engine.LogRecord{
		{Day: 1, Part: "Morning", VillagerID: 2, Role: "Hunter", Message: "Bought 1 bow for 5 coins. Market now has 4 left."},
		{Day: 1, Part: "Morning", Role: engine.EventRole, Message: "Storm (a storm batters the land) reduced resources in ~25 tiles."},
		{Day: 1, Part: "Night", VillagerID: 1, Role: "Farmer", Message: "Ate 1 food to increase hunger."},
	}
}

func TestWriteLogFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLog(&buf, sampleRecords()[:2]))
	assert.Equal(t,
		"Day 1 [Morning] - Villager 2 (Hunter): Bought 1 bow for 5 coins. Market now has 4 left.\n"+
			"Day 1 [Morning] - Villager 0 (EVENT): Storm (a storm batters the land) reduced resources in ~25 tiles.\n",
		buf.String())
}

func TestExportLogRoundTrip(t *testing.T) {
	recs := sampleRecords()
	for _, name := range []string{"run.log", "run.log.lz4"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, ExportLog(path, recs))
		lines, err := ReadLog(path)
		require.NoError(t, err)
		require.Len(t, lines, len(recs), name)
		for i, r := range recs {
			assert.Equal(t, r.String(), lines[i])
		}
	}
}

func TestDigestIsStable(t *testing.T) {
	a := Digest(sampleRecords())
	assert.Len(t, a, 64)
	assert.Equal(t, a, Digest(sampleRecords()))

	changed := sampleRecords()
	changed[2].Message = "Ate 2 food."
	assert.NotEqual(t, a, Digest(changed))
}

func TestExportCreatesMissingDirectories(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data", "runs")

	logPath := filepath.Join(dir, "hamlet.log.lz4")
	require.NoError(t, ExportLog(logPath, sampleRecords()))
	got, err := ReadLog(logPath)
	require.NoError(t, err)
	assert.Len(t, got, len(sampleRecords()))

	st, err := Open(filepath.Join(dir, "nested", "hamlet.db"))
	require.NoError(t, err)
	require.NoError(t, st.Close())
}

func TestStoreSaveAndList(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()

	recs := sampleRecords()
	snaps := []engine.Snapshot{
		{Day: 1, Part: "Morning", VillagerID: 1, Role: "Farmer", Hunger: 9, Rest: 9.5, Health: 10, Happiness: 10, Coins: 5, Food: 3, Wood: 2},
	}
	run := Run{Seed: 42, Days: 1, Digest: Digest(recs), Alive: 4, Records: len(recs)}

	id, err := st.SaveRun(run, recs, snaps)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	runs, err := st.Runs()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, id, runs[0].ID)
	assert.Equal(t, int64(42), runs[0].Seed)
	assert.Equal(t, run.Digest, runs[0].Digest)

	got, err := st.RunRecords(id)
	require.NoError(t, err)
	assert.Equal(t, recs, got)

	n, err := st.SnapshotCount(id)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	one, err := st.GetRun(id)
	require.NoError(t, err)
	assert.Equal(t, 4, one.Alive)
}

func TestStoreKeepsRunsApart(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	defer st.Close()

	recs := sampleRecords()
	first, err := st.SaveRun(Run{Seed: 1}, recs, nil)
	require.NoError(t, err)
	second, err := st.SaveRun(Run{Seed: 2}, recs[:1], nil)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	got, err := st.RunRecords(second)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = st.SaveRun(Run{ID: first}, nil, nil)
	assert.Error(t, err, "run ids are unique")
}
