package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "runs.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(dbPath)
	assert.NoError(t, err)
}

func TestSaveAndRecentRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Level: "level1", Outcome: OutcomeGameOver, Reason: "You fell!", Duration: 4.5, Ticks: 270, Shape: "Square"},
		{Level: "level1", Outcome: OutcomeWin, Duration: 31.2, Ticks: 1872, Shape: "Circle", Kills: 2, Shots: 5, Flights: 3},
		{Level: "level2", Outcome: OutcomeAborted, Duration: 1},
	}
	for _, r := range runs {
		id, err := store.SaveRun(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	got, err := store.RecentRuns("level1", 10)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Newest first
	assert.Equal(t, OutcomeWin, got[0].Outcome)
	assert.Equal(t, "Circle", got[0].Shape)
	assert.Equal(t, 2, got[0].Kills)
	assert.Equal(t, 5, got[0].Shots)
	assert.Equal(t, 3, got[0].Flights)
	assert.InDelta(t, 31.2, got[0].Duration, 1e-9)
	assert.Equal(t, "You fell!", got[1].Reason)

	all, err := store.RecentRuns("", 10)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	limited, err := store.RecentRuns("", 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestBestRun(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestRun("level1")
	require.NoError(t, err)
	assert.Nil(t, best)

	for _, d := range []float64{40, 25.5, 33} {
		_, err := store.SaveRun(RunRecord{Level: "level1", Outcome: OutcomeWin, Duration: d})
		require.NoError(t, err)
	}
	_, err = store.SaveRun(RunRecord{Level: "level1", Outcome: OutcomeGameOver, Duration: 2})
	require.NoError(t, err)

	best, err = store.BestRun("level1")
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.InDelta(t, 25.5, best.Duration, 1e-9)
}
