package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NotNil(t, store)

	var journalMode string
	err = store.db.QueryRow("PRAGMA journal_mode").Scan(&journalMode)
	require.NoError(t, err)
	assert.Equal(t, "wal", journalMode)

	assert.Equal(t, path, store.Path())
	require.NoError(t, store.Close())
}

func TestAppendAndRecent(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	before := time.Now().UTC().Add(-1 * time.Second)

	first, err := store.Append(Record{Kind: "capacity", AvgInputTokens: 80, RequestsDay: 7500, CapacityNeed: 11.8})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	ts, err := time.Parse(time.RFC3339, first.CreatedAt)
	require.NoError(t, err)
	assert.True(t, ts.After(before))

	second, err := store.Append(Record{Kind: "analyze", Model: "gpt-4o-mini", Lines: 3, Tokens: 42})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	records, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, "analyze", records[0].Kind)
	assert.Equal(t, 42, records[0].Tokens)
	assert.Equal(t, first.ID, records[1].ID)
	assert.InDelta(t, 7500.0, records[1].RequestsDay, 1e-9)
}

func TestRecentLimit(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	for i := 0; i < 5; i++ {
		_, err := store.Append(Record{Kind: "capacity"})
		require.NoError(t, err)
	}

	records, err := store.Recent(2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	all, err := store.Recent(0)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

func TestRecentEmpty(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer store.Close()

	records, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}
