package history_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/adapters/outbound/history"
	"github.com/TeiNam/oracle-migration-analyzer-sub002/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenCreatesDatabase(t *testing.T) {
	root := t.TempDir()

	h, err := history.Open(root)
	require.NoError(t, err)
	defer h.Close()

	_, err = os.Stat(filepath.Join(root, ".oramigrate", "history.db"))
	assert.NoError(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	root := t.TempDir()
	h, err := history.Open(root)
	require.NoError(t, err)
	defer h.Close()

	entries := []domain.RunEntry{
		{Timestamp: "2026-08-25T10:00:00Z", Path: "a.sql", Kind: "sql", Target: "postgresql", Score: 1.5, Level: "SIMPLE"},
		{Timestamp: "2026-08-25T10:00:00Z", Path: "b.pkb", Kind: "plsql", ObjectType: "PACKAGE", Target: "postgresql", Score: 6.2, Level: "COMPLEX"},
	}
	require.NoError(t, h.Save(root, entries))

	got, err := h.Load(root)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a.sql", got[0].Path)
	assert.Equal(t, "PACKAGE", got[1].ObjectType)
	assert.InDelta(t, 6.2, got[1].Score, 1e-9)
}

func TestLoad_Empty(t *testing.T) {
	h, err := history.Open(t.TempDir())
	require.NoError(t, err)
	defer h.Close()

	got, err := h.Load(".")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSave_AppendsAcrossRuns(t *testing.T) {
	root := t.TempDir()
	h, err := history.Open(root)
	require.NoError(t, err)

	first := []domain.RunEntry{{Timestamp: "2026-08-24T09:00:00Z", Path: "a.sql", Kind: "sql", Target: "mysql", Score: 2, Level: "SIMPLE"}}
	second := []domain.RunEntry{{Timestamp: "2026-08-25T09:00:00Z", Path: "a.sql", Kind: "sql", Target: "mysql", Score: 3, Level: "SIMPLE"}}
	require.NoError(t, h.Save(root, first))
	require.NoError(t, h.Save(root, second))
	require.NoError(t, h.Close())

	// Reopening sees both runs in timestamp order.
	h, err = history.Open(root)
	require.NoError(t, err)
	defer h.Close()

	got, err := h.Load(root)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-08-24T09:00:00Z", got[0].Timestamp)
	assert.Equal(t, "2026-08-25T09:00:00Z", got[1].Timestamp)
}
