package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "stats"))
	require.NoError(t, err)

	sqliteStore, err := OpenSQLite(filepath.Join(t.TempDir(), "db", "stats.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Load(ctx, "20261014")
			require.ErrorIs(t, err, ErrNotFound)

			rec := Record{Word: "crane", Players: 3, PlayersCorrect: 2, GuessDistribution: [Buckets]int{0, 1, 1}}
			require.NoError(t, s.Save(ctx, "20261014", rec))

			got, err := s.Load(ctx, "20261014")
			require.NoError(t, err)
			assert.Equal(t, rec, got)

			rec.Players = 4
			require.NoError(t, s.Save(ctx, "20261014", rec))
			got, err = s.Load(ctx, "20261014")
			require.NoError(t, err)
			assert.Equal(t, 4, got.Players)

			_, err = s.Load(ctx, "20261015")
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestFileStoreWritesReadableDocument(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	rec := Record{Word: "apple", Players: 1, PlayersCorrect: 1, GuessDistribution: [Buckets]int{0, 0, 1}}
	require.NoError(t, fs.Save(context.Background(), "20261014", rec))

	b, err := os.ReadFile(fs.Path("20261014"))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"word": "apple"`)
	assert.Contains(t, string(b), `"playersCorrect": 1`)
	assert.Contains(t, string(b), `"guessDistribution": [`)

	entries, err := os.ReadDir(fs.Dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileStoreCorruptDocument(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fs.Path("20261014"), []byte("{not json"), 0o644))

	_, err = fs.Load(context.Background(), "20261014")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(context.Background(), "20261014", Record{Word: "crane", Players: 1}))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(context.Background(), "20261014")
	require.NoError(t, err)
	assert.Equal(t, "crane", got.Word)
}
