package store_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dungen/store"
)

// newPostgresStore connects to the database named by DUNGEN_POSTGRES_DSN,
// skipping the test when the variable is unset.
func newPostgresStore(t *testing.T) *store.PostgresStore {
	t.Helper()
	dsn := os.Getenv("DUNGEN_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("DUNGEN_POSTGRES_DSN not set; skipping Postgres integration test")
	}
	s, err := store.NewPostgresStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestPostgresStore_SaveLoadRoundTrip(t *testing.T) {
	s := newPostgresStore(t)

	want := generate(t, 42)
	require.NoError(t, s.Save("it-roundtrip", want))

	got, err := s.Load("it-roundtrip")
	require.NoError(t, err)
	require.Equal(t, want, got)

	// Saving again under the same name upserts the row.
	next := generate(t, 43)
	require.NoError(t, s.Save("it-roundtrip", next))

	got, err = s.Load("it-roundtrip")
	require.NoError(t, err)
	assert.Equal(t, next.Seed, got.Seed)

	names, err := s.List()
	require.NoError(t, err)
	assert.Contains(t, names, "it-roundtrip")
}

func TestPostgresStore_Errors(t *testing.T) {
	s := newPostgresStore(t)

	assert.ErrorIs(t, s.Save("bad/name", generate(t, 1)), store.ErrBadName)
	assert.ErrorIs(t, s.Save("it-nil", nil), store.ErrNilDungeon)

	_, err := s.Load("it-never-saved-7f3a")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
