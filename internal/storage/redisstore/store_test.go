package redisstore_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/cadizz/booking/internal/ledger"
	"github.com/cadizz/booking/internal/storage/redisstore"
)

func newTestStore(t *testing.T) (*redisstore.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	store := redisstore.New(mr.Addr())
	t.Cleanup(func() { require.NoError(t, store.Close()) })

	return store, mr
}

func TestLoadMissingKeyYieldsEmptyMap(t *testing.T) {
	store, _ := newTestStore(t)

	occ, err := store.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, occ)
	require.Empty(t, occ)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, mr := newTestStore(t)

	occ := ledger.Occupancy{
		"std": {"2025-01-10": 2, "2025-01-11": 1},
		"sui": {"2025-01-10": 3},
	}

	require.NoError(t, store.Save(context.Background(), occ))

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, occ, loaded)

	// The whole map lives as one JSON blob under the fixed namespace key.
	raw, err := mr.Get("cadizz:occupancy:v1")
	require.NoError(t, err)
	require.JSONEq(t, `{"std":{"2025-01-10":2,"2025-01-11":1},"sui":{"2025-01-10":3}}`, raw)
}

func TestLoadRejectsCorruptBlob(t *testing.T) {
	store, mr := newTestStore(t)

	require.NoError(t, mr.Set("cadizz:occupancy:v1", "not json"))

	_, err := store.Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode cadizz:occupancy:v1")
}

func TestSaveAndLoadSurfaceServerErrors(t *testing.T) {
	store, mr := newTestStore(t)

	mr.Close()

	err := store.Save(context.Background(), ledger.Occupancy{"std": {"2025-01-10": 1}})
	require.Error(t, err)
	require.Contains(t, err.Error(), "set cadizz:occupancy:v1")

	_, err = store.Load(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "get cadizz:occupancy:v1")
}
