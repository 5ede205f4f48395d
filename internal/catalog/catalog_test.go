package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cadizz/booking/internal/catalog"
)

func TestDefaultCatalog(t *testing.T) {
	cat := catalog.Default()

	types := cat.List()
	require.Len(t, types, 3)

	var ids []string
	for _, rt := range types {
		ids = append(ids, rt.ID)
	}
	require.Equal(t, []string{"std", "dbl", "sui"}, ids)

	sui, err := cat.Get("sui")
	require.NoError(t, err)
	require.Equal(t, "Suite Cadizz", sui.Name)
	require.InDelta(t, 140, sui.PricePerNight, 1e-9)
	require.Equal(t, 3, sui.Stock)
}

func TestGetNotFound(t *testing.T) {
	cat := catalog.Default()

	_, err := cat.Get("attic")
	require.ErrorIs(t, err, catalog.ErrRoomTypeNotFound)
}

func TestNewRejectsBadTypes(t *testing.T) {
	_, err := catalog.New([]catalog.RoomType{
		{ID: "std", Name: "Standard", Stock: 1},
		{ID: "std", Name: "Standard again", Stock: 1},
	})
	require.Error(t, err)

	_, err = catalog.New([]catalog.RoomType{{ID: "std", Stock: -1}})
	require.Error(t, err)

	_, err = catalog.New([]catalog.RoomType{{ID: "std", PricePerNight: -10}})
	require.Error(t, err)

	_, err = catalog.New([]catalog.RoomType{{Name: "no id"}})
	require.Error(t, err)
}

func TestListReturnsACopy(t *testing.T) {
	cat := catalog.Default()

	types := cat.List()
	types[0].Stock = 999

	fresh, err := cat.Get("std")
	require.NoError(t, err)
	require.Equal(t, 6, fresh.Stock)
}
