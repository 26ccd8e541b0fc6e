//go:build unit

package catalog_test

import (
	"testing"

	"seapass-bff/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListing_Room(t *testing.T) {
	listing := catalog.DemoListing()

	t.Run("all demo rooms resolve", func(t *testing.T) {
		cases := []struct {
			roomType catalog.RoomType
			cents    int64
		}{
			{catalog.RoomDeluxe, 89000},
			{catalog.RoomJuniorSuite, 120000},
			{catalog.RoomPresidential, 250000},
		}
		for _, c := range cases {
			room, err := listing.Room(c.roomType)
			require.NoError(t, err)
			assert.Equal(t, c.cents, room.NightlyRateCents)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := listing.Room("penthouse")
		assert.ErrorIs(t, err, catalog.ErrRoomNotFound)
		assert.False(t, listing.HasRoom("penthouse"))
	})
}
