//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"seapass-bff/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStayRange(t *testing.T) {
	t.Run("nights for whole-day ranges", func(t *testing.T) {
		cases := []struct {
			name     string
			checkin  time.Time
			checkout time.Time
			nights   int
		}{
			{"single night", date(2026, 10, 10), date(2026, 10, 11), 1},
			{"three nights", date(2026, 10, 10), date(2026, 10, 13), 3},
			{"across month boundary", date(2026, 10, 30), date(2026, 11, 2), 3},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				stay := reservation.NewStayRange(c.checkin, c.checkout)
				assert.Equal(t, c.nights, stay.Nights())
			})
		}
	})

	t.Run("checkout equal to checkin clamps to one night", func(t *testing.T) {
		stay := reservation.NewStayRange(date(2026, 10, 10), date(2026, 10, 10))

		assert.Equal(t, 1, stay.Nights())
		assert.Equal(t, date(2026, 10, 11), stay.Checkout())
	})

	t.Run("checkout before checkin clamps to one night", func(t *testing.T) {
		stay := reservation.NewStayRange(date(2026, 10, 10), date(2026, 10, 5))

		assert.Equal(t, 1, stay.Nights())
		assert.Equal(t, date(2026, 10, 11), stay.Checkout())
	})

	t.Run("time-of-day is truncated before comparison", func(t *testing.T) {
		checkin := time.Date(2026, 10, 10, 15, 30, 0, 0, time.UTC)
		checkout := time.Date(2026, 10, 13, 11, 0, 0, 0, time.UTC)
		stay := reservation.NewStayRange(checkin, checkout)

		assert.Equal(t, 3, stay.Nights())
		assert.Equal(t, date(2026, 10, 10), stay.Checkin())
	})

	t.Run("missing dates yield zero nights", func(t *testing.T) {
		assert.Equal(t, 0, reservation.NewStayRange(time.Time{}, time.Time{}).Nights())
		assert.Equal(t, 0, reservation.NewStayRange(date(2026, 10, 10), time.Time{}).Nights())
		assert.True(t, reservation.NewStayRange(time.Time{}, date(2026, 10, 10)).IsZero())
	})
}

func TestMoney(t *testing.T) {
	t.Run("arithmetic in cents", func(t *testing.T) {
		total := reservation.NewMoney(89000).MulNights(3).Add(reservation.NewMoney(500))
		assert.Equal(t, int64(267500), total.Cents())
	})

	t.Run("tax at basis points truncates", func(t *testing.T) {
		assert.Equal(t, int64(26700), reservation.NewMoney(267000).TaxAt(1000).Cents())
		assert.Equal(t, int64(9), reservation.NewMoney(99).TaxAt(1000).Cents())
	})

	t.Run("zero value", func(t *testing.T) {
		var m reservation.Money
		assert.True(t, m.IsZero())
		assert.False(t, reservation.NewMoney(1).IsZero())
	})
}

func TestGuestCounts(t *testing.T) {
	t.Run("rejects negative counts", func(t *testing.T) {
		_, err := reservation.NewGuestCounts(-1, 0)
		require.ErrorIs(t, err, reservation.ErrNegativeGuestCount)

		_, err = reservation.NewGuestCounts(2, -1)
		require.ErrorIs(t, err, reservation.ErrNegativeGuestCount)
	})

	t.Run("total sums adults and children", func(t *testing.T) {
		guests, err := reservation.NewGuestCounts(2, 3)
		require.NoError(t, err)
		assert.Equal(t, 5, guests.Total())
	})
}

func TestContact(t *testing.T) {
	contact := reservation.NewContact("  João Silva ", " joao.silva@email.com", "11999999999 ", " 12345678900 ")

	assert.Equal(t, "João Silva", contact.Name())
	assert.Equal(t, "joao.silva@email.com", contact.Email())
	assert.Equal(t, "11999999999", contact.Phone())
	assert.Equal(t, "12345678900", contact.TaxID())
}
