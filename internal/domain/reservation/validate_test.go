//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"seapass-bff/internal/domain/catalog"
	"seapass-bff/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fields(errs []reservation.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func validDraft(t *testing.T) *reservation.Draft {
	t.Helper()
	d := reservation.NewDraft(catalog.DemoListingID)
	require.NoError(t, d.SelectRoom(catalog.DemoListing(), catalog.RoomDeluxe))
	d.SetStay(time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC), time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC))
	d.SetContact(reservation.NewContact("João Silva", "joao.silva@email.com", "11999999999", "12345678900"))
	d.AcceptTerms(true)
	return d
}

func TestValidate(t *testing.T) {
	t.Run("valid draft has no violations", func(t *testing.T) {
		assert.Empty(t, reservation.Validate(validDraft(t)))
	})

	t.Run("empty draft reports every violation at once", func(t *testing.T) {
		d := reservation.NewDraft(catalog.DemoListingID)

		got := fields(reservation.Validate(d))
		assert.ElementsMatch(t, []string{
			"fullname", "email", "phone", "cpf",
			"room", "checkin", "checkout", "terms",
		}, got)
	})

	t.Run("single missing field reports only that field", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*reservation.Draft)
			field  string
		}{
			{
				name: "missing name",
				mutate: func(d *reservation.Draft) {
					d.SetContact(reservation.NewContact("", "joao.silva@email.com", "11999999999", "12345678900"))
				},
				field: "fullname",
			},
			{
				name: "missing email",
				mutate: func(d *reservation.Draft) {
					d.SetContact(reservation.NewContact("João Silva", "", "11999999999", "12345678900"))
				},
				field: "email",
			},
			{
				name: "whitespace-only phone",
				mutate: func(d *reservation.Draft) {
					d.SetContact(reservation.NewContact("João Silva", "joao.silva@email.com", "   ", "12345678900"))
				},
				field: "phone",
			},
			{
				name: "checkin without checkout",
				mutate: func(d *reservation.Draft) {
					d.SetStay(time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC), time.Time{})
				},
				field: "checkout",
			},
			{
				name:   "terms not accepted",
				mutate: func(d *reservation.Draft) { d.AcceptTerms(false) },
				field:  "terms",
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				d := validDraft(t)
				c.mutate(d)

				got := reservation.Validate(d)
				require.Len(t, got, 1)
				assert.Equal(t, c.field, got[0].Field)
				assert.NotEmpty(t, got[0].Message)
			})
		}
	})

	t.Run("clamped stay passes date ordering check", func(t *testing.T) {
		d := validDraft(t)
		day := time.Date(2026, 10, 10, 0, 0, 0, 0, time.UTC)
		d.SetStay(day, day)

		assert.Empty(t, reservation.Validate(d))
	})
}
