package reservation

import (
	"errors"
	"strings"
	"time"
)

type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MulNights(nights int) Money {
	return Money{cents: m.cents * int64(nights)}
}

// TaxAt computes the tax share of the amount at the given rate in basis
// points, truncating fractional cents.
func (m Money) TaxAt(bps int64) Money {
	return Money{cents: m.cents * bps / 10000}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// StayRange is a half-open [checkin, checkout) range of civil dates.
// When both dates are present, a checkout on or before checkin is
// clamped to checkin+1 day, so a populated range never yields a
// non-positive stay. A missing date leaves the range zero.
type StayRange struct {
	checkin  time.Time
	checkout time.Time
}

func NewStayRange(checkin, checkout time.Time) StayRange {
	checkin = truncateToDay(checkin)
	checkout = truncateToDay(checkout)
	if !checkin.IsZero() && !checkout.IsZero() && !checkout.After(checkin) {
		checkout = checkin.AddDate(0, 0, 1)
	}
	return StayRange{checkin: checkin, checkout: checkout}
}

func (s StayRange) Checkin() time.Time {
	return s.checkin
}

func (s StayRange) Checkout() time.Time {
	return s.checkout
}

func (s StayRange) IsZero() bool {
	return s.checkin.IsZero() || s.checkout.IsZero()
}

// Nights is ceil((checkout-checkin)/24h), at least 1 for a populated
// range and 0 when either date is missing.
func (s StayRange) Nights() int {
	if s.IsZero() {
		return 0
	}
	diff := s.checkout.Sub(s.checkin)
	nights := int((diff + 24*time.Hour - 1) / (24 * time.Hour))
	if nights < 1 {
		nights = 1
	}
	return nights
}

func truncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

var ErrNegativeGuestCount = errors.New("guest counts cannot be negative")

// GuestCounts trusts callers for the adults>=1 floor; the wizard UI
// enforces it and the engine only rejects negative values.
type GuestCounts struct {
	adults   int
	children int
}

func NewGuestCounts(adults, children int) (GuestCounts, error) {
	if adults < 0 || children < 0 {
		return GuestCounts{}, ErrNegativeGuestCount
	}
	return GuestCounts{adults: adults, children: children}, nil
}

func (g GuestCounts) Adults() int {
	return g.adults
}

func (g GuestCounts) Children() int {
	return g.children
}

func (g GuestCounts) Total() int {
	return g.adults + g.children
}

type Contact struct {
	name  string
	email string
	phone string
	taxID string
}

func NewContact(name, email, phone, taxID string) Contact {
	return Contact{
		name:  strings.TrimSpace(name),
		email: strings.TrimSpace(email),
		phone: strings.TrimSpace(phone),
		taxID: strings.TrimSpace(taxID),
	}
}

func (c Contact) Name() string { return c.name }

func (c Contact) Email() string { return c.email }

func (c Contact) Phone() string { return c.phone }

func (c Contact) TaxID() string { return c.taxID }
