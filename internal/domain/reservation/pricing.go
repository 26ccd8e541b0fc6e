package reservation

import (
	"seapass-bff/internal/domain/catalog"
)

// ServiceAddon describes one optional extra. PerNight add-ons are
// charged per night of the stay, the rest once per reservation.
type ServiceAddon struct {
	ID             ServiceID
	Name           string
	UnitPriceCents int64
	PerNight       bool
}

// DefaultServiceTable is the add-on pricing used when no table is
// configured. Pending upstream authority these are treated as
// configuration, not business rules.
func DefaultServiceTable() []ServiceAddon {
	return []ServiceAddon{
		{ID: ServiceBreakfast, Name: "Breakfast buffet", UnitPriceCents: 8500, PerNight: true},
		{ID: ServiceAirportTransfer, Name: "Airport transfer", UnitPriceCents: 15000},
		{ID: ServiceSpaPackage, Name: "Spa package", UnitPriceCents: 35000},
		{ID: ServiceLateCheckout, Name: "Late check-out", UnitPriceCents: 12000},
	}
}

const DefaultTaxRateBps = 1000 // 10%

type Breakdown struct {
	Nights           int
	RoomSubtotal     Money
	Taxes            Money
	ServicesSubtotal Money
	Total            Money
}

// Calculator derives price breakdowns from drafts. It holds only
// configuration and is safe to share.
type Calculator struct {
	taxRateBps int64
	table      []ServiceAddon
	services   map[ServiceID]ServiceAddon
}

func NewCalculator(taxRateBps int64, table []ServiceAddon) *Calculator {
	services := make(map[ServiceID]ServiceAddon, len(table))
	ordered := make([]ServiceAddon, 0, len(table))
	for _, addon := range table {
		// last entry wins on duplicate ids, matching the lookup map
		if _, seen := services[addon.ID]; !seen {
			ordered = append(ordered, addon)
		}
		services[addon.ID] = addon
	}
	for i, addon := range ordered {
		ordered[i] = services[addon.ID]
	}
	return &Calculator{taxRateBps: taxRateBps, table: ordered, services: services}
}

func NewDefaultCalculator() *Calculator {
	return NewCalculator(DefaultTaxRateBps, DefaultServiceTable())
}

func (c *Calculator) Addon(id ServiceID) (ServiceAddon, bool) {
	addon, ok := c.services[id]
	return addon, ok
}

// Addons lists the configured table in its configured order.
func (c *Calculator) Addons() []ServiceAddon {
	table := make([]ServiceAddon, len(c.table))
	copy(table, c.table)
	return table
}

// Breakdown is a pure function of the draft and the room's nightly
// rate. With missing dates or no selected room it returns the zero
// breakdown rather than failing, so the summary can render at any
// point of the wizard.
func (c *Calculator) Breakdown(d *Draft, room *catalog.RoomOption) Breakdown {
	if room == nil || d.Stay().IsZero() {
		return Breakdown{}
	}

	nights := d.Stay().Nights()
	roomSubtotal := NewMoney(room.NightlyRateCents).MulNights(nights)
	taxes := roomSubtotal.TaxAt(c.taxRateBps)

	var servicesSubtotal Money
	for _, id := range d.Services() {
		addon, ok := c.services[id]
		if !ok {
			continue
		}
		price := NewMoney(addon.UnitPriceCents)
		if addon.PerNight {
			price = price.MulNights(nights)
		}
		servicesSubtotal = servicesSubtotal.Add(price)
	}

	return Breakdown{
		Nights:           nights,
		RoomSubtotal:     roomSubtotal,
		Taxes:            taxes,
		ServicesSubtotal: servicesSubtotal,
		Total:            roomSubtotal.Add(taxes).Add(servicesSubtotal),
	}
}
