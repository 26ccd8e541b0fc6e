package reservation

import (
	"sort"
	"strings"
	"time"

	"seapass-bff/internal/domain/catalog"
)

// Draft is the in-progress reservation being assembled by the wizard.
// It lives for one page session, mutated by discrete user events; the
// price breakdown is always derived from it, never stored on it.
type Draft struct {
	listingID       string
	roomType        catalog.RoomType
	stay            StayRange
	guests          GuestCounts
	services        map[ServiceID]struct{}
	contact         Contact
	specialRequests string
	termsAccepted   bool
}

func NewDraft(listingID string) *Draft {
	return &Draft{
		listingID: listingID,
		guests:    GuestCounts{adults: 2},
		services:  make(map[ServiceID]struct{}),
	}
}

// SelectRoom sets the room type after checking it against the loaded
// catalog, so a draft can never point at a room the listing does not
// offer.
func (d *Draft) SelectRoom(listing *catalog.Listing, roomType catalog.RoomType) error {
	if _, err := listing.Room(roomType); err != nil {
		return err
	}
	d.roomType = roomType
	return nil
}

func (d *Draft) SetStay(checkin, checkout time.Time) {
	d.stay = NewStayRange(checkin, checkout)
}

func (d *Draft) SetGuests(adults, children int) error {
	guests, err := NewGuestCounts(adults, children)
	if err != nil {
		return err
	}
	d.guests = guests
	return nil
}

// ToggleService is idempotent: enabling an already enabled service or
// disabling an absent one is a no-op.
func (d *Draft) ToggleService(id ServiceID, enabled bool) {
	if enabled {
		d.services[id] = struct{}{}
		return
	}
	delete(d.services, id)
}

func (d *Draft) SetContact(contact Contact) {
	d.contact = contact
}

func (d *Draft) SetSpecialRequests(notes string) {
	d.specialRequests = strings.TrimSpace(notes)
}

func (d *Draft) AcceptTerms(accepted bool) {
	d.termsAccepted = accepted
}

func (d *Draft) ListingID() string { return d.listingID }

func (d *Draft) RoomType() catalog.RoomType { return d.roomType }

func (d *Draft) Stay() StayRange { return d.stay }

func (d *Draft) Guests() GuestCounts { return d.guests }

func (d *Draft) Contact() Contact { return d.contact }

func (d *Draft) SpecialRequests() string { return d.specialRequests }

func (d *Draft) TermsAccepted() bool { return d.termsAccepted }

func (d *Draft) HasService(id ServiceID) bool {
	_, ok := d.services[id]
	return ok
}

// Services returns the selected add-on ids in stable order.
func (d *Draft) Services() []ServiceID {
	ids := make([]ServiceID, 0, len(d.services))
	for id := range d.services {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
