package reservation

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "confirmed"
	StatusCanceled       Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingPayment, StatusConfirmed, StatusCanceled:
		return true
	default:
		return false
	}
}

type ServiceID string

const (
	ServiceBreakfast       ServiceID = "breakfast"
	ServiceAirportTransfer ServiceID = "airport"
	ServiceSpaPackage      ServiceID = "spa"
	ServiceLateCheckout    ServiceID = "late"
)

func (s ServiceID) String() string {
	return string(s)
}

// BookingRecord is the upstream's answer to a booking creation. Beyond
// id and status the payload is opaque to this service.
type BookingRecord struct {
	ID     string
	Status Status
}
