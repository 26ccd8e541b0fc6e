package reservation

type FieldError struct {
	Field   string
	Message string
}

// Validate reports every violation at once instead of failing fast, so
// the wizard can highlight all invalid fields in a single pass. An
// empty result means the draft is submittable.
func Validate(d *Draft) []FieldError {
	var errs []FieldError

	contact := d.Contact()
	if contact.Name() == "" {
		errs = append(errs, FieldError{Field: "fullname", Message: "full name is required"})
	}
	if contact.Email() == "" {
		errs = append(errs, FieldError{Field: "email", Message: "e-mail is required"})
	}
	if contact.Phone() == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "phone is required"})
	}
	if contact.TaxID() == "" {
		errs = append(errs, FieldError{Field: "cpf", Message: "tax id is required"})
	}

	if d.RoomType().IsZero() {
		errs = append(errs, FieldError{Field: "room", Message: "select a room type"})
	}

	stay := d.Stay()
	if stay.Checkin().IsZero() {
		errs = append(errs, FieldError{Field: "checkin", Message: "check-in date is required"})
	}
	if stay.Checkout().IsZero() {
		errs = append(errs, FieldError{Field: "checkout", Message: "check-out date is required"})
	}
	if !stay.IsZero() && !stay.Checkout().After(stay.Checkin()) {
		errs = append(errs, FieldError{Field: "checkout", Message: "check-out must be after check-in"})
	}

	if !d.TermsAccepted() {
		errs = append(errs, FieldError{Field: "terms", Message: "terms and conditions must be accepted"})
	}

	return errs
}
