package bookingRepo

import "errors"

// ErrDuplicateBooking is returned when an insert hits the unique
// (treatment, date, patient) index.
var ErrDuplicateBooking = errors.New("booking already exists")
