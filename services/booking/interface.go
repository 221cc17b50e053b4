package booking

import (
	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/tasks"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateResult is the response body for booking creation. A duplicate returns
// Success false together with the existing booking; a fresh insert returns
// Success true with the store's insert result.
type CreateResult struct {
	Success bool                   `json:"success"`
	Booking *models.Booking        `json:"booking,omitempty"`
	Result  *mongo.InsertOneResult `json:"result,omitempty"`
}

// BookingService manages slot reservations.
type BookingService interface {
	// CreateBooking inserts the booking unless one with the same
	// (treatment, date, patient) already exists.
	CreateBooking(booking models.Booking) (*CreateResult, error)
	// GetBookingsByPatient lists all bookings made by the patient email.
	GetBookingsByPatient(patient string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation. Reminders is
// optional; when unset, bookings are created without scheduling reminders.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Reminders *tasks.ReminderScheduler
}
