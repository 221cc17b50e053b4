package bookingRepo

import (
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByDate retrieves all bookings whose date field equals date.
	GetByDate(date string) ([]models.Booking, error)
	// GetByPatient retrieves all bookings made by the given patient email.
	GetByPatient(patient string) ([]models.Booking, error)
	// FindDuplicate returns the booking matching (treatment, date, patient),
	// or nil when none exists.
	FindDuplicate(treatment, date, patient string) (*models.Booking, error)
	// Create inserts a new booking record.
	Create(booking *models.Booking) (*mongo.InsertOneResult, error)
}
