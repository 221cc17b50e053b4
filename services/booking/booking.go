package booking

import (
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// CreateBooking checks for an existing (treatment, date, patient) booking
// before inserting. The check and the insert are not atomic; the unique index
// in the repository catches the race and is mapped to the same duplicate
// response.
func (s *DefaultBookingService) CreateBooking(booking models.Booking) (*CreateResult, error) {
	existing, err := s.Repo.FindDuplicate(booking.Treatment, booking.Date, booking.Patient)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing booking: %w", err)
	}
	if existing != nil {
		return &CreateResult{Success: false, Booking: existing}, nil
	}

	result, err := s.Repo.Create(&booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			existing, ferr := s.Repo.FindDuplicate(booking.Treatment, booking.Date, booking.Patient)
			if ferr != nil {
				return nil, fmt.Errorf("failed to fetch existing booking: %w", ferr)
			}
			return &CreateResult{Success: false, Booking: existing}, nil
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.Reminders.ScheduleForBooking(booking); err != nil {
		// The booking stands even when the reminder queue is down.
		utils.GetLogger().Warn("Failed to schedule booking reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}

	return &CreateResult{Success: true, Booking: &booking, Result: result}, nil
}

// GetBookingsByPatient lists the patient's bookings.
func (s *DefaultBookingService) GetBookingsByPatient(patient string) ([]models.Booking, error) {
	bookings, err := s.Repo.GetByPatient(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for %s: %w", patient, err)
	}
	return bookings, nil
}
