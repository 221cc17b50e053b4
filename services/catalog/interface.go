package catalog

import (
	bookingRepo "doctorsportal/database/repository/booking"
	serviceRepo "doctorsportal/database/repository/service"
	"doctorsportal/models"
)

// CatalogService exposes the treatment catalog and per-date availability.
type CatalogService interface {
	// ListServices returns the full catalog, name and slots only.
	ListServices() ([]models.Service, error)
	// Availability returns the catalog with each service's slots reduced to
	// those not yet booked on the given date. An empty date falls back to
	// DefaultDate.
	Availability(date string) ([]models.Service, error)
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Services serviceRepo.ServiceRepository
	Bookings bookingRepo.BookingRepository
}
