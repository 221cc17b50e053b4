package catalog

import (
	"fmt"

	"doctorsportal/models"
)

// DefaultDate is the date key used when a caller omits one. Existing clients
// depend on this fixed literal, so it is not replaced with the current date.
const DefaultDate = "May 16, 2022"

// ListServices returns the full service catalog.
func (s *DefaultCatalogService) ListServices() ([]models.Service, error) {
	services, err := s.Services.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// Availability fetches the catalog and the date's bookings, then resolves the
// open slots per service.
func (s *DefaultCatalogService) Availability(date string) ([]models.Service, error) {
	if date == "" {
		date = DefaultDate
	}

	services, err := s.Services.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}
	bookings, err := s.Bookings.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", date, err)
	}

	return resolveAvailability(services, bookings), nil
}

// resolveAvailability replaces each service's slot list with the subsequence
// of slots not booked on the date, preserving the original order. A booked
// label removes every occurrence of that label, so a catalog with repeated
// labels loses all of them to a single booking. Fully booked services keep an
// empty, non-nil slot list.
func resolveAvailability(services []models.Service, bookings []models.Booking) []models.Service {
	for i := range services {
		booked := make(map[string]struct{})
		for _, b := range bookings {
			if b.Treatment == services[i].Name {
				booked[b.Slot] = struct{}{}
			}
		}

		available := make([]string, 0, len(services[i].Slots))
		for _, slot := range services[i].Slots {
			if _, taken := booked[slot]; !taken {
				available = append(available, slot)
			}
		}
		services[i].Slots = available
	}
	return services
}
