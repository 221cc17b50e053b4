package serviceRepo

import "doctorsportal/models"

// ServiceRepository defines read access to the treatment catalog. The catalog
// is seeded externally; this service never writes it.
type ServiceRepository interface {
	// GetAll retrieves every service, projected to name and slots only.
	GetAll() ([]models.Service, error)
}
