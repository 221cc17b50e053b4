package doctor

import (
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorService manages doctor records.
type DoctorService interface {
	// AddDoctor inserts the admin-supplied doctor document unconditionally.
	AddDoctor(doctor bson.M) (*mongo.InsertOneResult, error)
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

// AddDoctor inserts a doctor record.
func (s *DefaultDoctorService) AddDoctor(doctor bson.M) (*mongo.InsertOneResult, error) {
	result, err := s.Repo.Create(doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to add doctor: %w", err)
	}
	return result, nil
}
