package doctorRepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// DoctorRepository defines methods for doctor data access. Doctor records are
// admin-supplied documents with no fixed schema; creation is the only
// operation in scope.
type DoctorRepository interface {
	// Create inserts a doctor document as supplied.
	Create(doctor bson.M) (*mongo.InsertOneResult, error)
}
