package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDoctorRepo implements DoctorRepository using MongoDB.
type MongoDoctorRepo struct {
	coll *mongo.Collection
}

// NewMongoDoctorRepo creates a new instance of DoctorRepository using MongoDB.
func NewMongoDoctorRepo() DoctorRepository {
	coll := database.MongoClient.Database(database.Name).Collection("doctors")
	return &MongoDoctorRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new doctor document.
func (r *MongoDoctorRepo) Create(doctor bson.M) (*mongo.InsertOneResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.InsertOne(ctx, doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to create doctor: %w", err)
	}
	return result, nil
}
