package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo creates a new instance of ServiceRepository using MongoDB.
func NewMongoServiceRepo() ServiceRepository {
	coll := database.MongoClient.Database(database.Name).Collection("service")
	return &MongoServiceRepo{coll: coll}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves all services. Only name and slots leave the store; other
// catalog fields stay internal.
func (r *MongoServiceRepo) GetAll() ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"name": 1, "slots": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}
