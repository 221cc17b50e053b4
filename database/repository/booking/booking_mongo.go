package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/database"
	"doctorsportal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	coll := database.MongoClient.Database(database.Name).Collection("bookings")
	repo := &MongoBookingRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields frequently used in queries. The
// compound unique index closes the race between the duplicate pre-check and
// the insert: concurrent identical requests surface as a duplicate-key error
// instead of a second booking.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "patient", Value: 1}}},
		{
			Keys: bson.D{
				{Key: "treatment", Value: 1},
				{Key: "date", Value: 1},
				{Key: "patient", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByDate retrieves all bookings made for the given date string.
func (r *MongoBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	return r.getByFilter(bson.M{"date": date})
}

// GetByPatient retrieves all bookings made by the given patient email.
func (r *MongoBookingRepo) GetByPatient(patient string) ([]models.Booking, error) {
	return r.getByFilter(bson.M{"patient": patient})
}

func (r *MongoBookingRepo) getByFilter(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("failed to decode booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}

// FindDuplicate looks up the booking with the same (treatment, date, patient)
// key. Absence is not an error.
func (r *MongoBookingRepo) FindDuplicate(treatment, date, patient string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"treatment": treatment, "date": date, "patient": patient}
	var booking models.Booking
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to look up booking: %w", err)
	}
	return &booking, nil
}

// Create inserts a new booking document.
func (r *MongoBookingRepo) Create(booking *models.Booking) (*mongo.InsertOneResult, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now()

	result, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicateBooking
		}
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return result, nil
}
