package userRepo

import (
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UserRepository defines methods for user data access. Users are keyed by
// email; profile documents may carry arbitrary client-supplied fields, so the
// listing returns raw documents.
type UserRepository interface {
	// GetAll retrieves all user documents verbatim.
	GetAll() ([]bson.M, error)
	// GetByEmail retrieves a user by email, or nil when none exists.
	GetByEmail(email string) (*models.User, error)
	// Upsert replaces or creates the user document for email with a $set of
	// the given profile fields.
	Upsert(email string, profile bson.M) (*mongo.UpdateResult, error)
	// SetRole sets the role field on the user with the given email. The
	// result reports zero matches when no such user exists; no document is
	// created.
	SetRole(email, role string) (*mongo.UpdateResult, error)
}
