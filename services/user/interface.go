package user

import (
	userRepo "doctorsportal/database/repository/user"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// UpsertResult carries the store result of a profile upsert together with the
// fresh identity token issued for the email.
type UpsertResult struct {
	Result *mongo.UpdateResult `json:"result"`
	Token  string              `json:"token"`
}

// UserService manages portal users and their admin role.
type UserService interface {
	// GetAllUsers returns every user document verbatim.
	GetAllUsers() ([]bson.M, error)
	// IsAdmin reports whether the user with the given email holds the admin
	// role. An absent user is not an admin.
	IsAdmin(email string) (bool, error)
	// PromoteToAdmin sets role=admin on an existing user. The update result
	// reports zero matches when the user does not exist.
	PromoteToAdmin(email string) (*mongo.UpdateResult, error)
	// UpsertUser replaces or creates the profile for email and issues a
	// signed token bound to that email.
	UpsertUser(email string, profile bson.M) (*UpsertResult, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
