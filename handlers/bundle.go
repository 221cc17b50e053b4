package handlers

import (
	userRepoPkg "doctorsportal/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Catalog endpoints
	ListServices gin.HandlerFunc
	GetAvailable gin.HandlerFunc

	// User endpoints
	GetAllUsers  gin.HandlerFunc
	CheckAdmin   gin.HandlerFunc
	PromoteAdmin gin.HandlerFunc
	UpsertUser   gin.HandlerFunc

	// Booking endpoints
	GetBookings   gin.HandlerFunc
	CreateBooking gin.HandlerFunc

	// Doctor endpoints
	AddDoctor gin.HandlerFunc
}
