package handlers

import (
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// GetBookingsHandler handles GET /booking?patient=<email>. A patient may only
// list their own bookings; any other combination is forbidden regardless of
// whether the requested patient has bookings.
func (h *BookingHandler) GetBookingsHandler(c *gin.Context) {
	patient := c.Query("patient")
	email, ok := middleware.AuthenticatedEmail(c)
	if !ok || patient != email {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden access"})
		return
	}

	bookings, err := h.Svc.GetBookingsByPatient(patient)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.String("patient", patient), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBookingHandler handles POST /booking. A duplicate
// (treatment, date, patient) booking is reported with success=false and the
// existing record, not an HTTP error.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	result, err := h.Svc.CreateBooking(b)
	if err != nil {
		utils.GetLogger().Error("Failed to create booking",
			zap.String("treatment", b.Treatment), zap.String("patient", b.Patient), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
