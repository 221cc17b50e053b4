package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"doctorsportal/middleware"
	"doctorsportal/models"
	bookingSvc "doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingService struct {
	bookings []models.Booking
	created  []models.Booking
}

func (f *fakeBookingService) CreateBooking(b models.Booking) (*bookingSvc.CreateResult, error) {
	for i := range f.bookings {
		existing := f.bookings[i]
		if existing.Treatment == b.Treatment && existing.Date == b.Date && existing.Patient == b.Patient {
			return &bookingSvc.CreateResult{Success: false, Booking: &existing}, nil
		}
	}
	f.bookings = append(f.bookings, b)
	f.created = append(f.created, b)
	return &bookingSvc.CreateResult{Success: true, Booking: &b}, nil
}

func (f *fakeBookingService) GetBookingsByPatient(patient string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func setupBookingRouter(svc bookingSvc.BookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(svc)
	r := gin.New()
	r.GET("/booking", middleware.JWTAuthMiddleware(), h.GetBookingsHandler)
	r.POST("/booking", h.CreateBookingHandler)
	return r
}

func TestGetBookings_OwnBookingsReturned(t *testing.T) {
	svc := &fakeBookingService{bookings: []models.Booking{
		{ID: "b1", Treatment: "Cleaning", Date: "May 16, 2022", Patient: "a@x.com", Slot: "9am"},
		{ID: "b2", Treatment: "Cleaning", Date: "May 16, 2022", Patient: "b@x.com", Slot: "10am"},
	}}
	r := setupBookingRouter(svc)

	token, err := utils.GenerateToken("a@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/booking?patient=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "b1")
	assert.NotContains(t, w.Body.String(), "b2")
}

func TestGetBookings_OtherPatientIsForbidden(t *testing.T) {
	svc := &fakeBookingService{bookings: []models.Booking{
		{ID: "b1", Treatment: "Cleaning", Date: "May 16, 2022", Patient: "a@x.com", Slot: "9am"},
	}}
	r := setupBookingRouter(svc)

	// Authenticated as b@x.com, asking for a@x.com's bookings.
	token, err := utils.GenerateToken("b@x.com", time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/booking?patient=a@x.com", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotContains(t, w.Body.String(), "b1")
}

func TestCreateBooking_DuplicateReportsSuccessFalseWith200(t *testing.T) {
	svc := &fakeBookingService{bookings: []models.Booking{
		{ID: "b1", Treatment: "Cleaning", Date: "May 16, 2022", Patient: "p@x.com", Slot: "9am"},
	}}
	r := setupBookingRouter(svc)

	body := `{"treatment":"Cleaning","date":"May 16, 2022","patient":"p@x.com","slot":"10am"}`
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
	assert.Contains(t, w.Body.String(), "b1")
	assert.Empty(t, svc.created)
}

func TestCreateBooking_NewBookingSucceeds(t *testing.T) {
	svc := &fakeBookingService{}
	r := setupBookingRouter(svc)

	body := `{"treatment":"Cleaning","date":"May 16, 2022","patient":"p@x.com","slot":"9am"}`
	req := httptest.NewRequest(http.MethodPost, "/booking", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	require.Len(t, svc.created, 1)
	assert.Equal(t, "9am", svc.created[0].Slot)
}
