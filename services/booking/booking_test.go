package booking

import (
	"testing"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/mongo"
)

type fakeBookingRepo struct {
	bookings []models.Booking
	// raceOnCreate simulates a concurrent identical insert winning between
	// the duplicate pre-check and the insert.
	raceOnCreate *models.Booking
}

func (f *fakeBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Date == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) GetByPatient(patient string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Patient == patient {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) FindDuplicate(treatment, date, patient string) (*models.Booking, error) {
	for i := range f.bookings {
		b := f.bookings[i]
		if b.Treatment == treatment && b.Date == date && b.Patient == patient {
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) Create(b *models.Booking) (*mongo.InsertOneResult, error) {
	if f.raceOnCreate != nil {
		f.bookings = append(f.bookings, *f.raceOnCreate)
		f.raceOnCreate = nil
		return nil, bookingRepo.ErrDuplicateBooking
	}
	if b.ID == "" {
		b.ID = "generated-id"
	}
	f.bookings = append(f.bookings, *b)
	return &mongo.InsertOneResult{InsertedID: b.ID}, nil
}

func TestCreateBooking_InsertsWhenNoDuplicate(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}

	result, err := svc.CreateBooking(models.Booking{
		Treatment: "Cleaning", Date: "May 16, 2022", Patient: "p@x.com", Slot: "9am",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	require.NotNil(t, result.Result)
	require.Len(t, repo.bookings, 1)
	assert.Equal(t, "9am", repo.bookings[0].Slot)
}

func TestCreateBooking_DuplicateReturnsExistingWithoutInsert(t *testing.T) {
	existing := models.Booking{
		ID: "b1", Treatment: "Cleaning", Date: "May 16, 2022", Patient: "p@x.com", Slot: "9am",
	}
	repo := &fakeBookingRepo{bookings: []models.Booking{existing}}
	svc := &DefaultBookingService{Repo: repo}

	result, err := svc.CreateBooking(models.Booking{
		Treatment: "Cleaning", Date: "May 16, 2022", Patient: "p@x.com", Slot: "10am",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Booking)
	assert.Equal(t, "b1", result.Booking.ID)
	assert.Equal(t, "9am", result.Booking.Slot, "the original booking is returned")
	assert.Len(t, repo.bookings, 1, "no second insert")
}

func TestCreateBooking_SecondIdenticalRequestIsIdempotent(t *testing.T) {
	repo := &fakeBookingRepo{}
	svc := &DefaultBookingService{Repo: repo}
	b := models.Booking{Treatment: "Cleaning", Date: "May 16, 2022", Patient: "p@x.com", Slot: "9am"}

	first, err := svc.CreateBooking(b)
	require.NoError(t, err)
	assert.True(t, first.Success)

	second, err := svc.CreateBooking(b)
	require.NoError(t, err)
	assert.False(t, second.Success)
	require.NotNil(t, second.Booking)
	assert.Equal(t, first.Booking.ID, second.Booking.ID)
	assert.Len(t, repo.bookings, 1)
}

func TestCreateBooking_RaceLosesToUniqueIndex(t *testing.T) {
	winner := models.Booking{
		ID: "winner", Treatment: "Cleaning", Date: "May 16, 2022", Patient: "p@x.com", Slot: "9am",
	}
	repo := &fakeBookingRepo{raceOnCreate: &winner}
	svc := &DefaultBookingService{Repo: repo}

	result, err := svc.CreateBooking(models.Booking{
		Treatment: "Cleaning", Date: "May 16, 2022", Patient: "p@x.com", Slot: "9am",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	require.NotNil(t, result.Booking)
	assert.Equal(t, "winner", result.Booking.ID)
	assert.Len(t, repo.bookings, 1)
}

func TestGetBookingsByPatient_FiltersByPatient(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []models.Booking{
		{ID: "b1", Patient: "a@x.com"},
		{ID: "b2", Patient: "b@x.com"},
		{ID: "b3", Patient: "a@x.com"},
	}}
	svc := &DefaultBookingService{Repo: repo}

	bookings, err := svc.GetBookingsByPatient("a@x.com")
	require.NoError(t, err)
	require.Len(t, bookings, 2)
	assert.Equal(t, "b1", bookings[0].ID)
	assert.Equal(t, "b3", bookings[1].ID)
}
