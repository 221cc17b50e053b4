package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"doctorsportal/models"

	"github.com/hibiken/asynq"
)

const TypeBookingReminder = "booking:reminder"

// DateLayout is the layout of the portal's human-readable booking dates,
// e.g. "May 16, 2022".
const DateLayout = "January 2, 2006"

// reminderHour is the local hour of the appointment day at which the
// reminder fires.
const reminderHour = 8

// ReminderPayload is the task body for a booking reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Treatment string `json:"treatment"`
	Date      string `json:"date"`
	Patient   string `json:"patient"`
	Slot      string `json:"slot"`
}

// NewReminderTask builds an asynq task scheduled for the given fire time.
func NewReminderTask(payload ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler enqueues booking reminder tasks. A nil scheduler or nil
// client is a no-op so booking creation never depends on the queue.
type ReminderScheduler struct {
	Client *asynq.Client
}

// ScheduleForBooking queues a reminder for the morning of the booking's date.
func (s *ReminderScheduler) ScheduleForBooking(booking models.Booking) error {
	if s == nil || s.Client == nil {
		return nil
	}

	day, err := time.ParseInLocation(DateLayout, booking.Date, time.Local)
	if err != nil {
		return fmt.Errorf("unparseable booking date %q: %w", booking.Date, err)
	}
	fireAt := day.Add(reminderHour * time.Hour)

	payload := ReminderPayload{
		BookingID: booking.ID,
		Treatment: booking.Treatment,
		Date:      booking.Date,
		Patient:   booking.Patient,
		Slot:      booking.Slot,
	}
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}

	if _, err := s.Client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}
