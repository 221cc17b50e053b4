package models

import "time"

// Booking reserves one slot of a treatment for a patient on a date.
// Date is the human-readable form the portal has always used
// (e.g. "May 16, 2022") and joins against availability by string equality.
type Booking struct {
	ID          string    `bson:"id,omitempty" json:"id,omitempty"`
	Treatment   string    `bson:"treatment" json:"treatment"`
	Date        string    `bson:"date" json:"date"`
	Patient     string    `bson:"patient" json:"patient"`
	PatientName string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Slot        string    `bson:"slot" json:"slot"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt   time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}
