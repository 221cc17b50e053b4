package models

// Service is a bookable treatment in the day's catalog. Slots is the fixed
// list of time labels the clinic offers for it; the availability resolver
// returns a copy with booked labels removed.
type Service struct {
	Name  string   `bson:"name" json:"name"`
	Slots []string `bson:"slots" json:"slots"`
}
