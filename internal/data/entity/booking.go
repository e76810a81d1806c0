package entity

import (
	"time"
)

// Booking is one entry in the booking ledger. MovieTitle and ShowTime are
// snapshots taken at booking time, so the record keeps showing what the
// customer actually bought even if the catalog changes later.
type Booking struct {
	ID           int
	Reference    string
	CustomerName string
	MovieID      int
	MovieTitle   string
	ShowID       int
	ShowTime     string
	Seats        []int
	TotalPrice   float64
	CouponCode   string
	CreatedAt    time.Time
}
