package response

import (
	"time"

	"movie-booking/internal/data/entity"
)

type BookingResponse struct {
	ID           int       `json:"id"`
	Reference    string    `json:"reference"`
	CustomerName string    `json:"customer_name"`
	MovieID      int       `json:"movie_id"`
	MovieTitle   string    `json:"movie_title"`
	ShowID       int       `json:"show_id"`
	ShowTime     string    `json:"show_time"`
	Seats        []int     `json:"seats"`
	TotalPrice   float64   `json:"total_price"`
	CouponCode   string    `json:"coupon_code,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type ShowOccupancy struct {
	MovieID    int     `json:"movie_id"`
	MovieTitle string  `json:"movie_title"`
	ShowID     int     `json:"show_id"`
	ShowTime   string  `json:"show_time"`
	Occupancy  float64 `json:"occupancy"`
}

type BookingStatsResponse struct {
	TotalBookings  int                `json:"total_bookings"`
	TotalRevenue   float64            `json:"total_revenue"`
	RevenueByMovie map[string]float64 `json:"revenue_by_movie"`
	ShowOccupancy  []ShowOccupancy    `json:"show_occupancy"`
}

// Helper converter
func BookingToResponse(booking *entity.Booking) BookingResponse {
	seats := make([]int, len(booking.Seats))
	copy(seats, booking.Seats)
	return BookingResponse{
		ID:           booking.ID,
		Reference:    booking.Reference,
		CustomerName: booking.CustomerName,
		MovieID:      booking.MovieID,
		MovieTitle:   booking.MovieTitle,
		ShowID:       booking.ShowID,
		ShowTime:     booking.ShowTime,
		Seats:        seats,
		TotalPrice:   booking.TotalPrice,
		CouponCode:   booking.CouponCode,
		CreatedAt:    booking.CreatedAt,
	}
}
