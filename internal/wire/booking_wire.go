package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - the whole ledger
		r.Get("/", bookingHandler.GetBookings)

		// POST /api/bookings - create booking, optional coupon_code
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/stats - counts, revenue, occupancy
		r.Get("/stats", bookingHandler.GetStats)

		// GET /api/bookings/coupons - known coupon codes
		r.Get("/coupons", bookingHandler.GetCoupons)

		// GET /api/bookings/coupons/{code}/validate
		r.Get("/coupons/{code}/validate", bookingHandler.ValidateCoupon)

		// GET /api/bookings/customer/{name} - case-insensitive customer match
		r.Get("/customer/{name}", bookingHandler.GetBookingsByCustomer)

		// GET /api/bookings/{id}
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// DELETE /api/bookings/{id} - cancel and free the seats
		r.Delete("/{id}", bookingHandler.CancelBooking)
	})
}
