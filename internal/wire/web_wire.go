package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireWeb(r chi.Router, webHandler *adaptor.WebHandler) {
	// Browser pages (server rendered)
	r.Get("/", webHandler.Home)
	r.Get("/movies", webHandler.Movies)
	r.Get("/booking", webHandler.Booking)
	r.Get("/my-bookings", webHandler.MyBookings)

	// Static assets
	r.Get("/static/*", webHandler.Static)
}
