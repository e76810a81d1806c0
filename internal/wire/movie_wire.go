package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	r.Route("/api/movies", func(r chi.Router) {
		// GET /api/movies - list the catalog
		r.Get("/", movieHandler.GetMovies)

		// POST /api/movies - add a movie
		r.Post("/", movieHandler.CreateMovie)

		// GET /api/movies/{id}
		r.Get("/{id}", movieHandler.GetMovieByID)

		r.Route("/{movieId}/shows", func(r chi.Router) {
			// GET /api/movies/{movieId}/shows
			r.Get("/", movieHandler.GetShows)

			// POST /api/movies/{movieId}/shows - attach a show
			r.Post("/", movieHandler.AddShow)

			// GET /api/movies/{movieId}/shows/{showId}
			r.Get("/{showId}", movieHandler.GetShow)

			// GET /api/movies/{movieId}/shows/{showId}/seats - available seats
			r.Get("/{showId}/seats", movieHandler.GetAvailableSeats)
		})
	})
}
