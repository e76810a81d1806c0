package wire

import (
	"movie-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSystem(r chi.Router, systemHandler *adaptor.SystemHandler) {
	r.Route("/api/system", func(r chi.Router) {
		// GET /api/system/status - counts and price per seat
		r.Get("/status", systemHandler.GetStatus)

		// GET /api/system/health
		r.Get("/health", systemHandler.GetHealth)

		// GET /api/system/info
		r.Get("/info", systemHandler.GetInfo)

		// POST /api/system/init-data - clear stores and reseed
		r.Post("/init-data", systemHandler.InitData)
	})
}
