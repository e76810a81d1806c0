// internal/wire/wire.go
package wire

import (
	"net/http"

	"movie-booking/internal/adaptor"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/middleware"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes handlers and routes on top of the service layer
func Wiring(service *usecase.Service, config *utils.Config, logger *zap.Logger) (*App, error) {
	handler, err := adaptor.NewHandler(service, logger)
	if err != nil {
		return nil, err
	}

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}, nil
}

// setupRouter configures the Chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.App.CORSOrigin))

	// Apply routes
	wireMovie(r, handler.Movie)
	wireBooking(r, handler.Booking)
	wireSystem(r, handler.System)
	wireWeb(r, handler.Web)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
