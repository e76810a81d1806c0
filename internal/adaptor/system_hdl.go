package adaptor

import (
	"net/http"
	"runtime"
	"time"

	"movie-booking/internal/dto/response"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

const (
	serviceName    = "Movie Ticket Booking System"
	serviceVersion = "1.0.0"
)

type SystemHandler struct {
	movieService   usecase.MovieService
	bookingService usecase.BookingService
	log            *zap.Logger
}

func NewSystemHandler(movieService usecase.MovieService, bookingService usecase.BookingService, log *zap.Logger) *SystemHandler {
	return &SystemHandler{
		movieService:   movieService,
		bookingService: bookingService,
		log:            log.With(zap.String("handler", "system")),
	}
}

// GetStatus handles GET /api/system/status
func (h *SystemHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	movieCount, err := h.movieService.MovieCount(r.Context())
	if err != nil {
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	bookingCount, err := h.bookingService.BookingCount(r.Context())
	if err != nil {
		utils.ResponseInternalError(w, "Internal server error")
		return
	}

	utils.ResponseSuccess(w, "success", response.StatusResponse{
		Status:        "UP",
		TotalMovies:   movieCount,
		TotalBookings: bookingCount,
		PricePerSeat:  h.bookingService.PricePerSeat(),
		Timestamp:     time.Now().UnixMilli(),
	})
}

// GetHealth handles GET /api/system/health
func (h *SystemHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", response.HealthResponse{
		Status:  "healthy",
		Version: serviceVersion,
		Service: serviceName,
	})
}

// GetInfo handles GET /api/system/info
func (h *SystemHandler) GetInfo(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", response.InfoResponse{
		ApplicationName: serviceName,
		Version:         serviceVersion,
		Description:     "In-memory movie ticket booking demo",
		GoVersion:       runtime.Version(),
	})
}

// InitData handles POST /api/system/init-data
func (h *SystemHandler) InitData(w http.ResponseWriter, r *http.Request) {
	if err := h.movieService.ResetData(r.Context()); err != nil {
		h.log.Error("Failed to reset data", zap.Error(err))
		utils.ResponseInternalError(w, "Failed to load sample data")
		return
	}

	h.log.Info("Sample data reloaded")
	utils.ResponseSuccess(w, "Sample data loaded successfully", nil)
}
