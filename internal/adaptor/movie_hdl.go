package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/usecase"
	"movie-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovies handles GET /api/movies
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := h.service.GetMovies(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovieByID handles GET /api/movies/{id}
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.pathInt(w, r, "id")
	if !ok {
		return
	}

	movie, err := h.service.GetMovieByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie by ID")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// GetShows handles GET /api/movies/{movieId}/shows
func (h *MovieHandler) GetShows(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.pathInt(w, r, "movieId")
	if !ok {
		return
	}

	shows, err := h.service.GetShows(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get shows")
		return
	}

	utils.ResponseSuccess(w, "success", shows)
}

// GetShow handles GET /api/movies/{movieId}/shows/{showId}
func (h *MovieHandler) GetShow(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.pathInt(w, r, "movieId")
	if !ok {
		return
	}
	showID, ok := h.pathInt(w, r, "showId")
	if !ok {
		return
	}

	show, err := h.service.GetShow(r.Context(), movieID, showID)
	if err != nil {
		h.handleServiceError(w, err, "get show")
		return
	}

	utils.ResponseSuccess(w, "success", show)
}

// GetAvailableSeats handles GET /api/movies/{movieId}/shows/{showId}/seats
func (h *MovieHandler) GetAvailableSeats(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.pathInt(w, r, "movieId")
	if !ok {
		return
	}
	showID, ok := h.pathInt(w, r, "showId")
	if !ok {
		return
	}

	seats, err := h.service.GetAvailableSeats(r.Context(), movieID, showID)
	if err != nil {
		h.handleServiceError(w, err, "get available seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// CreateMovie handles POST /api/movies
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.MovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created successfully", movie)
}

// AddShow handles POST /api/movies/{movieId}/shows
func (h *MovieHandler) AddShow(w http.ResponseWriter, r *http.Request) {
	movieID, ok := h.pathInt(w, r, "movieId")
	if !ok {
		return
	}

	var req request.ShowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	show, err := h.service.AddShow(r.Context(), movieID, &req)
	if err != nil {
		h.handleServiceError(w, err, "add show")
		return
	}

	utils.ResponseCreated(w, "Show added successfully", show)
}

// pathInt parses an integer URL parameter, writing a 400 on failure.
func (h *MovieHandler) pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || value < 1 {
		utils.ResponseBadRequest(w, "Invalid "+name+" parameter", nil)
		return 0, false
	}
	return value, true
}

// handleServiceError maps service errors for movie operations
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
