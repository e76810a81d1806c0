package adaptor

import (
	"movie-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Movie   *MovieHandler
	Booking *BookingHandler
	System  *SystemHandler
	Web     *WebHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) (*Handler, error) {
	web, err := NewWebHandler(service.Movie, service.Booking, log)
	if err != nil {
		return nil, err
	}

	return &Handler{
		Movie:   NewMovieHandler(service.Movie, log),
		Booking: NewBookingHandler(service.Booking, log),
		System:  NewSystemHandler(service.Movie, service.Booking, log),
		Web:     web,
	}, nil
}
