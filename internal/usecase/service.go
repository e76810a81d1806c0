package usecase

import (
	"movie-booking/internal/data/repository"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Movie   MovieService
	Booking BookingService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Movie:   NewMovieService(repo, log),
		Booking: NewBookingService(repo, config, log),
	}
}
