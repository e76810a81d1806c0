package repository

import (
	"go.uber.org/zap"
)

type Repository struct {
	Movie   MovieRepository
	Booking BookingRepository
}

func NewRepository(log *zap.Logger) *Repository {
	return &Repository{
		Movie:   NewMovieRepository(log),
		Booking: NewBookingRepository(log),
	}
}
