package response

import (
	"movie-booking/internal/data/entity"
)

type MovieResponse struct {
	ID       int            `json:"id"`
	Title    string         `json:"title"`
	Genre    string         `json:"genre"`
	Duration int            `json:"duration"`
	Shows    []ShowResponse `json:"shows"`
}

type ShowResponse struct {
	ID             int     `json:"id"`
	ShowTime       string  `json:"show_time"`
	TotalSeats     int     `json:"total_seats"`
	BookedSeats    []int   `json:"booked_seats"`
	AvailableSeats []int   `json:"available_seats"`
	Occupancy      float64 `json:"occupancy"`
}

// Helper converters
func MovieToResponse(movie *entity.Movie) MovieResponse {
	shows := make([]ShowResponse, len(movie.Shows))
	for i, show := range movie.Shows {
		shows[i] = ShowToResponse(show)
	}
	return MovieResponse{
		ID:       movie.ID,
		Title:    movie.Title,
		Genre:    movie.Genre,
		Duration: movie.Duration,
		Shows:    shows,
	}
}

func ShowToResponse(show *entity.Show) ShowResponse {
	booked := make([]int, len(show.BookedSeats))
	copy(booked, show.BookedSeats)
	return ShowResponse{
		ID:             show.ID,
		ShowTime:       show.ShowTime,
		TotalSeats:     show.TotalSeats,
		BookedSeats:    booked,
		AvailableSeats: show.AvailableSeats(),
		Occupancy:      show.Occupancy(),
	}
}
