package usecase

import (
	"context"
	"testing"

	"movie-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSampleData(t *testing.T) {
	service, _ := newTestService(t, 10)
	ctx := context.Background()

	require.NoError(t, service.Movie.LoadSampleData(ctx))

	movies, err := service.Movie.GetMovies(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)

	assert.Equal(t, "The Matrix Resurrections", movies[0].Title)
	assert.Len(t, movies[0].Shows, 3)
	assert.Equal(t, 15, movies[0].Shows[0].TotalSeats)

	assert.Equal(t, "Inception", movies[1].Title)
	assert.Len(t, movies[1].Shows, 2)

	assert.Equal(t, "Avengers Endgame", movies[2].Title)
	assert.Equal(t, 181, movies[2].Duration)
	assert.Equal(t, 25, movies[2].Shows[1].TotalSeats)

	// Show ids are unique across the whole catalog
	seen := make(map[int]bool)
	for _, movie := range movies {
		for _, show := range movie.Shows {
			assert.False(t, seen[show.ID], "duplicate show id %d", show.ID)
			seen[show.ID] = true
		}
	}
	assert.Len(t, seen, 7)
}

func TestCreateMovie(t *testing.T) {
	service, _ := newTestService(t, 10)
	ctx := context.Background()

	movie, err := service.Movie.CreateMovie(ctx, &request.MovieRequest{
		Title:    "Dune",
		Genre:    "Sci-Fi",
		Duration: 155,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, movie.ID)
	assert.Empty(t, movie.Shows)

	// Genre falls back when omitted
	movie, err = service.Movie.CreateMovie(ctx, &request.MovieRequest{Title: "Oldboy", Duration: 120})
	require.NoError(t, err)
	assert.Equal(t, "General", movie.Genre)

	_, err = service.Movie.CreateMovie(ctx, &request.MovieRequest{Genre: "Drama", Duration: 90})
	assert.ErrorContains(t, err, "validation failed")

	_, err = service.Movie.CreateMovie(ctx, &request.MovieRequest{Title: "Bad", Duration: 0})
	assert.ErrorContains(t, err, "validation failed")
}

func TestAddShow(t *testing.T) {
	service, _ := newTestService(t, 10)
	ctx := context.Background()

	movie, err := service.Movie.CreateMovie(ctx, &request.MovieRequest{Title: "Dune", Duration: 155})
	require.NoError(t, err)

	show, err := service.Movie.AddShow(ctx, movie.ID, &request.ShowRequest{
		ShowTime:   "9:00 PM",
		TotalSeats: 30,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, show.ID)
	assert.Len(t, show.AvailableSeats, 30)

	_, err = service.Movie.AddShow(ctx, 99, &request.ShowRequest{ShowTime: "1:00 PM", TotalSeats: 10})
	assert.ErrorContains(t, err, "movie 99 not found")

	_, err = service.Movie.AddShow(ctx, movie.ID, &request.ShowRequest{ShowTime: "1:00 PM"})
	assert.ErrorContains(t, err, "validation failed")
}

func TestGetShowAndAvailableSeats(t *testing.T) {
	service, _ := newTestService(t, 10)
	ctx := context.Background()
	require.NoError(t, service.Movie.LoadSampleData(ctx))

	show, err := service.Movie.GetShow(ctx, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, "3:00 PM", show.ShowTime)
	assert.Equal(t, 20, show.TotalSeats)

	_, err = service.Movie.GetShow(ctx, 2, 99)
	assert.ErrorContains(t, err, "show 99 not found")

	_, err = service.Movie.GetAvailableSeats(ctx, 99, 1)
	assert.ErrorContains(t, err, "movie 99 not found")

	seats, err := service.Movie.GetAvailableSeats(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, seats, 15)
}

func TestResetData(t *testing.T) {
	service, repo := newTestService(t, 10)
	ctx := context.Background()
	require.NoError(t, service.Movie.LoadSampleData(ctx))

	_, err := service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
		MovieID: 1, ShowID: 1, Seats: []int{1}, CustomerName: "Alice",
	})
	require.NoError(t, err)

	require.NoError(t, service.Movie.ResetData(ctx))

	count, err := service.Booking.BookingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	movies, err := repo.Movie.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, 1, movies[0].ID, "ids restart after reset")
	assert.Empty(t, movies[0].Shows[0].BookedSeats)
}
