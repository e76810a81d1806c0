package repository

import (
	"context"
	"testing"

	"movie-booking/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMovieRepository_CreateAssignsIDs(t *testing.T) {
	repo := NewMovieRepository(zap.NewNop())
	ctx := context.Background()

	movie := entity.NewMovie(0, "Inception", "Thriller", 148)
	movie.AddShow(entity.NewShow(0, "3:00 PM", 20))
	movie.AddShow(entity.NewShow(0, "6:00 PM", 20))
	require.NoError(t, repo.Create(ctx, movie))

	assert.Equal(t, 1, movie.ID)
	assert.Equal(t, 1, movie.Shows[0].ID)
	assert.Equal(t, 2, movie.Shows[1].ID)

	second := entity.NewMovie(0, "Dune", "Sci-Fi", 155)
	require.NoError(t, repo.Create(ctx, second))
	assert.Equal(t, 2, second.ID)
}

func TestMovieRepository_FindShow(t *testing.T) {
	repo := NewMovieRepository(zap.NewNop())
	ctx := context.Background()

	movie := entity.NewMovie(0, "Inception", "Thriller", 148)
	movie.AddShow(entity.NewShow(0, "3:00 PM", 20))
	require.NoError(t, repo.Create(ctx, movie))

	show, err := repo.FindShow(ctx, movie.ID, movie.Shows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "3:00 PM", show.ShowTime)

	// Missing movie and missing show both come back nil, not an error
	show, err = repo.FindShow(ctx, 99, 1)
	require.NoError(t, err)
	assert.Nil(t, show)

	show, err = repo.FindShow(ctx, movie.ID, 99)
	require.NoError(t, err)
	assert.Nil(t, show)
}

func TestMovieRepository_AddShow(t *testing.T) {
	repo := NewMovieRepository(zap.NewNop())
	ctx := context.Background()

	movie := entity.NewMovie(0, "Inception", "Thriller", 148)
	require.NoError(t, repo.Create(ctx, movie))

	show := entity.NewShow(0, "9:00 PM", 30)
	require.NoError(t, repo.AddShow(ctx, movie.ID, show))
	assert.Equal(t, 1, show.ID)

	stored, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	require.Len(t, stored.Shows, 1)
	assert.Equal(t, "9:00 PM", stored.Shows[0].ShowTime)

	err = repo.AddShow(ctx, 99, entity.NewShow(0, "1:00 PM", 10))
	assert.ErrorContains(t, err, "not found")
}

func TestMovieRepository_ReadsReturnCopies(t *testing.T) {
	repo := NewMovieRepository(zap.NewNop())
	ctx := context.Background()

	movie := entity.NewMovie(0, "Inception", "Thriller", 148)
	movie.AddShow(entity.NewShow(0, "3:00 PM", 20))
	require.NoError(t, repo.Create(ctx, movie))

	// Mutating a fetched movie must not leak into the store
	fetched, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	fetched.Title = "Tampered"
	fetched.Shows[0].BookedSeats = append(fetched.Shows[0].BookedSeats, 1)

	fresh, err := repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "Inception", fresh.Title)
	assert.Empty(t, fresh.Shows[0].BookedSeats)

	// Same for a fetched show and for the movie handed to Create
	show, err := repo.FindShow(ctx, movie.ID, movie.Shows[0].ID)
	require.NoError(t, err)
	show.BookedSeats = append(show.BookedSeats, 2)
	movie.Shows[0].BookedSeats = append(movie.Shows[0].BookedSeats, 3)

	fresh, err = repo.FindByID(ctx, movie.ID)
	require.NoError(t, err)
	assert.Empty(t, fresh.Shows[0].BookedSeats)
}

func TestMovieRepository_BookSeats(t *testing.T) {
	repo := NewMovieRepository(zap.NewNop())
	ctx := context.Background()

	movie := entity.NewMovie(0, "Inception", "Thriller", 148)
	movie.AddShow(entity.NewShow(0, "3:00 PM", 3))
	require.NoError(t, repo.Create(ctx, movie))
	showID := movie.Shows[0].ID

	require.NoError(t, repo.BookSeats(ctx, movie.ID, showID, []int{1, 2}))

	show, err := repo.FindShow(ctx, movie.ID, showID)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, show.AvailableSeats())

	// All-or-nothing: seat 2 is taken, so seat 3 must stay free
	err = repo.BookSeats(ctx, movie.ID, showID, []int{2, 3})
	assert.ErrorContains(t, err, "seat 2 is not available")

	show, err = repo.FindShow(ctx, movie.ID, showID)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, show.AvailableSeats())

	err = repo.BookSeats(ctx, 99, showID, []int{1})
	assert.ErrorContains(t, err, "movie 99 not found")

	err = repo.BookSeats(ctx, movie.ID, 99, []int{1})
	assert.ErrorContains(t, err, "show 99 not found")
}

func TestMovieRepository_CancelSeats(t *testing.T) {
	repo := NewMovieRepository(zap.NewNop())
	ctx := context.Background()

	movie := entity.NewMovie(0, "Inception", "Thriller", 148)
	movie.AddShow(entity.NewShow(0, "3:00 PM", 3))
	require.NoError(t, repo.Create(ctx, movie))
	showID := movie.Shows[0].ID

	require.NoError(t, repo.BookSeats(ctx, movie.ID, showID, []int{1, 2}))
	require.NoError(t, repo.CancelSeats(ctx, movie.ID, showID, []int{1, 2}))

	show, err := repo.FindShow(ctx, movie.ID, showID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, show.AvailableSeats())

	// A vanished movie or show is a no-op, not an error
	require.NoError(t, repo.CancelSeats(ctx, 99, showID, []int{1}))
	require.NoError(t, repo.CancelSeats(ctx, movie.ID, 99, []int{1}))
}

func TestMovieRepository_FindAllSortedAndDeleteAll(t *testing.T) {
	repo := NewMovieRepository(zap.NewNop())
	ctx := context.Background()

	for _, title := range []string{"A", "B", "C"} {
		require.NoError(t, repo.Create(ctx, entity.NewMovie(0, title, "General", 120)))
	}

	movies, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{movies[0].ID, movies[1].ID, movies[2].ID})

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, repo.DeleteAll(ctx))
	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Counters restart after a reset
	fresh := entity.NewMovie(0, "D", "General", 90)
	require.NoError(t, repo.Create(ctx, fresh))
	assert.Equal(t, 1, fresh.ID)
}
