package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"movie-booking/internal/data/entity"

	"go.uber.org/zap"
)

// MovieRepository is the synchronization boundary for the catalog and its seat
// inventory. Reads hand out independent copies; seat mutations run under the
// store's write lock so a check-then-book sequence is atomic against both
// concurrent bookings and concurrent readers.
type MovieRepository interface {
	// Create assigns the next movie id (and show ids for any attached shows)
	// and stores a copy of the movie. The ids are written back to the argument.
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id int) (*entity.Movie, error)
	FindAll(ctx context.Context) ([]*entity.Movie, error)

	// FindShow resolves a show inside a movie. Returns nil when either is absent.
	FindShow(ctx context.Context, movieID, showID int) (*entity.Show, error)
	// AddShow assigns the next show id, writes it back to the argument, and
	// attaches a copy of the show to the movie.
	AddShow(ctx context.Context, movieID int, show *entity.Show) error

	// BookSeats marks every requested seat booked, or books nothing: if the
	// movie or show is missing, or any seat is unavailable, an error is
	// returned and no seat changes state.
	BookSeats(ctx context.Context, movieID, showID int, seats []int) error
	// CancelSeats frees the given seats. A missing movie or show is a no-op so
	// a booking referencing a vanished show can still be cancelled.
	CancelSeats(ctx context.Context, movieID, showID int, seats []int) error

	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type movieRepository struct {
	mu          sync.RWMutex
	movies      map[int]*entity.Movie
	nextMovieID int
	nextShowID  int
	log         *zap.Logger
}

func NewMovieRepository(log *zap.Logger) MovieRepository {
	return &movieRepository{
		movies:      make(map[int]*entity.Movie),
		nextMovieID: 1,
		nextShowID:  1,
		log:         log.With(zap.String("repository", "movie")),
	}
}

func (r *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie.ID = r.nextMovieID
	r.nextMovieID++

	for _, show := range movie.Shows {
		show.ID = r.nextShowID
		r.nextShowID++
	}

	r.movies[movie.ID] = movie.Clone()

	r.log.Debug("Movie created",
		zap.Int("movie_id", movie.ID),
		zap.String("title", movie.Title),
		zap.Int("shows", len(movie.Shows)),
	)
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id int) (*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie := r.movies[id]
	if movie == nil {
		return nil, nil
	}
	return movie.Clone(), nil
}

func (r *movieRepository) FindAll(ctx context.Context) ([]*entity.Movie, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movies := make([]*entity.Movie, 0, len(r.movies))
	for _, movie := range r.movies {
		movies = append(movies, movie.Clone())
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })

	return movies, nil
}

func (r *movieRepository) FindShow(ctx context.Context, movieID, showID int) (*entity.Show, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	movie := r.movies[movieID]
	if movie == nil {
		return nil, nil
	}
	show := movie.FindShowByID(showID)
	if show == nil {
		return nil, nil
	}
	return show.Clone(), nil
}

func (r *movieRepository) AddShow(ctx context.Context, movieID int, show *entity.Show) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie := r.movies[movieID]
	if movie == nil {
		return fmt.Errorf("movie %d not found", movieID)
	}

	show.ID = r.nextShowID
	r.nextShowID++
	movie.AddShow(show.Clone())

	r.log.Debug("Show added",
		zap.Int("movie_id", movieID),
		zap.Int("show_id", show.ID),
		zap.String("show_time", show.ShowTime),
	)
	return nil
}

func (r *movieRepository) BookSeats(ctx context.Context, movieID, showID int, seats []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie := r.movies[movieID]
	if movie == nil {
		return fmt.Errorf("movie %d not found", movieID)
	}
	show := movie.FindShowByID(showID)
	if show == nil {
		return fmt.Errorf("show %d not found", showID)
	}

	// All-or-nothing: every requested seat must be free before any is booked
	for _, seat := range seats {
		if !show.IsSeatAvailable(seat) {
			return fmt.Errorf("seat %d is not available", seat)
		}
	}
	for _, seat := range seats {
		show.BookSeat(seat)
	}

	r.log.Debug("Seats booked",
		zap.Int("movie_id", movieID),
		zap.Int("show_id", showID),
		zap.Int("seat_count", len(seats)),
	)
	return nil
}

func (r *movieRepository) CancelSeats(ctx context.Context, movieID, showID int, seats []int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	movie := r.movies[movieID]
	if movie == nil {
		return nil
	}
	show := movie.FindShowByID(showID)
	if show == nil {
		return nil
	}

	for _, seat := range seats {
		show.CancelSeat(seat)
	}
	return nil
}

func (r *movieRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.movies), nil
}

func (r *movieRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.movies = make(map[int]*entity.Movie)
	r.nextMovieID = 1
	r.nextShowID = 1

	r.log.Info("Movie store cleared")
	return nil
}
