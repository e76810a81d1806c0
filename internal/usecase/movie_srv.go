package usecase

import (
	"context"
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) ([]response.MovieResponse, error)
	GetMovieByID(ctx context.Context, movieID int) (*response.MovieResponse, error)
	GetShows(ctx context.Context, movieID int) ([]response.ShowResponse, error)
	GetShow(ctx context.Context, movieID, showID int) (*response.ShowResponse, error)
	GetAvailableSeats(ctx context.Context, movieID, showID int) ([]int, error)

	CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error)
	AddShow(ctx context.Context, movieID int, req *request.ShowRequest) (*response.ShowResponse, error)

	MovieCount(ctx context.Context) (int, error)
	LoadSampleData(ctx context.Context) error
	ResetData(ctx context.Context) error
}

type movieService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMovieService(repo *repository.Repository, log *zap.Logger) MovieService {
	return &movieService{
		repo: repo,
		log:  log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) ([]response.MovieResponse, error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}
	return movieResponses, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID int) (*response.MovieResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("movie %d not found", movieID)
	}

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) GetShows(ctx context.Context, movieID int) ([]response.ShowResponse, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("movie %d not found", movieID)
	}

	shows := make([]response.ShowResponse, len(movie.Shows))
	for i, show := range movie.Shows {
		shows[i] = response.ShowToResponse(show)
	}
	return shows, nil
}

func (s *movieService) GetShow(ctx context.Context, movieID, showID int) (*response.ShowResponse, error) {
	show, err := s.findShow(ctx, movieID, showID)
	if err != nil {
		return nil, err
	}

	showResp := response.ShowToResponse(show)
	return &showResp, nil
}

func (s *movieService) GetAvailableSeats(ctx context.Context, movieID, showID int) ([]int, error) {
	show, err := s.findShow(ctx, movieID, showID)
	if err != nil {
		return nil, err
	}
	return show.AvailableSeats(), nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	genre := req.Genre
	if genre == "" {
		genre = "General"
	}

	movie := entity.NewMovie(0, req.Title, genre, req.Duration)
	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("title", req.Title))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created",
		zap.Int("movie_id", movie.ID),
		zap.String("title", movie.Title),
	)

	movieResp := response.MovieToResponse(movie)
	return &movieResp, nil
}

func (s *movieService) AddShow(ctx context.Context, movieID int, req *request.ShowRequest) (*response.ShowResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add show validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	show := entity.NewShow(0, req.ShowTime, req.TotalSeats)
	if err := s.repo.Movie.AddShow(ctx, movieID, show); err != nil {
		return nil, err
	}

	s.log.Info("Show added",
		zap.Int("movie_id", movieID),
		zap.Int("show_id", show.ID),
		zap.String("show_time", show.ShowTime),
		zap.Int("total_seats", show.TotalSeats),
	)

	showResp := response.ShowToResponse(show)
	return &showResp, nil
}

func (s *movieService) MovieCount(ctx context.Context) (int, error) {
	return s.repo.Movie.Count(ctx)
}

// LoadSampleData seeds the catalog with a small fixed set of movies and shows.
func (s *movieService) LoadSampleData(ctx context.Context) error {
	samples := []struct {
		title    string
		genre    string
		duration int
		shows    []*entity.Show
	}{
		{"The Matrix Resurrections", "Sci-Fi", 148, []*entity.Show{
			entity.NewShow(0, "2:00 PM", 15),
			entity.NewShow(0, "5:00 PM", 15),
			entity.NewShow(0, "8:00 PM", 15),
		}},
		{"Inception", "Thriller", 148, []*entity.Show{
			entity.NewShow(0, "3:00 PM", 20),
			entity.NewShow(0, "6:00 PM", 20),
		}},
		{"Avengers Endgame", "Action", 181, []*entity.Show{
			entity.NewShow(0, "1:00 PM", 25),
			entity.NewShow(0, "7:00 PM", 25),
		}},
	}

	for _, sample := range samples {
		movie := entity.NewMovie(0, sample.title, sample.genre, sample.duration)
		movie.Shows = sample.shows
		if err := s.repo.Movie.Create(ctx, movie); err != nil {
			return fmt.Errorf("load sample data: %w", err)
		}
	}

	s.log.Info("Sample data loaded", zap.Int("movies", len(samples)))
	return nil
}

// ResetData clears both stores and reloads the sample catalog.
func (s *movieService) ResetData(ctx context.Context) error {
	if err := s.repo.Booking.DeleteAll(ctx); err != nil {
		return fmt.Errorf("reset bookings: %w", err)
	}
	if err := s.repo.Movie.DeleteAll(ctx); err != nil {
		return fmt.Errorf("reset movies: %w", err)
	}
	return s.LoadSampleData(ctx)
}

func (s *movieService) findShow(ctx context.Context, movieID, showID int) (*entity.Show, error) {
	movie, err := s.repo.Movie.FindByID(ctx, movieID)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("movie %d not found", movieID)
	}

	show := movie.FindShowByID(showID)
	if show == nil {
		return nil, fmt.Errorf("show %d not found", showID)
	}
	return show, nil
}
