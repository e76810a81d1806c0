package usecase

import (
	"context"
	"sync"
	"testing"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, pricePerSeat float64) (*Service, *repository.Repository) {
	t.Helper()

	repo := repository.NewRepository(zap.NewNop())
	config := &utils.Config{
		Pricing: utils.PricingConfig{
			PricePerSeat: pricePerSeat,
			Coupons: map[string]float64{
				"SAVE10":    10,
				"WELCOME20": 20,
			},
		},
	}
	return NewService(repo, config, zap.NewNop()), repo
}

// seedMovie stores one movie with a single show and returns its ids.
func seedMovie(t *testing.T, repo *repository.Repository, totalSeats int) (movieID, showID int) {
	t.Helper()

	movie := entity.NewMovie(0, "Inception", "Thriller", 148)
	movie.AddShow(entity.NewShow(0, "3:00 PM", totalSeats))
	require.NoError(t, repo.Movie.Create(context.Background(), movie))
	return movie.ID, movie.Shows[0].ID
}

func TestCreateBooking_Success(t *testing.T) {
	service, repo := newTestService(t, 10)
	movieID, showID := seedMovie(t, repo, 3)
	ctx := context.Background()

	booking, err := service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
		MovieID:      movieID,
		ShowID:       showID,
		Seats:        []int{1, 2},
		CustomerName: "Alice",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, booking.ID)
	assert.NotEmpty(t, booking.Reference)
	assert.Equal(t, "Alice", booking.CustomerName)
	assert.Equal(t, "Inception", booking.MovieTitle)
	assert.Equal(t, "3:00 PM", booking.ShowTime)
	assert.Equal(t, []int{1, 2}, booking.Seats)
	assert.Equal(t, 20.0, booking.TotalPrice)
	assert.Empty(t, booking.CouponCode)

	seats, err := service.Movie.GetAvailableSeats(ctx, movieID, showID)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, seats)
}

func TestCreateBooking_AllOrNothing(t *testing.T) {
	service, repo := newTestService(t, 10)
	movieID, showID := seedMovie(t, repo, 3)
	ctx := context.Background()

	_, err := service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
		MovieID: movieID, ShowID: showID, Seats: []int{1, 2}, CustomerName: "Alice",
	})
	require.NoError(t, err)

	// Seat 2 is taken, so seat 3 must not be booked either
	_, err = service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
		MovieID: movieID, ShowID: showID, Seats: []int{2, 3}, CustomerName: "Bob",
	})
	assert.ErrorContains(t, err, "seat 2 is not available")

	seats, err := service.Movie.GetAvailableSeats(ctx, movieID, showID)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, seats)

	count, err := service.Booking.BookingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCancelBooking_RestoresSeats(t *testing.T) {
	service, repo := newTestService(t, 10)
	movieID, showID := seedMovie(t, repo, 3)
	ctx := context.Background()

	booking, err := service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
		MovieID: movieID, ShowID: showID, Seats: []int{1, 2}, CustomerName: "Alice",
	})
	require.NoError(t, err)

	require.NoError(t, service.Booking.CancelBooking(ctx, booking.ID))

	seats, err := service.Movie.GetAvailableSeats(ctx, movieID, showID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seats)

	count, err := service.Booking.BookingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	// Cancelling the same id again fails cleanly without touching state
	err = service.Booking.CancelBooking(ctx, booking.ID)
	assert.ErrorContains(t, err, "not found")

	seats, err = service.Movie.GetAvailableSeats(ctx, movieID, showID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seats)
}

func TestCreateBooking_Coupons(t *testing.T) {
	tests := []struct {
		name       string
		coupon     string
		wantPrice  float64
		wantCoupon string
	}{
		{
			name:       "known coupon discounts by its percentage",
			coupon:     "SAVE10",
			wantPrice:  900,
			wantCoupon: "SAVE10",
		},
		{
			name:       "coupon codes are case-insensitive",
			coupon:     "save10",
			wantPrice:  900,
			wantCoupon: "SAVE10",
		},
		{
			name:       "unknown coupon leaves the price unchanged",
			coupon:     "NOPE50",
			wantPrice:  1000,
			wantCoupon: "",
		},
		{
			name:      "no coupon pays full price",
			wantPrice: 1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := newTestService(t, 500)
			movieID, showID := seedMovie(t, repo, 5)

			booking, err := service.Booking.CreateBooking(context.Background(), &request.CreateBookingRequest{
				MovieID:      movieID,
				ShowID:       showID,
				Seats:        []int{1, 2},
				CustomerName: "Alice",
				CouponCode:   tt.coupon,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, booking.TotalPrice)
			assert.Equal(t, tt.wantCoupon, booking.CouponCode)
		})
	}
}

func TestCreateBooking_Rejections(t *testing.T) {
	service, repo := newTestService(t, 10)
	movieID, showID := seedMovie(t, repo, 3)

	tests := []struct {
		name    string
		req     *request.CreateBookingRequest
		wantErr string
	}{
		{
			name:    "missing customer name",
			req:     &request.CreateBookingRequest{MovieID: movieID, ShowID: showID, Seats: []int{1}},
			wantErr: "validation failed",
		},
		{
			name:    "blank customer name",
			req:     &request.CreateBookingRequest{MovieID: movieID, ShowID: showID, Seats: []int{1}, CustomerName: "   "},
			wantErr: "invalid customer name",
		},
		{
			name:    "empty seat list",
			req:     &request.CreateBookingRequest{MovieID: movieID, ShowID: showID, CustomerName: "Alice"},
			wantErr: "validation failed",
		},
		{
			name:    "duplicate seat in request",
			req:     &request.CreateBookingRequest{MovieID: movieID, ShowID: showID, Seats: []int{1, 1}, CustomerName: "Alice"},
			wantErr: "seat 1 requested twice",
		},
		{
			name:    "unknown movie",
			req:     &request.CreateBookingRequest{MovieID: 99, ShowID: showID, Seats: []int{1}, CustomerName: "Alice"},
			wantErr: "movie 99 not found",
		},
		{
			name:    "unknown show",
			req:     &request.CreateBookingRequest{MovieID: movieID, ShowID: 99, Seats: []int{1}, CustomerName: "Alice"},
			wantErr: "show 99 not found",
		},
		{
			name:    "seat outside the show range",
			req:     &request.CreateBookingRequest{MovieID: movieID, ShowID: showID, Seats: []int{4}, CustomerName: "Alice"},
			wantErr: "seat 4 is not available",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Booking.CreateBooking(context.Background(), tt.req)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}

	// Nothing above may have booked a seat
	seats, err := service.Movie.GetAvailableSeats(context.Background(), movieID, showID)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seats)
}

func TestConcurrentSeatReadsDuringBooking(t *testing.T) {
	service, repo := newTestService(t, 10)
	movieID, showID := seedMovie(t, repo, 100)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for seat := 1; seat <= 100; seat++ {
			_, err := service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
				MovieID: movieID, ShowID: showID, Seats: []int{seat}, CustomerName: "Alice",
			})
			assert.NoError(t, err)
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			seats, err := service.Movie.GetAvailableSeats(ctx, movieID, showID)
			assert.NoError(t, err)
			assert.LessOrEqual(t, len(seats), 100)
		}
	}()

	wg.Wait()

	seats, err := service.Movie.GetAvailableSeats(ctx, movieID, showID)
	require.NoError(t, err)
	assert.Empty(t, seats)
}

func TestConcurrentBookingsForSameSeat(t *testing.T) {
	service, repo := newTestService(t, 10)
	movieID, showID := seedMovie(t, repo, 5)
	ctx := context.Background()

	const attempts = 10
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
				MovieID: movieID, ShowID: showID, Seats: []int{1}, CustomerName: "Alice",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	succeeded := 0
	for err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorContains(t, err, "seat 1 is not available")
		}
	}
	assert.Equal(t, 1, succeeded)

	count, err := service.Booking.BookingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestGetBookingsByCustomer(t *testing.T) {
	service, repo := newTestService(t, 10)
	movieID, showID := seedMovie(t, repo, 10)
	ctx := context.Background()

	for _, booking := range []struct {
		customer string
		seats    []int
	}{
		{"Alice", []int{1}},
		{"Bob", []int{2}},
		{"alice", []int{3}},
	} {
		_, err := service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
			MovieID: movieID, ShowID: showID, Seats: booking.seats, CustomerName: booking.customer,
		})
		require.NoError(t, err)
	}

	bookings, err := service.Booking.GetBookingsByCustomer(ctx, "ALICE")
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	bookings, err = service.Booking.GetBookingsByCustomer(ctx, "Carol")
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestValidateCouponAndGetCoupons(t *testing.T) {
	service, _ := newTestService(t, 10)
	ctx := context.Background()

	assert.True(t, service.Booking.ValidateCoupon(ctx, "SAVE10"))
	assert.True(t, service.Booking.ValidateCoupon(ctx, " welcome20 "))
	assert.False(t, service.Booking.ValidateCoupon(ctx, "NOPE"))

	// GetCoupons hands out a copy, not the live map
	coupons := service.Booking.GetCoupons(ctx)
	coupons["HACK99"] = 99
	assert.False(t, service.Booking.ValidateCoupon(ctx, "HACK99"))
}

func TestStats(t *testing.T) {
	service, repo := newTestService(t, 100)
	movieID, showID := seedMovie(t, repo, 4)
	ctx := context.Background()

	_, err := service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
		MovieID: movieID, ShowID: showID, Seats: []int{1, 2}, CustomerName: "Alice",
	})
	require.NoError(t, err)
	_, err = service.Booking.CreateBooking(ctx, &request.CreateBookingRequest{
		MovieID: movieID, ShowID: showID, Seats: []int{3}, CustomerName: "Bob",
	})
	require.NoError(t, err)

	stats, err := service.Booking.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalBookings)
	assert.Equal(t, 300.0, stats.TotalRevenue)
	assert.Equal(t, 300.0, stats.RevenueByMovie["Inception"])
	require.Len(t, stats.ShowOccupancy, 1)
	assert.Equal(t, 75.0, stats.ShowOccupancy[0].Occupancy)
}
