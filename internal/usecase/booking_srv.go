package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/internal/dto/response"
	"movie-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID int) error

	GetBookings(ctx context.Context) ([]response.BookingResponse, error)
	GetBookingByID(ctx context.Context, bookingID int) (*response.BookingResponse, error)
	GetBookingsByCustomer(ctx context.Context, customerName string) ([]response.BookingResponse, error)

	GetCoupons(ctx context.Context) map[string]float64
	ValidateCoupon(ctx context.Context, code string) bool

	PricePerSeat() float64
	BookingCount(ctx context.Context) (int, error)
	Stats(ctx context.Context) (*response.BookingStatsResponse, error)
}

type bookingService struct {
	repo    *repository.Repository
	pricing utils.PricingConfig
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, config *utils.Config, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		pricing: config.Pricing,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("invalid customer name: must not be empty")
	}

	seen := make(map[int]bool, len(req.Seats))
	for _, seat := range req.Seats {
		if seen[seat] {
			return nil, fmt.Errorf("invalid seat list: seat %d requested twice", seat)
		}
		seen[seat] = true
	}

	// Resolve movie and show for the booking snapshot
	movie, err := s.repo.Movie.FindByID(ctx, req.MovieID)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("movie %d not found", req.MovieID)
	}

	show := movie.FindShowByID(req.ShowID)
	if show == nil {
		return nil, fmt.Errorf("show %d not found", req.ShowID)
	}

	// The store checks and books atomically under its write lock
	if err := s.repo.Movie.BookSeats(ctx, req.MovieID, req.ShowID, req.Seats); err != nil {
		return nil, err
	}

	totalPrice, couponApplied := s.applyCoupon(float64(len(req.Seats))*s.pricing.PricePerSeat, req.CouponCode)

	seats := make([]int, len(req.Seats))
	copy(seats, req.Seats)

	booking := &entity.Booking{
		Reference:    uuid.New().String(),
		CustomerName: strings.TrimSpace(req.CustomerName),
		MovieID:      movie.ID,
		MovieTitle:   movie.Title,
		ShowID:       show.ID,
		ShowTime:     show.ShowTime,
		Seats:        seats,
		TotalPrice:   totalPrice,
		CouponCode:   couponApplied,
		CreatedAt:    time.Now(),
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		// Roll back the seat marks so the failed request leaves no trace
		if cancelErr := s.repo.Movie.CancelSeats(ctx, req.MovieID, req.ShowID, req.Seats); cancelErr != nil {
			s.log.Error("Failed to roll back seats", zap.Error(cancelErr))
		}
		s.log.Error("Failed to store booking",
			zap.Error(err),
			zap.Int("movie_id", movie.ID),
			zap.Int("show_id", show.ID),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.Int("booking_id", booking.ID),
		zap.String("reference", booking.Reference),
		zap.String("customer", booking.CustomerName),
		zap.Int("seat_count", len(booking.Seats)),
		zap.Float64("total_price", booking.TotalPrice),
	)

	bookingResp := response.BookingToResponse(booking)
	return &bookingResp, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID int) error {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil || booking == nil {
		return fmt.Errorf("booking %d not found", bookingID)
	}

	// Free the seats when the show still resolves; the booking is removed
	// either way so a dangling show reference cannot strand a ledger entry.
	if err := s.repo.Movie.CancelSeats(ctx, booking.MovieID, booking.ShowID, booking.Seats); err != nil {
		s.log.Error("Failed to free seats", zap.Error(err), zap.Int("booking_id", bookingID))
	}

	if err := s.repo.Booking.Delete(ctx, bookingID); err != nil {
		s.log.Error("Failed to delete booking", zap.Error(err), zap.Int("booking_id", bookingID))
		return fmt.Errorf("cancel booking %d: %w", bookingID, err)
	}

	s.log.Info("Booking cancelled",
		zap.Int("booking_id", bookingID),
		zap.String("reference", booking.Reference),
	)
	return nil
}

func (s *bookingService) GetBookings(ctx context.Context) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return bookingsToResponses(bookings), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID int) (*response.BookingResponse, error) {
	booking, err := s.repo.Booking.FindByID(ctx, bookingID)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("booking %d not found", bookingID)
	}

	bookingResp := response.BookingToResponse(booking)
	return &bookingResp, nil
}

func (s *bookingService) GetBookingsByCustomer(ctx context.Context, customerName string) ([]response.BookingResponse, error) {
	bookings, err := s.repo.Booking.FindByCustomerName(ctx, customerName)
	if err != nil {
		s.log.Error("Failed to find bookings by customer",
			zap.Error(err),
			zap.String("customer", customerName),
		)
		return nil, fmt.Errorf("bookings for customer %s: %w", customerName, err)
	}
	return bookingsToResponses(bookings), nil
}

func (s *bookingService) GetCoupons(ctx context.Context) map[string]float64 {
	coupons := make(map[string]float64, len(s.pricing.Coupons))
	for code, percent := range s.pricing.Coupons {
		coupons[code] = percent
	}
	return coupons
}

func (s *bookingService) ValidateCoupon(ctx context.Context, code string) bool {
	_, ok := s.pricing.Coupons[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

func (s *bookingService) PricePerSeat() float64 {
	return s.pricing.PricePerSeat
}

func (s *bookingService) BookingCount(ctx context.Context) (int, error) {
	return s.repo.Booking.Count(ctx)
}

func (s *bookingService) Stats(ctx context.Context) (*response.BookingStatsResponse, error) {
	bookings, err := s.repo.Booking.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}

	stats := &response.BookingStatsResponse{
		TotalBookings:  len(bookings),
		RevenueByMovie: make(map[string]float64),
		ShowOccupancy:  []response.ShowOccupancy{},
	}
	for _, booking := range bookings {
		stats.TotalRevenue += booking.TotalPrice
		stats.RevenueByMovie[booking.MovieTitle] += booking.TotalPrice
	}

	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("booking stats: %w", err)
	}
	for _, movie := range movies {
		for _, show := range movie.Shows {
			stats.ShowOccupancy = append(stats.ShowOccupancy, response.ShowOccupancy{
				MovieID:    movie.ID,
				MovieTitle: movie.Title,
				ShowID:     show.ID,
				ShowTime:   show.ShowTime,
				Occupancy:  show.Occupancy(),
			})
		}
	}

	return stats, nil
}

// applyCoupon discounts the base price when the code matches a known coupon
// (case-insensitive). Unknown codes leave the price unchanged.
func (s *bookingService) applyCoupon(basePrice float64, code string) (float64, string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return basePrice, ""
	}

	percent, ok := s.pricing.Coupons[code]
	if !ok {
		s.log.Warn("Unknown coupon code ignored", zap.String("coupon_code", code))
		return basePrice, ""
	}
	return basePrice * (1 - percent/100), code
}

func bookingsToResponses(bookings []*entity.Booking) []response.BookingResponse {
	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}
	return responses
}
