package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"movie-booking/internal/data/entity"

	"go.uber.org/zap"
)

type BookingRepository interface {
	// Create assigns the next booking id and stores the booking.
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id int) (*entity.Booking, error)
	FindAll(ctx context.Context) ([]*entity.Booking, error)
	// FindByCustomerName matches the customer name exactly, case-insensitive.
	FindByCustomerName(ctx context.Context, name string) ([]*entity.Booking, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
	DeleteAll(ctx context.Context) error
}

type bookingRepository struct {
	mu       sync.RWMutex
	bookings map[int]*entity.Booking
	nextID   int
	log      *zap.Logger
}

func NewBookingRepository(log *zap.Logger) BookingRepository {
	return &bookingRepository{
		bookings: make(map[int]*entity.Booking),
		nextID:   1,
		log:      log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.ID = r.nextID
	r.nextID++
	r.bookings[booking.ID] = booking

	r.log.Debug("Booking stored",
		zap.Int("booking_id", booking.ID),
		zap.String("customer", booking.CustomerName),
	)
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id int) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.bookings[id], nil
}

func (r *bookingRepository) FindAll(ctx context.Context) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookings := make([]*entity.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		bookings = append(bookings, booking)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].ID < bookings[j].ID })

	return bookings, nil
}

func (r *bookingRepository) FindByCustomerName(ctx context.Context, name string) ([]*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []*entity.Booking
	for _, booking := range r.bookings {
		if strings.EqualFold(booking.CustomerName, name) {
			matches = append(matches, booking)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })

	return matches, nil
}

func (r *bookingRepository) Delete(ctx context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.bookings, id)
	return nil
}

func (r *bookingRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.bookings), nil
}

func (r *bookingRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bookings = make(map[int]*entity.Booking)
	r.nextID = 1

	r.log.Info("Booking ledger cleared")
	return nil
}
