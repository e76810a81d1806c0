package entity

// Show is a single screening of a movie. A show owns its seat inventory:
// seat numbers run from 1 to TotalSeats and each seat is either booked or free.
type Show struct {
	ID          int
	ShowTime    string
	TotalSeats  int
	BookedSeats []int
}

func NewShow(id int, showTime string, totalSeats int) *Show {
	return &Show{
		ID:          id,
		ShowTime:    showTime,
		TotalSeats:  totalSeats,
		BookedSeats: []int{},
	}
}

// IsSeatAvailable reports whether seatNumber is in range and not yet booked.
func (s *Show) IsSeatAvailable(seatNumber int) bool {
	if seatNumber < 1 || seatNumber > s.TotalSeats {
		return false
	}
	for _, booked := range s.BookedSeats {
		if booked == seatNumber {
			return false
		}
	}
	return true
}

// BookSeat marks a seat as booked. Booking an unavailable seat is a no-op;
// callers are expected to check availability first.
func (s *Show) BookSeat(seatNumber int) {
	if s.IsSeatAvailable(seatNumber) {
		s.BookedSeats = append(s.BookedSeats, seatNumber)
	}
}

// CancelSeat frees a seat. No-op when the seat is not booked.
func (s *Show) CancelSeat(seatNumber int) {
	for i, booked := range s.BookedSeats {
		if booked == seatNumber {
			s.BookedSeats = append(s.BookedSeats[:i], s.BookedSeats[i+1:]...)
			return
		}
	}
}

// AvailableSeats returns every free seat number in ascending order.
func (s *Show) AvailableSeats() []int {
	available := []int{}
	for seat := 1; seat <= s.TotalSeats; seat++ {
		if s.IsSeatAvailable(seat) {
			available = append(available, seat)
		}
	}
	return available
}

// Clone returns an independent copy of the show, including its seat set.
func (s *Show) Clone() *Show {
	booked := make([]int, len(s.BookedSeats))
	copy(booked, s.BookedSeats)
	return &Show{
		ID:          s.ID,
		ShowTime:    s.ShowTime,
		TotalSeats:  s.TotalSeats,
		BookedSeats: booked,
	}
}

// Occupancy returns booked seats over total seats as a percentage.
func (s *Show) Occupancy() float64 {
	if s.TotalSeats == 0 {
		return 0
	}
	return float64(len(s.BookedSeats)) / float64(s.TotalSeats) * 100
}
