package booking

import (
	"time"

	"stayhub/internal/pkg/errs"
)

var (
	ErrInvalidStatus     = errs.New("invalid booking status")
	ErrAlreadyCancelled  = errs.New("booking is already cancelled")
	ErrNotCancellable    = errs.New("booking cannot be cancelled")
	ErrInvalidGuestCount = errs.New("guest count must be positive")
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"

	// StatusUpcoming appears in legacy stored data. New bookings never
	// persist it; the "upcoming" view is derived from dates instead, and
	// for transition purposes a stored "upcoming" behaves as confirmed.
	StatusUpcoming Status = "upcoming"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusConfirmed, StatusCompleted, StatusCancelled, StatusUpcoming:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

type Booking struct {
	ID                 int
	UserID             int
	HotelID            int
	HotelName          string
	HotelImage         string
	Location           string
	CheckIn            time.Time
	CheckOut           time.Time
	Guests             int
	Nights             int
	RoomType           string
	TotalPrice         float64
	ConfirmationNumber string
	Status             Status
	GuestDetails       GuestDetails
	CreatedAt          time.Time
}

// Cancel transitions the booking to cancelled. Cancelling an already
// cancelled booking is a no-op, not an error: the caller gets the terminal
// state back unchanged. Completed stays are not cancellable.
func (b *Booking) Cancel() (changed bool, err error) {
	switch b.Status {
	case StatusCancelled:
		return false, nil
	case StatusCompleted:
		return false, ErrNotCancellable
	case StatusConfirmed, StatusUpcoming:
		b.Status = StatusCancelled
		return true, nil
	default:
		return false, ErrInvalidStatus
	}
}

// IsUpcoming derives the "upcoming" view: not cancelled and checking in
// today or later. This is never a stored status.
func (b *Booking) IsUpcoming(today time.Time) bool {
	return b.Status != StatusCancelled && !b.CheckIn.Before(today)
}
