package commands

import (
	"context"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/recordstore"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrBookingAccess    = errs.New("booking belongs to another user")
	ErrRoomUnavailable  = errs.New("room is no longer available for selected dates")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreateBookingInput struct {
	HotelID      int
	HotelName    string
	HotelImage   string
	Location     string
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
	RoomType     string
	TotalPrice   float64
	GuestDetails booking.GuestDetails
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput, userID int) (*booking.Booking, error)
	Cancel(ctx context.Context, id int, actorID int) (*booking.Booking, error)
	Delete(ctx context.Context, id int, actorID int) error
}

type BookingWriter interface {
	FindByID(ctx context.Context, id int) (booking.Booking, error)
	Create(ctx context.Context, b booking.Booking) (booking.Booking, error)
	Update(ctx context.Context, id int, fields recordstore.RawRecord) (booking.Booking, error)
	Delete(ctx context.Context, id int) error
}

type bookingCommandsImpl struct {
	bookings BookingWriter
	conflict booking.ConflictPolicy
	clock    clock.Clock
}

func NewBookingCommands(bookings BookingWriter, conflict booking.ConflictPolicy, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{bookings: bookings, conflict: conflict, clock: clk}
}

// Create validates everything before any persistence call, then simulates
// contention against concurrent bookers. A conflict surfaces as a retryable
// error; the caller may retry the same request unchanged.
func (c *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput, userID int) (*booking.Booking, error) {
	stay, err := booking.NewStayRange(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if input.Guests <= 0 {
		return nil, errs.Mark(booking.ErrInvalidGuestCount, ErrDomainValidation)
	}
	if err := input.GuestDetails.Validate(); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if input.TotalPrice < 0 {
		return nil, errs.Mark(errs.New("total price cannot be negative"), ErrDomainValidation)
	}

	if c.conflict.Conflict() {
		return nil, ErrRoomUnavailable
	}

	now := c.clock.Now()
	created, err := c.bookings.Create(ctx, booking.Booking{
		UserID:       userID,
		HotelID:      input.HotelID,
		HotelName:    input.HotelName,
		HotelImage:   input.HotelImage,
		Location:     input.Location,
		CheckIn:      stay.CheckIn(),
		CheckOut:     stay.CheckOut(),
		Guests:       input.Guests,
		Nights:       stay.Nights(),
		RoomType:     input.RoomType,
		TotalPrice:   input.TotalPrice,
		Status:       booking.StatusConfirmed,
		GuestDetails: input.GuestDetails,
		CreatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	// The confirmation number derives from the assigned record id, so it
	// is written in a follow-up update. If that write fails the booking
	// is removed again; otherwise a retry would duplicate it.
	confirmed, err := c.bookings.Update(ctx, created.ID, recordstore.RawRecord{
		"confirmation_number_c": booking.ConfirmationNumber(created.ID, now.Year()),
	})
	if err != nil {
		_ = c.bookings.Delete(ctx, created.ID)
		return nil, err
	}
	return &confirmed, nil
}

// Cancel is idempotent: cancelling an already cancelled booking returns the
// terminal state unchanged rather than an error.
func (c *bookingCommandsImpl) Cancel(ctx context.Context, id int, actorID int) (*booking.Booking, error) {
	b, err := c.fetchOwned(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	changed, err := b.Cancel()
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	if !changed {
		return b, nil
	}

	cancelled, err := c.bookings.Update(ctx, id, recordstore.RawRecord{
		"status_c": string(booking.StatusCancelled),
	})
	if err != nil {
		return nil, err
	}
	return &cancelled, nil
}

func (c *bookingCommandsImpl) Delete(ctx context.Context, id int, actorID int) error {
	if _, err := c.fetchOwned(ctx, id, actorID); err != nil {
		return err
	}
	return c.bookings.Delete(ctx, id)
}

func (c *bookingCommandsImpl) fetchOwned(ctx context.Context, id int, actorID int) (*booking.Booking, error) {
	b, err := c.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != actorID {
		return nil, ErrBookingAccess
	}
	return &b, nil
}
