package stores

import (
	"context"
	"errors"

	"stayhub/internal/domain/booking"
	"stayhub/internal/infra"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/recordstore"
)

type BookingStore struct {
	store recordstore.Store
}

func NewBookingStore(store recordstore.Store) *BookingStore {
	return &BookingStore{store: store}
}

func (s *BookingStore) FindByUser(ctx context.Context, userID int) ([]booking.Booking, error) {
	q := recordstore.Query{
		Where: []recordstore.Condition{
			{Field: "user_id_c", Operator: recordstore.EqualTo, Values: []any{userID}},
		},
	}
	recs, err := s.store.FetchMany(ctx, recordstore.KindBookings, q)
	if err != nil {
		return nil, infra.WrapStoreErr("failed to fetch user bookings", err)
	}
	return formatter.ToBookings(recs), nil
}

func (s *BookingStore) FindByID(ctx context.Context, id int) (booking.Booking, error) {
	rec, err := s.store.FetchOne(ctx, recordstore.KindBookings, id)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return booking.Booking{}, infra.WrapStoreErr("booking not found", err, infra.KindNotFound)
		}
		return booking.Booking{}, infra.WrapStoreErr("failed to fetch booking", err)
	}
	return formatter.ToBooking(rec), nil
}

func (s *BookingStore) Create(ctx context.Context, b booking.Booking) (booking.Booking, error) {
	rec, err := s.store.Create(ctx, recordstore.KindBookings, formatter.FromBookingFields(b))
	if err != nil {
		return booking.Booking{}, infra.WrapStoreErr("failed to create booking", err)
	}
	return formatter.ToBooking(rec), nil
}

func (s *BookingStore) Update(ctx context.Context, id int, fields recordstore.RawRecord) (booking.Booking, error) {
	rec, err := s.store.Update(ctx, recordstore.KindBookings, id, fields)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return booking.Booking{}, infra.WrapStoreErr("booking not found", err, infra.KindNotFound)
		}
		return booking.Booking{}, infra.WrapStoreErr("failed to update booking", err)
	}
	return formatter.ToBooking(rec), nil
}

func (s *BookingStore) Delete(ctx context.Context, id int) error {
	deleted, err := s.store.Delete(ctx, recordstore.KindBookings, id)
	if err != nil {
		return infra.WrapStoreErr("failed to delete booking", err)
	}
	if !deleted {
		return infra.WrapStoreErr("booking not found", recordstore.ErrNotFound, infra.KindNotFound)
	}
	return nil
}
