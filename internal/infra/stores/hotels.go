// Package stores wraps the record store with typed, per-entity access and
// tags failures with kinds the usecase layer branches on.
package stores

import (
	"context"
	"errors"

	"stayhub/internal/domain/hotel"
	"stayhub/internal/infra"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/recordstore"
)

type HotelStore struct {
	store recordstore.Store
}

func NewHotelStore(store recordstore.Store) *HotelStore {
	return &HotelStore{store: store}
}

// Find fetches hotels, pushing the destination predicate down to the store
// as an OR-group over city, state and name. The query engine re-applies the
// full predicate set in-process, so a store that ignores criteria still
// yields correct results.
func (s *HotelStore) Find(ctx context.Context, destination string) ([]hotel.Hotel, error) {
	q := recordstore.Query{}
	if destination != "" {
		q.OrGroups = [][]recordstore.Condition{
			{{Field: "city_c", Operator: recordstore.Contains, Values: []any{destination}}},
			{{Field: "state_c", Operator: recordstore.Contains, Values: []any{destination}}},
			{{Field: "name_c", Operator: recordstore.Contains, Values: []any{destination}}},
		}
	}

	recs, err := s.store.FetchMany(ctx, recordstore.KindHotels, q)
	if err != nil {
		return nil, infra.WrapStoreErr("failed to fetch hotels", err)
	}
	return formatter.ToHotels(recs), nil
}

func (s *HotelStore) FindByID(ctx context.Context, id int) (hotel.Hotel, error) {
	rec, err := s.store.FetchOne(ctx, recordstore.KindHotels, id)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return hotel.Hotel{}, infra.WrapStoreErr("hotel not found", err, infra.KindNotFound)
		}
		return hotel.Hotel{}, infra.WrapStoreErr("failed to fetch hotel", err)
	}
	return formatter.ToHotel(rec), nil
}

func (s *HotelStore) Featured(ctx context.Context, limit int) ([]hotel.Hotel, error) {
	q := recordstore.Query{
		Where: []recordstore.Condition{
			{Field: "featured_c", Operator: recordstore.EqualTo, Values: []any{true}},
		},
		Paging: recordstore.Paging{Limit: limit},
	}
	recs, err := s.store.FetchMany(ctx, recordstore.KindHotels, q)
	if err != nil {
		return nil, infra.WrapStoreErr("failed to fetch featured hotels", err)
	}
	return formatter.ToHotels(recs), nil
}
