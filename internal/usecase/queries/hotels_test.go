//go:build unit

package queries

import (
	"context"
	"log/slog"
	"testing"

	"stayhub/internal/domain/hotel"
	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHotelReader struct {
	hotels  []hotel.Hotel
	byID    map[int]hotel.Hotel
	findErr error
	byIDErr error
}

func (s *stubHotelReader) Find(_ context.Context, _ string) ([]hotel.Hotel, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.hotels, nil
}

func (s *stubHotelReader) FindByID(_ context.Context, id int) (hotel.Hotel, error) {
	if s.byIDErr != nil {
		return hotel.Hotel{}, s.byIDErr
	}
	h, ok := s.byID[id]
	if !ok {
		return hotel.Hotel{}, infra.WrapStoreErr("hotel not found", nil, infra.KindNotFound)
	}
	return h, nil
}

func (s *stubHotelReader) Featured(_ context.Context, limit int) ([]hotel.Hotel, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if len(s.hotels) > limit {
		return s.hotels[:limit], nil
	}
	return s.hotels, nil
}

type stubReviewReader struct {
	reviews []review.Review
	err     error
}

func (s *stubReviewReader) FindByHotel(_ context.Context, _ int) ([]review.Review, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.reviews, nil
}

func (s *stubReviewReader) FindByUser(_ context.Context, _ int) ([]review.Review, error) {
	return s.reviews, s.err
}

func (s *stubReviewReader) FindAll(_ context.Context) ([]review.Review, error) {
	return s.reviews, s.err
}

func (s *stubReviewReader) FindByID(_ context.Context, _ int) (review.Review, error) {
	return review.Review{}, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func sampleHotels() []hotel.Hotel {
	return []hotel.Hotel{
		{ID: 1, Name: "Grand Plaza", Location: hotel.Location{City: "Miami"}, PricePerNight: 100, StarRating: 4, Rating: 4.5, Available: true},
		{ID: 2, Name: "Ocean Breeze", Location: hotel.Location{City: "San Diego"}, PricePerNight: 250, StarRating: 5, Rating: 4.8, Available: true},
		{ID: 3, Name: "City Lights", Location: hotel.Location{City: "Austin"}, PricePerNight: 180, StarRating: 3, Rating: 3.9, Available: true},
	}
}

func TestHotelQueries_Search(t *testing.T) {
	t.Parallel()

	q := NewHotelQueries(&stubHotelReader{hotels: sampleHotels()}, &stubReviewReader{}, discardLogger())

	maxPrice := 200.0
	got, err := q.Search(context.Background(), hotel.SearchCriteria{
		MaxPrice: &maxPrice,
		SortBy:   hotel.SortPriceLow,
	})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Grand Plaza", got[0].Name)
	assert.Equal(t, "City Lights", got[1].Name)
}

func TestHotelQueries_SearchDegradesOnStoreFailure(t *testing.T) {
	t.Parallel()

	reader := &stubHotelReader{findErr: errs.New("connection refused")}
	q := NewHotelQueries(reader, &stubReviewReader{}, discardLogger())

	got, err := q.Search(context.Background(), hotel.SearchCriteria{})

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestHotelQueries_GetByID_StatsOverrideStoredRating(t *testing.T) {
	t.Parallel()

	reader := &stubHotelReader{byID: map[int]hotel.Hotel{
		7: {ID: 7, Name: "Grand Plaza", Rating: 3.2, ReviewCount: 1},
	}}
	reviews := &stubReviewReader{reviews: []review.Review{
		{ID: 1, HotelID: 7, Rating: 5},
		{ID: 2, HotelID: 7, Rating: 4},
	}}
	q := NewHotelQueries(reader, reviews, discardLogger())

	detail, err := q.GetByID(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, detail.Stats)
	assert.Equal(t, 2, detail.ReviewCount)
	assert.InDelta(t, 4.5, detail.Rating, 0.001)
	assert.Equal(t, 2, detail.Stats.TotalReviews)
}

func TestHotelQueries_GetByID_NoReviewsKeepsStoredRating(t *testing.T) {
	t.Parallel()

	reader := &stubHotelReader{byID: map[int]hotel.Hotel{
		7: {ID: 7, Name: "Grand Plaza", Rating: 3.2, ReviewCount: 12},
	}}
	q := NewHotelQueries(reader, &stubReviewReader{}, discardLogger())

	detail, err := q.GetByID(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, detail.Stats)
	assert.Equal(t, 0, detail.Stats.TotalReviews)
	assert.InDelta(t, 3.2, detail.Rating, 0.001)
	assert.Equal(t, 12, detail.ReviewCount)
}

func TestHotelQueries_GetByID_ReviewFailureFallsBack(t *testing.T) {
	t.Parallel()

	reader := &stubHotelReader{byID: map[int]hotel.Hotel{
		7: {ID: 7, Name: "Grand Plaza", Rating: 3.2, ReviewCount: 12},
	}}
	reviews := &stubReviewReader{err: errs.New("review store down")}
	q := NewHotelQueries(reader, reviews, discardLogger())

	detail, err := q.GetByID(context.Background(), 7)

	require.NoError(t, err)
	assert.Nil(t, detail.Stats)
	assert.InDelta(t, 3.2, detail.Rating, 0.001)
	assert.Equal(t, 12, detail.ReviewCount)
}

func TestHotelQueries_GetByID_NotFound(t *testing.T) {
	t.Parallel()

	q := NewHotelQueries(&stubHotelReader{byID: map[int]hotel.Hotel{}}, &stubReviewReader{}, discardLogger())

	_, err := q.GetByID(context.Background(), 99)

	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestHotelQueries_Featured(t *testing.T) {
	t.Parallel()

	q := NewHotelQueries(&stubHotelReader{hotels: sampleHotels()}, &stubReviewReader{}, discardLogger())

	got, err := q.Featured(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestHotelQueries_SearchText(t *testing.T) {
	t.Parallel()

	q := NewHotelQueries(&stubHotelReader{hotels: sampleHotels()}, &stubReviewReader{}, discardLogger())

	got, err := q.SearchText(context.Background(), "ocean")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ocean Breeze", got[0].Name)

	got, err = q.SearchText(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, got)
}
