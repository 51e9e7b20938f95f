//go:build unit

package review_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/review"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRating(t *testing.T) {
	for v := 1; v <= 5; v++ {
		r, err := review.NewRating(v)
		require.NoError(t, err)
		assert.Equal(t, v, r.Value())
	}

	for _, v := range []int{0, 6, -1} {
		_, err := review.NewRating(v)
		assert.ErrorIs(t, err, review.ErrInvalidRating)
	}
}

func TestNewTitle(t *testing.T) {
	title, err := review.NewTitle("  Wonderful stay  ")
	require.NoError(t, err)
	assert.Equal(t, "Wonderful stay", title.String())

	_, err = review.NewTitle("   ")
	assert.ErrorIs(t, err, review.ErrEmptyTitle)
}

func TestNewStayDate(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	t.Run("past date is valid", func(t *testing.T) {
		d, err := review.NewStayDate(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), d.Time())
	})

	t.Run("same calendar day is valid regardless of time of day", func(t *testing.T) {
		_, err := review.NewStayDate(time.Date(2025, 6, 15, 23, 0, 0, 0, time.UTC), now)
		assert.NoError(t, err)
	})

	t.Run("future date is rejected", func(t *testing.T) {
		_, err := review.NewStayDate(time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), now)
		assert.ErrorIs(t, err, review.ErrFutureStayDate)
	})

	t.Run("zero date is rejected", func(t *testing.T) {
		_, err := review.NewStayDate(time.Time{}, now)
		assert.ErrorIs(t, err, review.ErrMissingStayDate)
	})
}

func TestNewPhotos(t *testing.T) {
	t.Run("nil yields empty slice", func(t *testing.T) {
		p, err := review.NewPhotos(nil)
		require.NoError(t, err)
		assert.NotNil(t, p.URLs())
		assert.Empty(t, p.URLs())
	})

	t.Run("at most six photos", func(t *testing.T) {
		urls := make([]string, review.MaxPhotos+1)
		for i := range urls {
			urls[i] = "https://example.com/p.jpg"
		}
		_, err := review.NewPhotos(urls)
		assert.ErrorIs(t, err, review.ErrTooManyPhotos)

		_, err = review.NewPhotos(urls[:review.MaxPhotos])
		assert.NoError(t, err)
	})
}

func TestSort(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	rs := []review.Review{
		{ID: 1, Rating: 3, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: 2, Rating: 5, CreatedAt: base.AddDate(0, 0, 3)},
		{ID: 3, Rating: 4, CreatedAt: base.AddDate(0, 0, 2)},
	}

	tests := []struct {
		name    string
		by      review.SortBy
		wantIDs []int
	}{
		{"newest first", review.SortNewest, []int{2, 3, 1}},
		{"oldest first", review.SortOldest, []int{1, 3, 2}},
		{"highest rating first", review.SortRatingHigh, []int{2, 3, 1}},
		{"lowest rating first", review.SortRatingLow, []int{1, 3, 2}},
		{"unknown falls back to newest", review.SortBy("bogus"), []int{2, 3, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := make([]review.Review, len(rs))
			copy(in, rs)
			review.Sort(in, tt.by)

			ids := make([]int, 0, len(in))
			for _, r := range in {
				ids = append(ids, r.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestMatchesSearch(t *testing.T) {
	r := review.Review{Title: "Great pool", Comment: "Loved the rooftop bar", UserName: "Dana"}

	assert.True(t, review.MatchesSearch(r, "POOL"))
	assert.True(t, review.MatchesSearch(r, "rooftop"))
	assert.True(t, review.MatchesSearch(r, "dana"))
	assert.True(t, review.MatchesSearch(r, ""))
	assert.False(t, review.MatchesSearch(r, "breakfast"))
}
