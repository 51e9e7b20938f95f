//go:build unit

package recordstore_test

import (
	"context"
	"testing"

	"stayhub/internal/recordstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore() *recordstore.Memory {
	store := recordstore.NewMemory()
	store.Seed(recordstore.KindHotels,
		recordstore.RawRecord{"Id": 1, "name_c": "Grand Plaza", "city_c": "Miami", "price_per_night_c": 100.0, "star_rating_c": 4, "featured_c": true},
		recordstore.RawRecord{"Id": 2, "name_c": "Ocean Breeze", "city_c": "San Diego", "price_per_night_c": 250.0, "star_rating_c": 5, "featured_c": false},
		recordstore.RawRecord{"Id": 3, "name_c": "City Lights", "city_c": "Austin", "price_per_night_c": 180.0, "star_rating_c": 3, "featured_c": true},
	)
	return store
}

func fetchIDs(t *testing.T, store recordstore.Store, q recordstore.Query) []int {
	t.Helper()
	recs, err := store.FetchMany(context.Background(), recordstore.KindHotels, q)
	require.NoError(t, err)
	ids := make([]int, 0, len(recs))
	for _, rec := range recs {
		id, ok := rec["Id"].(int)
		require.True(t, ok)
		ids = append(ids, id)
	}
	return ids
}

func TestFetchMany_Operators(t *testing.T) {
	store := seededStore()

	tests := []struct {
		name    string
		where   []recordstore.Condition
		wantIDs []int
	}{
		{
			"EqualTo",
			[]recordstore.Condition{{Field: "city_c", Operator: recordstore.EqualTo, Values: []any{"Miami"}}},
			[]int{1},
		},
		{
			"NotEqualTo",
			[]recordstore.Condition{{Field: "city_c", Operator: recordstore.NotEqualTo, Values: []any{"Miami"}}},
			[]int{2, 3},
		},
		{
			"GreaterThanOrEqualTo on numbers",
			[]recordstore.Condition{{Field: "price_per_night_c", Operator: recordstore.GreaterThanOrEqualTo, Values: []any{180.0}}},
			[]int{2, 3},
		},
		{
			"LessThanOrEqualTo on numbers",
			[]recordstore.Condition{{Field: "price_per_night_c", Operator: recordstore.LessThanOrEqualTo, Values: []any{180.0}}},
			[]int{1, 3},
		},
		{
			"Contains is case-insensitive",
			[]recordstore.Condition{{Field: "name_c", Operator: recordstore.Contains, Values: []any{"OCEAN"}}},
			[]int{2},
		},
		{
			"ExactMatch over a value set",
			[]recordstore.Condition{{Field: "star_rating_c", Operator: recordstore.ExactMatch, Values: []any{3, 5}}},
			[]int{2, 3},
		},
		{
			"EqualTo on booleans",
			[]recordstore.Condition{{Field: "featured_c", Operator: recordstore.EqualTo, Values: []any{true}}},
			[]int{1, 3},
		},
		{
			"AND-combined conditions",
			[]recordstore.Condition{
				{Field: "featured_c", Operator: recordstore.EqualTo, Values: []any{true}},
				{Field: "price_per_night_c", Operator: recordstore.GreaterThanOrEqualTo, Values: []any{150.0}},
			},
			[]int{3},
		},
		{
			"empty values list is a no-op filter",
			[]recordstore.Condition{{Field: "city_c", Operator: recordstore.EqualTo, Values: nil}},
			[]int{1, 2, 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantIDs, fetchIDs(t, store, recordstore.Query{Where: tt.where}))
		})
	}
}

func TestFetchMany_OrGroups(t *testing.T) {
	store := seededStore()

	// featured AND (city contains "mia" OR price >= 200)
	q := recordstore.Query{
		Where: []recordstore.Condition{
			{Field: "featured_c", Operator: recordstore.EqualTo, Values: []any{true}},
		},
		OrGroups: [][]recordstore.Condition{
			{{Field: "city_c", Operator: recordstore.Contains, Values: []any{"mia"}}},
			{{Field: "price_per_night_c", Operator: recordstore.GreaterThanOrEqualTo, Values: []any{200.0}}},
		},
	}

	assert.Equal(t, []int{1}, fetchIDs(t, store, q))
}

func TestFetchMany_OrderAndPaging(t *testing.T) {
	store := seededStore()

	q := recordstore.Query{
		OrderBy: []recordstore.OrderBy{{Field: "price_per_night_c", Desc: true}},
	}
	assert.Equal(t, []int{2, 3, 1}, fetchIDs(t, store, q))

	q.Paging = recordstore.Paging{Limit: 1, Offset: 1}
	assert.Equal(t, []int{3}, fetchIDs(t, store, q))

	q.Paging = recordstore.Paging{Offset: 5}
	assert.Empty(t, fetchIDs(t, store, q))
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	store := recordstore.NewMemory()
	ctx := context.Background()

	first, err := store.Create(ctx, recordstore.KindReviews, recordstore.RawRecord{"rating_c": 5})
	require.NoError(t, err)
	second, err := store.Create(ctx, recordstore.KindReviews, recordstore.RawRecord{"rating_c": 3})
	require.NoError(t, err)

	assert.Equal(t, 1, first["Id"])
	assert.Equal(t, 2, second["Id"])

	// Sequences are per kind.
	other, err := store.Create(ctx, recordstore.KindBookings, recordstore.RawRecord{})
	require.NoError(t, err)
	assert.Equal(t, 1, other["Id"])
}

func TestUpdate(t *testing.T) {
	store := seededStore()
	ctx := context.Background()

	updated, err := store.Update(ctx, recordstore.KindHotels, 1, recordstore.RawRecord{
		"price_per_night_c": 120.0,
		"Id":                99, // must be ignored
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated["Id"])
	assert.Equal(t, 120.0, updated["price_per_night_c"])
	// Untouched fields survive a partial update.
	assert.Equal(t, "Grand Plaza", updated["name_c"])

	_, err = store.Update(ctx, recordstore.KindHotels, 42, recordstore.RawRecord{})
	assert.ErrorIs(t, err, recordstore.ErrNotFound)
}

func TestFetchOneAndDelete(t *testing.T) {
	store := seededStore()
	ctx := context.Background()

	rec, err := store.FetchOne(ctx, recordstore.KindHotels, 2)
	require.NoError(t, err)
	assert.Equal(t, "Ocean Breeze", rec["name_c"])

	deleted, err := store.Delete(ctx, recordstore.KindHotels, 2)
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, 2, store.Len(recordstore.KindHotels))

	_, err = store.FetchOne(ctx, recordstore.KindHotels, 2)
	assert.ErrorIs(t, err, recordstore.ErrNotFound)

	deleted, err = store.Delete(ctx, recordstore.KindHotels, 2)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestFetchedRecordsAreCopies(t *testing.T) {
	store := seededStore()
	ctx := context.Background()

	rec, err := store.FetchOne(ctx, recordstore.KindHotels, 1)
	require.NoError(t, err)
	rec["name_c"] = "mutated"

	fresh, err := store.FetchOne(ctx, recordstore.KindHotels, 1)
	require.NoError(t, err)
	assert.Equal(t, "Grand Plaza", fresh["name_c"])
}
