//go:build unit

package hotel_test

import (
	"testing"

	"stayhub/internal/domain/hotel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrF(v float64) *float64 { return &v }

func sampleHotels() []hotel.Hotel {
	return []hotel.Hotel{
		{
			ID:            1,
			Name:          "Grand Plaza",
			Location:      hotel.Location{City: "Miami", State: "Florida", Country: "USA"},
			PricePerNight: 100,
			StarRating:    4,
			Rating:        4.5,
			Amenities:     []string{"Free WiFi", "Pool", "Gym"},
			Available:     true,
		},
		{
			ID:            2,
			Name:          "Ocean Breeze Resort",
			Location:      hotel.Location{City: "San Diego", State: "California", Country: "USA"},
			PricePerNight: 250,
			StarRating:    5,
			Rating:        4.8,
			Amenities:     []string{"Spa", "Beach Access"},
			Available:     true,
		},
		{
			ID:            3,
			Name:          "City Lights Inn",
			Location:      hotel.Location{City: "Austin", State: "Texas", Country: "USA"},
			PricePerNight: 180,
			StarRating:    3,
			Rating:        3.9,
			Amenities:     []string{"Free WiFi", "Parking"},
			Available:     true,
		},
	}
}

func TestFilter_MaxPrice(t *testing.T) {
	got := hotel.Filter(sampleHotels(), hotel.SearchCriteria{MaxPrice: ptrF(200)})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestFilter_PriceRange(t *testing.T) {
	got := hotel.Filter(sampleHotels(), hotel.SearchCriteria{MinPrice: ptrF(150), MaxPrice: ptrF(200)})

	require.Len(t, got, 1)
	assert.Equal(t, "City Lights Inn", got[0].Name)
}

func TestFilter_Destination(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		wantIDs     []int
	}{
		{"matches city case-insensitively", "miami", []int{1}},
		{"matches state substring", "calif", []int{2}},
		{"matches hotel name", "lights", []int{3}},
		{"empty destination matches everything", "", []int{1, 2, 3}},
		{"no match yields empty slice", "tokyo", []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hotel.Filter(sampleHotels(), hotel.SearchCriteria{Destination: tt.destination})

			ids := make([]int, 0, len(got))
			for _, h := range got {
				ids = append(ids, h.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestFilter_StarRatings(t *testing.T) {
	got := hotel.Filter(sampleHotels(), hotel.SearchCriteria{StarRatings: []int{3, 5}})

	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestFilter_Amenities_AnyMatchSuffices(t *testing.T) {
	// "wifi" matches "Free WiFi" as a case-insensitive substring; one
	// matching amenity is enough even though "Helipad" matches nothing.
	got := hotel.Filter(sampleHotels(), hotel.SearchCriteria{Amenities: []string{"wifi", "Helipad"}})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestFilter_MinRating(t *testing.T) {
	got := hotel.Filter(sampleHotels(), hotel.SearchCriteria{MinRating: ptrF(4.0)})

	require.Len(t, got, 2)
	for _, h := range got {
		assert.GreaterOrEqual(t, h.Rating, 4.0)
	}
}

func TestFilter_CombinedCriteria(t *testing.T) {
	got := hotel.Filter(sampleHotels(), hotel.SearchCriteria{
		Destination: "usa",
		MaxPrice:    ptrF(300),
		StarRatings: []int{4, 5},
	})

	// Destination only looks at city, state and name, so "usa" matches nothing.
	assert.Empty(t, got)
}

func TestSort(t *testing.T) {
	tests := []struct {
		name    string
		by      hotel.SortBy
		wantIDs []int
	}{
		{"price ascending", hotel.SortPriceLow, []int{1, 3, 2}},
		{"price descending", hotel.SortPriceHigh, []int{2, 3, 1}},
		{"rating descending", hotel.SortRating, []int{2, 1, 3}},
		{"name alphabetical", hotel.SortName, []int{3, 1, 2}},
		{"unknown keeps input order", hotel.SortBy("bogus"), []int{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hs := sampleHotels()
			hotel.Sort(hs, tt.by)

			ids := make([]int, 0, len(hs))
			for _, h := range hs {
				ids = append(ids, h.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestSearchText(t *testing.T) {
	hs := sampleHotels()
	hs[0].Description = "Rooftop bar with skyline views"

	t.Run("matches description", func(t *testing.T) {
		got := hotel.SearchText(hs, "skyline")
		require.Len(t, got, 1)
		assert.Equal(t, 1, got[0].ID)
	})

	t.Run("matches city", func(t *testing.T) {
		got := hotel.SearchText(hs, "austin")
		require.Len(t, got, 1)
		assert.Equal(t, 3, got[0].ID)
	})

	t.Run("empty query yields empty result", func(t *testing.T) {
		assert.Empty(t, hotel.SearchText(hs, ""))
	})
}
