package hotel

import (
	"sort"
	"strings"
)

type SortBy string

const (
	SortPriceLow  SortBy = "price-low"
	SortPriceHigh SortBy = "price-high"
	SortRating    SortBy = "rating"
	SortName      SortBy = "name"
)

// SearchCriteria describes a hotel search. All predicates are AND-combined;
// a zero-value field means "no filter" on that dimension. An empty
// Destination is treated as no filter rather than an empty-substring match
// (behaviorally equivalent, but explicit).
type SearchCriteria struct {
	Destination string
	MinPrice    *float64
	MaxPrice    *float64
	StarRatings []int
	Amenities   []string
	MinRating   *float64
	SortBy      SortBy
}

func (c SearchCriteria) Matches(h Hotel) bool {
	if dest := strings.TrimSpace(c.Destination); dest != "" {
		d := strings.ToLower(dest)
		if !strings.Contains(strings.ToLower(h.Location.City), d) &&
			!strings.Contains(strings.ToLower(h.Location.State), d) &&
			!strings.Contains(strings.ToLower(h.Name), d) {
			return false
		}
	}

	if c.MinPrice != nil && h.PricePerNight < *c.MinPrice {
		return false
	}
	if c.MaxPrice != nil && h.PricePerNight > *c.MaxPrice {
		return false
	}

	if len(c.StarRatings) > 0 {
		found := false
		for _, s := range c.StarRatings {
			if h.StarRating == s {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	// Any requested amenity being a substring of any hotel amenity is a
	// match; this is deliberately not a subset requirement.
	if len(c.Amenities) > 0 && !matchesAnyAmenity(h.Amenities, c.Amenities) {
		return false
	}

	if c.MinRating != nil && h.Rating < *c.MinRating {
		return false
	}

	return true
}

func matchesAnyAmenity(have, want []string) bool {
	for _, w := range want {
		lw := strings.ToLower(w)
		for _, a := range have {
			if strings.Contains(strings.ToLower(a), lw) {
				return true
			}
		}
	}
	return false
}

// Filter returns the hotels satisfying the criteria, preserving input order.
func Filter(hotels []Hotel, c SearchCriteria) []Hotel {
	out := []Hotel{}
	for _, h := range hotels {
		if c.Matches(h) {
			out = append(out, h)
		}
	}
	return out
}

// Sort orders hotels in place. An unknown or empty SortBy leaves the input
// order untouched.
func Sort(hotels []Hotel, by SortBy) {
	switch by {
	case SortPriceLow:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].PricePerNight < hotels[j].PricePerNight })
	case SortPriceHigh:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].PricePerNight > hotels[j].PricePerNight })
	case SortRating:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Rating > hotels[j].Rating })
	case SortName:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Name < hotels[j].Name })
	}
}

// SearchText matches a free-text query against name, city, state and
// description. An empty query matches nothing.
func SearchText(hotels []Hotel, query string) []Hotel {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []Hotel{}
	}
	out := []Hotel{}
	for _, h := range hotels {
		if strings.Contains(strings.ToLower(h.Name), q) ||
			strings.Contains(strings.ToLower(h.Location.City), q) ||
			strings.Contains(strings.ToLower(h.Location.State), q) ||
			strings.Contains(strings.ToLower(h.Description), q) {
			out = append(out, h)
		}
	}
	return out
}
