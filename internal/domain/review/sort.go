package review

import (
	"sort"
	"strings"
)

type SortBy string

const (
	SortNewest     SortBy = "newest"
	SortOldest     SortBy = "oldest"
	SortRatingHigh SortBy = "rating-high"
	SortRatingLow  SortBy = "rating-low"
)

// Sort orders reviews in place. Unknown values fall back to newest-first,
// matching the listing default.
func Sort(reviews []Review, by SortBy) {
	switch by {
	case SortOldest:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].CreatedAt.Before(reviews[j].CreatedAt) })
	case SortRatingHigh:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Rating > reviews[j].Rating })
	case SortRatingLow:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].Rating < reviews[j].Rating })
	default:
		sort.SliceStable(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	}
}

// MatchesSearch reports whether a review's title, comment or reviewer name
// contains the query, case-insensitively.
func MatchesSearch(r Review, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Title), q) ||
		strings.Contains(strings.ToLower(r.Comment), q) ||
		strings.Contains(strings.ToLower(r.UserName), q)
}
