package review

import "math"

// Stats carries the aggregation of a hotel's review set: the guest-rating
// average rounded to one decimal and a 1..5 star histogram.
type Stats struct {
	AverageRating float64
	TotalReviews  int
	Distribution  map[int]int
}

func ZeroStats() Stats {
	return Stats{
		AverageRating: 0,
		TotalReviews:  0,
		Distribution:  map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
}

// Aggregate recomputes stats from scratch. It is invoked fresh on every
// hotel-detail read; reviews change independently so nothing is cached.
func Aggregate(reviews []Review) Stats {
	stats := ZeroStats()
	if len(reviews) == 0 {
		return stats
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			stats.Distribution[r.Rating]++
		}
	}

	stats.TotalReviews = len(reviews)
	stats.AverageRating = roundHalfUp1(float64(sum) / float64(len(reviews)))
	return stats
}

// roundHalfUp1 rounds to one decimal place with ties going up, so 4.25
// becomes 4.3. math.Round rounds half away from zero, which coincides with
// half-up for the non-negative averages ratings produce.
func roundHalfUp1(v float64) float64 {
	return math.Round(v*10) / 10
}
