package queries

import (
	"context"
	"log/slog"
	"sync"

	"stayhub/internal/domain/hotel"
	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
)

var ErrHotelNotFound = errs.New("hotel not found")

const featuredLimit = 4

// HotelDetail is a hotel enriched with review aggregation. Stats being nil
// means the review subsystem was unreachable and the hotel's stored
// rating/reviewCount fields are serving as the fallback cache.
type HotelDetail struct {
	hotel.Hotel
	Stats *review.Stats
}

type HotelQueries interface {
	Search(ctx context.Context, criteria hotel.SearchCriteria) ([]hotel.Hotel, error)
	GetByID(ctx context.Context, id int) (*HotelDetail, error)
	Featured(ctx context.Context) ([]hotel.Hotel, error)
	SearchText(ctx context.Context, query string) ([]hotel.Hotel, error)
}

type HotelReader interface {
	Find(ctx context.Context, destination string) ([]hotel.Hotel, error)
	FindByID(ctx context.Context, id int) (hotel.Hotel, error)
	Featured(ctx context.Context, limit int) ([]hotel.Hotel, error)
}

type ReviewReader interface {
	FindByHotel(ctx context.Context, hotelID int) ([]review.Review, error)
	FindByUser(ctx context.Context, userID int) ([]review.Review, error)
	FindAll(ctx context.Context) ([]review.Review, error)
	FindByID(ctx context.Context, id int) (review.Review, error)
}

type hotelQueriesImpl struct {
	hotels  HotelReader
	reviews ReviewReader
	logger  *slog.Logger
}

func NewHotelQueries(hotels HotelReader, reviews ReviewReader, logger *slog.Logger) HotelQueries {
	return &hotelQueriesImpl{hotels: hotels, reviews: reviews, logger: logger}
}

// Search applies the full filter and sort pipeline. Store failures degrade
// to an empty result so the listing page can render an empty state instead
// of erroring.
func (q *hotelQueriesImpl) Search(ctx context.Context, criteria hotel.SearchCriteria) ([]hotel.Hotel, error) {
	all, err := q.hotels.Find(ctx, criteria.Destination)
	if err != nil {
		q.logger.Warn("hotel search degraded to empty result", "error", err.Error())
		return []hotel.Hotel{}, nil
	}

	matched := hotel.Filter(all, criteria)
	hotel.Sort(matched, criteria.SortBy)
	return matched, nil
}

// GetByID loads the hotel and its review aggregation concurrently; the two
// reads are independent and unordered. Aggregation is authoritative for
// rating/reviewCount; the stored fields are only a fallback when the review
// read fails.
func (q *hotelQueriesImpl) GetByID(ctx context.Context, id int) (*HotelDetail, error) {
	var (
		wg       sync.WaitGroup
		h        hotel.Hotel
		hotelErr error
		stats    review.Stats
		statsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		h, hotelErr = q.hotels.FindByID(ctx, id)
	}()
	go func() {
		defer wg.Done()
		var reviews []review.Review
		reviews, statsErr = q.reviews.FindByHotel(ctx, id)
		if statsErr == nil {
			stats = review.Aggregate(reviews)
		}
	}()
	wg.Wait()

	if hotelErr != nil {
		if infra.IsKind(hotelErr, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, hotelErr
	}

	detail := &HotelDetail{Hotel: h}
	if statsErr != nil {
		q.logger.Warn("review stats unavailable, using stored hotel rating", "hotel_id", id, "error", statsErr.Error())
		return detail, nil
	}

	detail.Stats = &stats
	if stats.TotalReviews > 0 {
		detail.Rating = stats.AverageRating
		detail.ReviewCount = stats.TotalReviews
	}
	return detail, nil
}

func (q *hotelQueriesImpl) Featured(ctx context.Context) ([]hotel.Hotel, error) {
	featured, err := q.hotels.Featured(ctx, featuredLimit)
	if err != nil {
		q.logger.Warn("featured hotels degraded to empty result", "error", err.Error())
		return []hotel.Hotel{}, nil
	}
	return featured, nil
}

func (q *hotelQueriesImpl) SearchText(ctx context.Context, query string) ([]hotel.Hotel, error) {
	if query == "" {
		return []hotel.Hotel{}, nil
	}
	all, err := q.hotels.Find(ctx, "")
	if err != nil {
		q.logger.Warn("hotel text search degraded to empty result", "error", err.Error())
		return []hotel.Hotel{}, nil
	}
	return hotel.SearchText(all, query), nil
}
