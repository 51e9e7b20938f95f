package queries

import (
	"context"
	"log/slog"

	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
)

var ErrReviewNotFound = errs.New("review not found")

// ReviewFilters narrows a review listing. Zero values mean no filter.
type ReviewFilters struct {
	HotelID   int
	UserID    int
	MinRating int
	Search    string
	SortBy    review.SortBy
}

type ReviewQueries interface {
	List(ctx context.Context, filters ReviewFilters) ([]review.Review, error)
	GetByID(ctx context.Context, id int) (*review.Review, error)
	HotelStats(ctx context.Context, hotelID int) (review.Stats, error)
}

type reviewQueriesImpl struct {
	reviews ReviewReader
	logger  *slog.Logger
}

func NewReviewQueries(reviews ReviewReader, logger *slog.Logger) ReviewQueries {
	return &reviewQueriesImpl{reviews: reviews, logger: logger}
}

func (q *reviewQueriesImpl) List(ctx context.Context, filters ReviewFilters) ([]review.Review, error) {
	var (
		all []review.Review
		err error
	)
	switch {
	case filters.HotelID != 0:
		all, err = q.reviews.FindByHotel(ctx, filters.HotelID)
	case filters.UserID != 0:
		all, err = q.reviews.FindByUser(ctx, filters.UserID)
	default:
		all, err = q.reviews.FindAll(ctx)
	}
	if err != nil {
		q.logger.Warn("review listing degraded to empty result", "error", err.Error())
		return []review.Review{}, nil
	}

	out := []review.Review{}
	for _, r := range all {
		if filters.MinRating > 0 && r.Rating < filters.MinRating {
			continue
		}
		if !review.MatchesSearch(r, filters.Search) {
			continue
		}
		out = append(out, r)
	}

	review.Sort(out, filters.SortBy)
	return out, nil
}

func (q *reviewQueriesImpl) GetByID(ctx context.Context, id int) (*review.Review, error) {
	r, err := q.reviews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &r, nil
}

// HotelStats recomputes the aggregation from the full review set on every
// call; reviews are created, edited and deleted independently, so nothing
// is cached between requests.
func (q *reviewQueriesImpl) HotelStats(ctx context.Context, hotelID int) (review.Stats, error) {
	reviews, err := q.reviews.FindByHotel(ctx, hotelID)
	if err != nil {
		q.logger.Warn("hotel stats degraded to zero stats", "hotel_id", hotelID, "error", err.Error())
		return review.ZeroStats(), nil
	}
	return review.Aggregate(reviews), nil
}
