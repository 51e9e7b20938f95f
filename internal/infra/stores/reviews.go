package stores

import (
	"context"
	"errors"

	"stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/recordstore"
)

type ReviewStore struct {
	store recordstore.Store
}

func NewReviewStore(store recordstore.Store) *ReviewStore {
	return &ReviewStore{store: store}
}

func (s *ReviewStore) FindByHotel(ctx context.Context, hotelID int) ([]review.Review, error) {
	q := recordstore.Query{
		Where: []recordstore.Condition{
			{Field: "hotel_id_c", Operator: recordstore.EqualTo, Values: []any{hotelID}},
		},
	}
	recs, err := s.store.FetchMany(ctx, recordstore.KindReviews, q)
	if err != nil {
		return nil, infra.WrapStoreErr("failed to fetch hotel reviews", err)
	}
	return formatter.ToReviews(recs), nil
}

func (s *ReviewStore) FindByUser(ctx context.Context, userID int) ([]review.Review, error) {
	q := recordstore.Query{
		Where: []recordstore.Condition{
			{Field: "user_id_c", Operator: recordstore.EqualTo, Values: []any{userID}},
		},
	}
	recs, err := s.store.FetchMany(ctx, recordstore.KindReviews, q)
	if err != nil {
		return nil, infra.WrapStoreErr("failed to fetch user reviews", err)
	}
	return formatter.ToReviews(recs), nil
}

func (s *ReviewStore) FindAll(ctx context.Context) ([]review.Review, error) {
	recs, err := s.store.FetchMany(ctx, recordstore.KindReviews, recordstore.Query{})
	if err != nil {
		return nil, infra.WrapStoreErr("failed to fetch reviews", err)
	}
	return formatter.ToReviews(recs), nil
}

func (s *ReviewStore) FindByID(ctx context.Context, id int) (review.Review, error) {
	rec, err := s.store.FetchOne(ctx, recordstore.KindReviews, id)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return review.Review{}, infra.WrapStoreErr("review not found", err, infra.KindNotFound)
		}
		return review.Review{}, infra.WrapStoreErr("failed to fetch review", err)
	}
	return formatter.ToReview(rec), nil
}

func (s *ReviewStore) Create(ctx context.Context, r review.Review) (review.Review, error) {
	rec, err := s.store.Create(ctx, recordstore.KindReviews, formatter.FromReviewFields(r))
	if err != nil {
		return review.Review{}, infra.WrapStoreErr("failed to create review", err)
	}
	return formatter.ToReview(rec), nil
}

func (s *ReviewStore) Update(ctx context.Context, id int, fields recordstore.RawRecord) (review.Review, error) {
	rec, err := s.store.Update(ctx, recordstore.KindReviews, id, fields)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return review.Review{}, infra.WrapStoreErr("review not found", err, infra.KindNotFound)
		}
		return review.Review{}, infra.WrapStoreErr("failed to update review", err)
	}
	return formatter.ToReview(rec), nil
}

func (s *ReviewStore) Delete(ctx context.Context, id int) error {
	deleted, err := s.store.Delete(ctx, recordstore.KindReviews, id)
	if err != nil {
		return infra.WrapStoreErr("failed to delete review", err)
	}
	if !deleted {
		return infra.WrapStoreErr("review not found", recordstore.ErrNotFound, infra.KindNotFound)
	}
	return nil
}
