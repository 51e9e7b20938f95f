package formatter

import (
	"stayhub/internal/domain/review"
	"stayhub/internal/recordstore"
)

func ToReview(rec recordstore.RawRecord) review.Review {
	return review.Review{
		ID:         num(rec, "Id"),
		HotelID:    num(rec, "hotel_id_c"),
		UserID:     num(rec, "user_id_c"),
		UserName:   str(rec, "user_name_c"),
		UserAvatar: str(rec, "user_avatar_c"),
		Rating:     num(rec, "rating_c"),
		Title:      str(rec, "title_c"),
		Comment:    str(rec, "comment_c"),
		Photos:     stringList(rec, "photos_c"),
		StayDate:   date(rec, "stay_date_c"),
		Helpful:    num(rec, "helpful_c"),
		Verified:   boolean(rec, "verified_c"),
		CreatedAt:  timestamp(rec, "created_at_c"),
		UpdatedAt:  timestamp(rec, "updated_at_c"),
	}
}

func ToReviews(recs []recordstore.RawRecord) []review.Review {
	out := make([]review.Review, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ToReview(rec))
	}
	return out
}

func FromReviewFields(r review.Review) recordstore.RawRecord {
	return recordstore.RawRecord{
		"hotel_id_c":    r.HotelID,
		"user_id_c":     r.UserID,
		"user_name_c":   r.UserName,
		"user_avatar_c": r.UserAvatar,
		"rating_c":      r.Rating,
		"title_c":       r.Title,
		"comment_c":     r.Comment,
		"photos_c":      encodeList(r.Photos),
		"stay_date_c":   formatDate(r.StayDate),
		"helpful_c":     r.Helpful,
		"verified_c":    r.Verified,
		"created_at_c":  formatTimestamp(r.CreatedAt),
		"updated_at_c":  formatTimestamp(r.UpdatedAt),
	}
}
