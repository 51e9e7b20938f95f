package response

import (
	"stayhub/internal/domain/review"
)

type ReviewResponse struct {
	ID         int      `json:"id"`
	HotelID    int      `json:"hotel_id"`
	UserID     int      `json:"user_id"`
	UserName   string   `json:"user_name"`
	UserAvatar string   `json:"user_avatar,omitempty"`
	Rating     int      `json:"rating"`
	Title      string   `json:"title"`
	Comment    string   `json:"comment"`
	Photos     []string `json:"photos"`
	StayDate   string   `json:"stay_date"`
	Helpful    int      `json:"helpful"`
	Verified   bool     `json:"verified"`
	CreatedAt  int64    `json:"created_at"`
	UpdatedAt  int64    `json:"updated_at"`
}

func FromReview(r review.Review) *ReviewResponse {
	stayDate := ""
	if !r.StayDate.IsZero() {
		stayDate = r.StayDate.UTC().Format("2006-01-02")
	}
	return &ReviewResponse{
		ID:         r.ID,
		HotelID:    r.HotelID,
		UserID:     r.UserID,
		UserName:   r.UserName,
		UserAvatar: r.UserAvatar,
		Rating:     r.Rating,
		Title:      r.Title,
		Comment:    r.Comment,
		Photos:     r.Photos,
		StayDate:   stayDate,
		Helpful:    r.Helpful,
		Verified:   r.Verified,
		CreatedAt:  r.CreatedAt.Unix(),
		UpdatedAt:  r.UpdatedAt.Unix(),
	}
}

func FromReviews(rs []review.Review) []*ReviewResponse {
	res := make([]*ReviewResponse, len(rs))
	for i, r := range rs {
		res[i] = FromReview(r)
	}
	return res
}
