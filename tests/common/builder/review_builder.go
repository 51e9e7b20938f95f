//go:build unit || integration

package builder

import (
	"time"

	"stayhub/internal/domain/review"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/recordstore"
)

type ReviewBuilder struct {
	ID       int
	HotelID  int
	UserID   int
	UserName string
	Rating   int
	Title    string
	Comment  string
	Photos   []string
	StayDate time.Time
	Helpful  int
	Verified bool
	Created  time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	return &ReviewBuilder{
		ID:       1,
		HotelID:  1,
		UserID:   42,
		UserName: "Ada Lovelace",
		Rating:   5,
		Title:    "Wonderful stay",
		Comment:  "Spotless rooms and a great breakfast.",
		Photos:   []string{},
		StayDate: time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC),
		Helpful:  0,
		Verified: true,
		Created:  time.Date(2025, 4, 15, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(b)
	return b
}

func (b *ReviewBuilder) BuildDomain() review.Review {
	return review.Review{
		ID:        b.ID,
		HotelID:   b.HotelID,
		UserID:    b.UserID,
		UserName:  b.UserName,
		Rating:    b.Rating,
		Title:     b.Title,
		Comment:   b.Comment,
		Photos:    b.Photos,
		StayDate:  b.StayDate,
		Helpful:   b.Helpful,
		Verified:  b.Verified,
		CreatedAt: b.Created,
		UpdatedAt: b.Created,
	}
}

func (b *ReviewBuilder) BuildRecord() recordstore.RawRecord {
	return formatter.FromReviewFields(b.BuildDomain())
}

func (b *ReviewBuilder) BuildCreateDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		HotelID:  b.HotelID,
		Rating:   b.Rating,
		Title:    b.Title,
		Comment:  b.Comment,
		Photos:   b.Photos,
		StayDate: b.StayDate.Format("2006-01-02"),
		UserName: b.UserName,
	}
}
