package request

import (
	"stayhub/internal/usecase/commands"
)

type CreateReviewRequest struct {
	HotelID  int      `json:"hotel_id" binding:"required"`
	Rating   int      `json:"rating" binding:"required,min=1,max=5"`
	Title    string   `json:"title" binding:"required,max=200"`
	Comment  string   `json:"comment" binding:"required,max=2000"`
	Photos   []string `json:"photos" binding:"omitempty,max=6,dive,url"`
	StayDate string   `json:"stay_date" binding:"omitempty,datetime=2006-01-02"`
	UserName string   `json:"user_name" binding:"omitempty,max=100"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		HotelID:  r.HotelID,
		Rating:   r.Rating,
		Title:    r.Title,
		Comment:  r.Comment,
		Photos:   r.Photos,
		StayDate: r.StayDate,
		UserName: r.UserName,
	}
}

type UpdateReviewRequest struct {
	Rating   int      `json:"rating" binding:"required,min=1,max=5"`
	Title    string   `json:"title" binding:"required,max=200"`
	Comment  string   `json:"comment" binding:"required,max=2000"`
	Photos   []string `json:"photos" binding:"omitempty,max=6,dive,url"`
	StayDate string   `json:"stay_date" binding:"omitempty,datetime=2006-01-02"`
}

func (r *UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{
		Rating:   r.Rating,
		Title:    r.Title,
		Comment:  r.Comment,
		Photos:   r.Photos,
		StayDate: r.StayDate,
	}
}
