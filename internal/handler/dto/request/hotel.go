package request

import (
	"stayhub/internal/domain/hotel"
)

type SearchHotelsRequest struct {
	Destination string   `form:"destination"`
	MinPrice    *float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice    *float64 `form:"max_price" binding:"omitempty,min=0"`
	Stars       []int    `form:"stars" binding:"omitempty,dive,min=1,max=5"`
	Amenities   []string `form:"amenities"`
	MinRating   *float64 `form:"min_rating" binding:"omitempty,min=0,max=5"`
	SortBy      string   `form:"sort_by"`
}

func (r *SearchHotelsRequest) ToCriteria() hotel.SearchCriteria {
	return hotel.SearchCriteria{
		Destination: r.Destination,
		MinPrice:    r.MinPrice,
		MaxPrice:    r.MaxPrice,
		StarRatings: r.Stars,
		Amenities:   r.Amenities,
		MinRating:   r.MinRating,
		SortBy:      hotel.SortBy(r.SortBy),
	}
}

type CheckAvailabilityRequest struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}
