package response

import (
	"stayhub/internal/domain/hotel"
	"stayhub/internal/domain/review"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/queries"
)

type LocationResponse struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type HotelResponse struct {
	ID            int              `json:"id"`
	Name          string           `json:"name"`
	Location      LocationResponse `json:"location"`
	Address       string           `json:"address"`
	PricePerNight float64          `json:"price_per_night"`
	StarRating    int              `json:"star_rating"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"review_count"`
	Available     bool             `json:"available"`
	Featured      bool             `json:"featured"`
	Description   string           `json:"description"`
	Amenities     []string         `json:"amenities"`
	Images        []string         `json:"images"`
}

func FromHotel(h hotel.Hotel) *HotelResponse {
	return &HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Location:      LocationResponse{City: h.Location.City, State: h.Location.State, Country: h.Location.Country},
		Address:       h.Address,
		PricePerNight: h.PricePerNight,
		StarRating:    h.StarRating,
		Rating:        h.Rating,
		ReviewCount:   h.ReviewCount,
		Available:     h.Available,
		Featured:      h.Featured,
		Description:   h.Description,
		Amenities:     h.Amenities,
		Images:        h.Images,
	}
}

func FromHotels(hs []hotel.Hotel) []*HotelResponse {
	res := make([]*HotelResponse, len(hs))
	for i, h := range hs {
		res[i] = FromHotel(h)
	}
	return res
}

type HotelDetailResponse struct {
	HotelResponse
	Stats *ReviewStatsResponse `json:"stats,omitempty"`
}

func FromHotelDetail(d *queries.HotelDetail) *HotelDetailResponse {
	resp := &HotelDetailResponse{HotelResponse: *FromHotel(d.Hotel)}
	if d.Stats != nil {
		resp.Stats = FromReviewStats(*d.Stats)
	}
	return resp
}

type ReviewStatsResponse struct {
	AverageRating float64     `json:"average_rating"`
	TotalReviews  int         `json:"total_reviews"`
	Distribution  map[int]int `json:"distribution"`
}

func FromReviewStats(s review.Stats) *ReviewStatsResponse {
	return &ReviewStatsResponse{
		AverageRating: s.AverageRating,
		TotalReviews:  s.TotalReviews,
		Distribution:  s.Distribution,
	}
}

type RoomResponse struct {
	ID            string   `json:"id"`
	Type          string   `json:"type"`
	Capacity      int      `json:"capacity"`
	PricePerNight float64  `json:"price_per_night"`
	Amenities     []string `json:"amenities"`
	Available     bool     `json:"available"`
}

type AvailabilityResponse struct {
	Available bool           `json:"available"`
	HotelID   int            `json:"hotel_id"`
	CheckIn   string         `json:"check_in"`
	CheckOut  string         `json:"check_out"`
	Rooms     []RoomResponse `json:"rooms"`
}

func FromAvailability(r *usecase.AvailabilityResult) *AvailabilityResponse {
	rooms := make([]RoomResponse, len(r.Rooms))
	for i, room := range r.Rooms {
		rooms[i] = RoomResponse{
			ID:            room.ID,
			Type:          room.Type,
			Capacity:      room.Capacity,
			PricePerNight: room.PricePerNight,
			Amenities:     room.Amenities,
			Available:     room.Available,
		}
	}
	return &AvailabilityResponse{
		Available: r.Available,
		HotelID:   r.HotelID,
		CheckIn:   r.CheckIn,
		CheckOut:  r.CheckOut,
		Rooms:     rooms,
	}
}
