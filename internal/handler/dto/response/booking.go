package response

import (
	"stayhub/internal/domain/booking"
)

type GuestDetailsResponse struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
}

type BookingResponse struct {
	ID                 int                  `json:"id"`
	UserID             int                  `json:"user_id"`
	HotelID            int                  `json:"hotel_id"`
	HotelName          string               `json:"hotel_name"`
	HotelImage         string               `json:"hotel_image,omitempty"`
	Location           string               `json:"location,omitempty"`
	CheckIn            string               `json:"check_in"`
	CheckOut           string               `json:"check_out"`
	Guests             int                  `json:"guests"`
	Nights             int                  `json:"nights"`
	RoomType           string               `json:"room_type"`
	TotalPrice         float64              `json:"total_price"`
	Status             string               `json:"status"`
	ConfirmationNumber string               `json:"confirmation_number"`
	GuestDetails       GuestDetailsResponse `json:"guest_details"`
	CreatedAt          int64                `json:"created_at"`
}

func FromBooking(b booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		UserID:             b.UserID,
		HotelID:            b.HotelID,
		HotelName:          b.HotelName,
		HotelImage:         b.HotelImage,
		Location:           b.Location,
		CheckIn:            b.CheckIn.UTC().Format("2006-01-02"),
		CheckOut:           b.CheckOut.UTC().Format("2006-01-02"),
		Guests:             b.Guests,
		Nights:             b.Nights,
		RoomType:           b.RoomType,
		TotalPrice:         b.TotalPrice,
		Status:             string(b.Status),
		ConfirmationNumber: b.ConfirmationNumber,
		GuestDetails: GuestDetailsResponse{
			FirstName: b.GuestDetails.FirstName,
			LastName:  b.GuestDetails.LastName,
			Email:     b.GuestDetails.Email,
			Phone:     b.GuestDetails.Phone,
		},
		CreatedAt: b.CreatedAt.Unix(),
	}
}

func FromBookings(bs []booking.Booking) []*BookingResponse {
	res := make([]*BookingResponse, len(bs))
	for i, b := range bs {
		res[i] = FromBooking(b)
	}
	return res
}
