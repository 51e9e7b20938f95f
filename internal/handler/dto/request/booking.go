package request

import (
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/usecase/commands"
)

type GuestDetailsRequest struct {
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required,max=30"`
}

type CreateBookingRequest struct {
	HotelID      int                 `json:"hotel_id" binding:"required"`
	HotelName    string              `json:"hotel_name" binding:"required"`
	HotelImage   string              `json:"hotel_image"`
	Location     string              `json:"location"`
	CheckIn      string              `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut     string              `json:"check_out" binding:"required,datetime=2006-01-02"`
	Guests       int                 `json:"guests" binding:"required,min=1"`
	RoomType     string              `json:"room_type" binding:"required"`
	TotalPrice   float64             `json:"total_price" binding:"min=0"`
	GuestDetails GuestDetailsRequest `json:"guest_details" binding:"required"`
}

func (r *CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := time.Parse("2006-01-02", r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, errs.Wrap(err, "invalid check-in date")
	}
	checkOut, err := time.Parse("2006-01-02", r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, errs.Wrap(err, "invalid check-out date")
	}

	return commands.CreateBookingInput{
		HotelID:    r.HotelID,
		HotelName:  r.HotelName,
		HotelImage: r.HotelImage,
		Location:   r.Location,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     r.Guests,
		RoomType:   r.RoomType,
		TotalPrice: r.TotalPrice,
		GuestDetails: booking.GuestDetails{
			FirstName: r.GuestDetails.FirstName,
			LastName:  r.GuestDetails.LastName,
			Email:     r.GuestDetails.Email,
			Phone:     r.GuestDetails.Phone,
		},
	}, nil
}
