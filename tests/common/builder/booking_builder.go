//go:build unit || integration

package builder

import (
	"time"

	"stayhub/internal/domain/booking"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/recordstore"
)

type BookingBuilder struct {
	ID         int
	UserID     int
	HotelID    int
	HotelName  string
	Location   string
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	RoomType   string
	TotalPrice float64
	Status     booking.Status
	Guest      booking.GuestDetails
	Created    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:         1,
		UserID:     42,
		HotelID:    1,
		HotelName:  "Grand Plaza Hotel",
		Location:   "Miami, Florida",
		CheckIn:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:   time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Guests:     2,
		RoomType:   "Deluxe Room",
		TotalPrice: 540,
		Status:     booking.StatusConfirmed,
		Guest: booking.GuestDetails{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Phone:     "+1-555-0100",
		},
		Created: time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() booking.Booking {
	return booking.Booking{
		ID:                 b.ID,
		UserID:             b.UserID,
		HotelID:            b.HotelID,
		HotelName:          b.HotelName,
		Location:           b.Location,
		CheckIn:            b.CheckIn,
		CheckOut:           b.CheckOut,
		Guests:             b.Guests,
		Nights:             int(b.CheckOut.Sub(b.CheckIn).Hours() / 24),
		RoomType:           b.RoomType,
		TotalPrice:         b.TotalPrice,
		ConfirmationNumber: booking.ConfirmationNumber(b.ID, b.Created.Year()),
		Status:             b.Status,
		GuestDetails:       b.Guest,
		CreatedAt:          b.Created,
	}
}

func (b *BookingBuilder) BuildRecord() recordstore.RawRecord {
	return formatter.FromBookingFields(b.BuildDomain())
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		HotelID:    b.HotelID,
		HotelName:  b.HotelName,
		Location:   b.Location,
		CheckIn:    b.CheckIn.Format("2006-01-02"),
		CheckOut:   b.CheckOut.Format("2006-01-02"),
		Guests:     b.Guests,
		RoomType:   b.RoomType,
		TotalPrice: b.TotalPrice,
		GuestDetails: reqdto.GuestDetailsRequest{
			FirstName: b.Guest.FirstName,
			LastName:  b.Guest.LastName,
			Email:     b.Guest.Email,
			Phone:     b.Guest.Phone,
		},
	}
}
