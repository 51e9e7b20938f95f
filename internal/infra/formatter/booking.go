package formatter

import (
	"stayhub/internal/domain/booking"
	"stayhub/internal/recordstore"
)

// ToBooking maps a raw booking record to the domain shape. An unknown or
// absent status falls back to confirmed so legacy records stay actionable.
func ToBooking(rec recordstore.RawRecord) booking.Booking {
	status, err := booking.ParseStatus(str(rec, "status_c"))
	if err != nil {
		status = booking.StatusConfirmed
	}
	return booking.Booking{
		ID:                 num(rec, "Id"),
		UserID:             num(rec, "user_id_c"),
		HotelID:            num(rec, "hotel_id_c"),
		HotelName:          str(rec, "hotel_name_c"),
		HotelImage:         str(rec, "hotel_image_c"),
		Location:           str(rec, "location_c"),
		CheckIn:            date(rec, "check_in_c"),
		CheckOut:           date(rec, "check_out_c"),
		Guests:             num(rec, "guests_c"),
		Nights:             num(rec, "nights_c"),
		RoomType:           str(rec, "room_type_c"),
		TotalPrice:         f64(rec, "total_price_c"),
		ConfirmationNumber: str(rec, "confirmation_number_c"),
		Status:             status,
		GuestDetails: booking.GuestDetails{
			FirstName: str(rec, "guest_first_name_c"),
			LastName:  str(rec, "guest_last_name_c"),
			Email:     str(rec, "guest_email_c"),
			Phone:     str(rec, "guest_phone_c"),
		},
		CreatedAt: timestamp(rec, "created_at_c"),
	}
}

func ToBookings(recs []recordstore.RawRecord) []booking.Booking {
	out := make([]booking.Booking, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ToBooking(rec))
	}
	return out
}

func FromBookingFields(b booking.Booking) recordstore.RawRecord {
	return recordstore.RawRecord{
		"user_id_c":             b.UserID,
		"hotel_id_c":            b.HotelID,
		"hotel_name_c":          b.HotelName,
		"hotel_image_c":         b.HotelImage,
		"location_c":            b.Location,
		"check_in_c":            formatDate(b.CheckIn),
		"check_out_c":           formatDate(b.CheckOut),
		"guests_c":              b.Guests,
		"nights_c":              b.Nights,
		"room_type_c":           b.RoomType,
		"total_price_c":         b.TotalPrice,
		"confirmation_number_c": b.ConfirmationNumber,
		"status_c":              string(b.Status),
		"guest_first_name_c":    b.GuestDetails.FirstName,
		"guest_last_name_c":     b.GuestDetails.LastName,
		"guest_email_c":         b.GuestDetails.Email,
		"guest_phone_c":         b.GuestDetails.Phone,
		"created_at_c":          formatTimestamp(b.CreatedAt),
	}
}
