//go:build unit

package formatter_test

import (
	"testing"
	"time"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/hotel"
	"stayhub/internal/domain/review"
	"stayhub/internal/domain/user"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/recordstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestHotelRoundTrip(t *testing.T) {
	in := hotel.Hotel{
		ID:            12,
		Name:          "Grand Plaza",
		Location:      hotel.Location{City: "Miami", State: "Florida", Country: "USA"},
		Address:       "1 Ocean Drive",
		PricePerNight: 189.5,
		StarRating:    4,
		Rating:        4.5,
		ReviewCount:   37,
		Available:     true,
		Featured:      true,
		Description:   "Beachfront hotel",
		Amenities:     []string{"Free WiFi", "Pool"},
		Images:        []string{"https://example.com/a.jpg"},
	}

	rec := formatter.FromHotelFields(in)
	rec["Id"] = in.ID
	out := formatter.ToHotel(rec)

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("hotel round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestToHotel_Defaults(t *testing.T) {
	out := formatter.ToHotel(recordstore.RawRecord{"Id": 3, "name_c": "Bare"})

	assert.Equal(t, 3, out.ID)
	assert.Equal(t, 0.0, out.PricePerNight)
	assert.False(t, out.Available)
	assert.NotNil(t, out.Amenities)
	assert.Empty(t, out.Amenities)
}

func TestStringList_CommaFallback(t *testing.T) {
	// Legacy records stored lists as comma-joined text rather than JSON.
	out := formatter.ToHotel(recordstore.RawRecord{
		"Id":          1,
		"amenities_c": "Free WiFi, Pool ,Gym",
	})

	assert.Equal(t, []string{"Free WiFi", "Pool", "Gym"}, out.Amenities)
}

func TestReviewRoundTrip(t *testing.T) {
	in := review.Review{
		ID:         5,
		HotelID:    12,
		UserID:     9,
		UserName:   "Dana",
		UserAvatar: "https://example.com/d.png",
		Rating:     5,
		Title:      "Wonderful",
		Comment:    "Would stay again",
		Photos:     []string{"https://example.com/p1.jpg"},
		StayDate:   time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		Helpful:    3,
		Verified:   true,
		CreatedAt:  time.Date(2025, 5, 12, 8, 30, 0, 0, time.UTC),
		UpdatedAt:  time.Date(2025, 5, 13, 9, 0, 0, 0, time.UTC),
	}

	rec := formatter.FromReviewFields(in)
	rec["Id"] = in.ID
	out := formatter.ToReview(rec)

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("review round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestBookingRoundTrip(t *testing.T) {
	in := booking.Booking{
		ID:                 8,
		UserID:             2,
		HotelID:            12,
		HotelName:          "Grand Plaza",
		HotelImage:         "https://example.com/h.jpg",
		Location:           "Miami, Florida",
		CheckIn:            time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		CheckOut:           time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC),
		Guests:             2,
		Nights:             3,
		RoomType:           "Deluxe Room",
		TotalPrice:         568.5,
		ConfirmationNumber: "STY-008-2025",
		Status:             booking.StatusConfirmed,
		GuestDetails: booking.GuestDetails{
			FirstName: "Dana",
			LastName:  "Reyes",
			Email:     "dana@example.com",
			Phone:     "+1-555-0100",
		},
		CreatedAt: time.Date(2025, 5, 20, 14, 0, 0, 0, time.UTC),
	}

	rec := formatter.FromBookingFields(in)
	rec["Id"] = in.ID
	out := formatter.ToBooking(rec)

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("booking round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestToBooking_StatusFallback(t *testing.T) {
	out := formatter.ToBooking(recordstore.RawRecord{"Id": 1, "status_c": "???"})
	assert.Equal(t, booking.StatusConfirmed, out.Status)

	out = formatter.ToBooking(recordstore.RawRecord{"Id": 2})
	assert.Equal(t, booking.StatusConfirmed, out.Status)
}

func TestToUser_Defaults(t *testing.T) {
	out := formatter.ToUser(recordstore.RawRecord{
		"Id":      4,
		"email_c": "guest@example.com",
	})

	assert.Equal(t, user.LoyaltyBronze, out.LoyaltyStatus)
	assert.Equal(t, user.DefaultPreferences(), out.Preferences)
}

func TestToUser_PartialPreferences(t *testing.T) {
	out := formatter.ToUser(recordstore.RawRecord{
		"Id":                4,
		"pref_room_type_c":  "suite",
		"pref_newsletter_c": false,
	})

	want := user.DefaultPreferences()
	want.RoomType = "suite"
	want.Newsletter = false
	assert.Equal(t, want, out.Preferences)
}

func TestUserRoundTrip(t *testing.T) {
	in := user.User{
		ID:            4,
		Email:         "dana@example.com",
		FirstName:     "Dana",
		LastName:      "Reyes",
		Name:          "Dana Reyes",
		Phone:         "+1-555-0100",
		Avatar:        "https://example.com/a.png",
		LoyaltyStatus: user.LoyaltySilver,
		MemberSince:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		TotalBookings: 6,
		Preferences: user.Preferences{
			RoomType:          "suite",
			BedType:           "king",
			SmokingPreference: "non-smoking",
			FloorPreference:   "high",
			Newsletter:        false,
		},
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
	}

	rec := formatter.FromUserFields(in)
	rec["Id"] = in.ID
	out := formatter.ToUser(rec)

	if diff := cmp.Diff(in, out); diff != "" {
		t.Errorf("user round trip mismatch (-want +got):\n%s", diff)
	}
}
