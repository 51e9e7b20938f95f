package usecase

import (
	"context"
	"fmt"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/hotel"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
)

var ErrHotelNotFound = errs.New("hotel not found")

type Room struct {
	ID            string
	Type          string
	Capacity      int
	PricePerNight float64
	Amenities     []string
	Available     bool
}

type AvailabilityResult struct {
	Available bool
	HotelID   int
	CheckIn   string
	CheckOut  string
	Rooms     []Room
}

type AvailabilityChecker interface {
	Check(ctx context.Context, hotelID int, checkIn, checkOut string) (*AvailabilityResult, error)
}

type HotelFinder interface {
	FindByID(ctx context.Context, id int) (hotel.Hotel, error)
}

type availabilityCheckerImpl struct {
	hotels   HotelFinder
	conflict booking.ConflictPolicy
}

func NewAvailabilityChecker(hotels HotelFinder, conflict booking.ConflictPolicy) AvailabilityChecker {
	return &availabilityCheckerImpl{hotels: hotels, conflict: conflict}
}

// Check simulates an inventory lookup: a hotel marked unavailable never has
// rooms, and an otherwise open hotel can still lose its rooms to concurrent
// demand. A successful check offers two fixed room classes, with the suite
// priced at one and a half times the hotel's base rate.
func (a *availabilityCheckerImpl) Check(ctx context.Context, hotelID int, checkIn, checkOut string) (*AvailabilityResult, error) {
	h, err := a.hotels.FindByID(ctx, hotelID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}

	result := &AvailabilityResult{
		HotelID:  h.ID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Rooms:    []Room{},
	}

	if !h.Available || a.conflict.Conflict() {
		return result, nil
	}

	result.Available = true
	result.Rooms = []Room{
		{
			ID:            fmt.Sprintf("%d_deluxe", h.ID),
			Type:          "Deluxe Room",
			Capacity:      2,
			PricePerNight: h.PricePerNight,
			Amenities:     []string{"Free WiFi", "Mini Bar", "City View"},
			Available:     true,
		},
		{
			ID:            fmt.Sprintf("%d_suite", h.ID),
			Type:          "Executive Suite",
			Capacity:      4,
			PricePerNight: h.PricePerNight * 1.5,
			Amenities:     []string{"Free WiFi", "Mini Bar", "Ocean View", "Living Area"},
			Available:     true,
		},
	}
	return result, nil
}
