//go:build unit || integration

package builder

import (
	"stayhub/internal/domain/hotel"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/recordstore"
)

type HotelBuilder struct {
	ID            int
	Name          string
	City          string
	State         string
	Country       string
	Address       string
	PricePerNight float64
	StarRating    int
	Rating        float64
	ReviewCount   int
	Available     bool
	Featured      bool
	Description   string
	Amenities     []string
	Images        []string
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		ID:            1,
		Name:          "Grand Plaza Hotel",
		City:          "Miami",
		State:         "Florida",
		Country:       "USA",
		Address:       "100 Ocean Drive",
		PricePerNight: 180,
		StarRating:    4,
		Rating:        4.5,
		ReviewCount:   12,
		Available:     true,
		Featured:      false,
		Description:   "Beachfront hotel with rooftop pool",
		Amenities:     []string{"Free WiFi", "Pool", "Gym"},
		Images:        []string{"https://cdn.example.com/hotels/1.jpg"},
	}
}

func (b *HotelBuilder) With(mutate func(*HotelBuilder)) *HotelBuilder {
	mutate(b)
	return b
}

func (b *HotelBuilder) BuildDomain() hotel.Hotel {
	return hotel.Hotel{
		ID:   b.ID,
		Name: b.Name,
		Location: hotel.Location{
			City:    b.City,
			State:   b.State,
			Country: b.Country,
		},
		Address:       b.Address,
		PricePerNight: b.PricePerNight,
		StarRating:    b.StarRating,
		Rating:        b.Rating,
		ReviewCount:   b.ReviewCount,
		Available:     b.Available,
		Featured:      b.Featured,
		Description:   b.Description,
		Amenities:     b.Amenities,
		Images:        b.Images,
	}
}

// BuildRecord produces the raw field map for seeding a record store.
func (b *HotelBuilder) BuildRecord() recordstore.RawRecord {
	return formatter.FromHotelFields(b.BuildDomain())
}
