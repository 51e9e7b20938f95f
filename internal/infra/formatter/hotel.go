package formatter

import (
	"stayhub/internal/domain/hotel"
	"stayhub/internal/recordstore"
)

// ToHotel maps a raw hotel record to the domain shape. Missing numeric
// fields default to 0, missing lists to empty slices.
func ToHotel(rec recordstore.RawRecord) hotel.Hotel {
	return hotel.Hotel{
		ID:   num(rec, "Id"),
		Name: str(rec, "name_c"),
		Location: hotel.Location{
			City:    str(rec, "city_c"),
			State:   str(rec, "state_c"),
			Country: str(rec, "country_c"),
		},
		Address:       str(rec, "address_c"),
		PricePerNight: f64(rec, "price_per_night_c"),
		StarRating:    num(rec, "star_rating_c"),
		Rating:        f64(rec, "rating_c"),
		ReviewCount:   num(rec, "review_count_c"),
		Available:     boolean(rec, "available_c"),
		Featured:      boolean(rec, "featured_c"),
		Description:   str(rec, "description_c"),
		Amenities:     stringList(rec, "amenities_c"),
		Images:        stringList(rec, "images_c"),
	}
}

func ToHotels(recs []recordstore.RawRecord) []hotel.Hotel {
	out := make([]hotel.Hotel, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ToHotel(rec))
	}
	return out
}

// FromHotelFields builds the writable field set for create/update calls.
// Server-assigned fields (Id) are never included.
func FromHotelFields(h hotel.Hotel) recordstore.RawRecord {
	return recordstore.RawRecord{
		"name_c":            h.Name,
		"city_c":            h.Location.City,
		"state_c":           h.Location.State,
		"country_c":         h.Location.Country,
		"address_c":         h.Address,
		"price_per_night_c": h.PricePerNight,
		"star_rating_c":     h.StarRating,
		"rating_c":          h.Rating,
		"review_count_c":    h.ReviewCount,
		"available_c":       h.Available,
		"featured_c":        h.Featured,
		"description_c":     h.Description,
		"amenities_c":       encodeList(h.Amenities),
		"images_c":          encodeList(h.Images),
	}
}
