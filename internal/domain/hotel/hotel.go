package hotel

type Location struct {
	City    string
	State   string
	Country string
}

type Hotel struct {
	ID            int
	Name          string
	Location      Location
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
