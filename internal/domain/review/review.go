package review

import "time"

const MaxPhotos = 6

type Review struct {
	ID         int
	HotelID    int
	UserID     int
	UserName   string
	UserAvatar string
	Rating     int
	Title      string
	Comment    string
	Photos     []string
	StayDate   time.Time
	Helpful    int
	Verified   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
