package booking

import (
	"strings"
	"time"

	"stayhub/internal/pkg/errs"
)

var (
	ErrInvalidStayRange = errs.New("check-out must be after check-in")
	ErrMissingGuestName = errs.New("guest first and last name are required")
	ErrMissingEmail     = errs.New("guest email is required")
	ErrMissingPhone     = errs.New("guest phone is required")
)

// StayRange is a half-open [checkIn, checkOut) date range of at least one
// night.
type StayRange struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayRange(checkIn, checkOut time.Time) (StayRange, error) {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	if !out.After(in) {
		return StayRange{}, ErrInvalidStayRange
	}
	return StayRange{checkIn: in, checkOut: out}, nil
}

func (s StayRange) CheckIn() time.Time  { return s.checkIn }
func (s StayRange) CheckOut() time.Time { return s.checkOut }

// Nights is the number of whole days between check-in and check-out.
func (s StayRange) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

type GuestDetails struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

func (g GuestDetails) Validate() error {
	if strings.TrimSpace(g.FirstName) == "" || strings.TrimSpace(g.LastName) == "" {
		return ErrMissingGuestName
	}
	if strings.TrimSpace(g.Email) == "" {
		return ErrMissingEmail
	}
	if strings.TrimSpace(g.Phone) == "" {
		return ErrMissingPhone
	}
	return nil
}
