package user

import (
	"strings"
	"time"

	"stayhub/internal/pkg/errs"
)

var (
	ErrInvalidEmail   = errs.New("a valid email is required")
	ErrMissingName    = errs.New("first and last name are required")
	ErrInvalidLoyalty = errs.New("invalid loyalty status")
)

type LoyaltyStatus string

const (
	LoyaltyBronze LoyaltyStatus = "bronze"
	LoyaltySilver LoyaltyStatus = "silver"
	LoyaltyGold   LoyaltyStatus = "gold"
)

func ParseLoyaltyStatus(s string) (LoyaltyStatus, error) {
	switch LoyaltyStatus(s) {
	case LoyaltyBronze, LoyaltySilver, LoyaltyGold:
		return LoyaltyStatus(s), nil
	default:
		return "", ErrInvalidLoyalty
	}
}

type Preferences struct {
	RoomType          string
	BedType           string
	SmokingPreference string
	FloorPreference   string
	Newsletter        bool
}

// DefaultPreferences are assigned at registration and amended later via
// preference updates.
func DefaultPreferences() Preferences {
	return Preferences{
		RoomType:          "deluxe",
		BedType:           "queen",
		SmokingPreference: "non-smoking",
		FloorPreference:   "any",
		Newsletter:        true,
	}
}

type User struct {
	ID            int
	Email         string
	FirstName     string
	LastName      string
	Name          string
	Phone         string
	Avatar        string
	LoyaltyStatus LoyaltyStatus
	MemberSince   time.Time
	TotalBookings int
	Preferences   Preferences
	PasswordHash  string
	CreatedAt     time.Time
}

func ValidateRegistration(email, firstName, lastName string) error {
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(firstName) == "" || strings.TrimSpace(lastName) == "" {
		return ErrMissingName
	}
	return nil
}

// FullName derives the display name from first and last name.
func FullName(firstName, lastName string) string {
	return strings.TrimSpace(firstName + " " + lastName)
}
