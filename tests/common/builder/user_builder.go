//go:build unit || integration

package builder

import (
	"time"

	"stayhub/internal/domain/user"
	reqdto "stayhub/internal/handler/dto/request"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/recordstore"
)

type UserBuilder struct {
	ID            int
	Email         string
	Password      string
	FirstName     string
	LastName      string
	Phone         string
	Avatar        string
	Loyalty       user.LoyaltyStatus
	MemberSince   time.Time
	TotalBookings int
	Preferences   user.Preferences
	PasswordHash  string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:            42,
		Email:         "ada@example.com",
		Password:      "correct-horse",
		FirstName:     "Ada",
		LastName:      "Lovelace",
		Phone:         "+1-555-0100",
		Avatar:        "https://cdn.example.com/avatars/42.png",
		Loyalty:       user.LoyaltyBronze,
		MemberSince:   time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		TotalBookings: 3,
		Preferences:   user.DefaultPreferences(),
		PasswordHash:  "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) BuildDomain() user.User {
	return user.User{
		ID:            b.ID,
		Email:         b.Email,
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Name:          user.FullName(b.FirstName, b.LastName),
		Phone:         b.Phone,
		Avatar:        b.Avatar,
		LoyaltyStatus: b.Loyalty,
		MemberSince:   b.MemberSince,
		TotalBookings: b.TotalBookings,
		Preferences:   b.Preferences,
		PasswordHash:  b.PasswordHash,
		CreatedAt:     b.MemberSince,
	}
}

func (b *UserBuilder) BuildRecord() recordstore.RawRecord {
	return formatter.FromUserFields(b.BuildDomain())
}

func (b *UserBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:     b.Email,
		Password:  b.Password,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Phone:     b.Phone,
	}
}

func (b *UserBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}
