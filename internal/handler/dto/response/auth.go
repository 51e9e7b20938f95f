package response

import (
	"stayhub/internal/domain/user"
	"stayhub/internal/usecase/queries"
)

type PreferencesResponse struct {
	RoomType          string `json:"room_type"`
	BedType           string `json:"bed_type"`
	SmokingPreference string `json:"smoking_preference"`
	FloorPreference   string `json:"floor_preference"`
	Newsletter        bool   `json:"newsletter"`
}

type UserResponse struct {
	ID            int                 `json:"id"`
	Email         string              `json:"email"`
	FirstName     string              `json:"first_name"`
	LastName      string              `json:"last_name"`
	Name          string              `json:"name"`
	Phone         string              `json:"phone,omitempty"`
	Avatar        string              `json:"avatar,omitempty"`
	LoyaltyStatus string              `json:"loyalty_status"`
	MemberSince   string              `json:"member_since"`
	TotalBookings int                 `json:"total_bookings"`
	Preferences   PreferencesResponse `json:"preferences"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:            v.ID,
		Email:         v.Email,
		FirstName:     v.FirstName,
		LastName:      v.LastName,
		Name:          v.Name,
		Phone:         v.Phone,
		Avatar:        v.Avatar,
		LoyaltyStatus: string(v.LoyaltyStatus),
		MemberSince:   v.MemberSince,
		TotalBookings: v.TotalBookings,
		Preferences: PreferencesResponse{
			RoomType:          v.Preferences.RoomType,
			BedType:           v.Preferences.BedType,
			SmokingPreference: v.Preferences.SmokingPreference,
			FloorPreference:   v.Preferences.FloorPreference,
			Newsletter:        v.Preferences.Newsletter,
		},
	}
}

func FromUser(u user.User) *UserResponse {
	view := queries.NewUserView(u)
	return FromUserView(&view)
}

type AuthResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}
