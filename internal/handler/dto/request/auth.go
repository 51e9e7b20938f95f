package request

import (
	"stayhub/internal/usecase/commands"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name" binding:"required,max=100"`
	LastName  string `json:"last_name" binding:"required,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=30"`
}

func (r *RegisterRequest) ToInput() commands.RegisterInput {
	return commands.RegisterInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (r *LoginRequest) ToInput() commands.LoginInput {
	return commands.LoginInput{Email: r.Email, Password: r.Password}
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	Phone     string `json:"phone" binding:"omitempty,max=30"`
	Avatar    string `json:"avatar" binding:"omitempty,url"`
}

func (r *UpdateProfileRequest) ToInput() commands.UpdateProfileInput {
	return commands.UpdateProfileInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Avatar:    r.Avatar,
	}
}

type UpdatePreferencesRequest struct {
	RoomType          string `json:"room_type" binding:"omitempty,oneof=standard deluxe suite penthouse"`
	BedType           string `json:"bed_type" binding:"omitempty,oneof=single double queen king"`
	SmokingPreference string `json:"smoking_preference" binding:"omitempty,oneof=smoking non-smoking"`
	FloorPreference   string `json:"floor_preference" binding:"omitempty,oneof=any low high"`
	Newsletter        *bool  `json:"newsletter"`
}

func (r *UpdatePreferencesRequest) ToInput() commands.UpdatePreferencesInput {
	return commands.UpdatePreferencesInput{
		RoomType:          r.RoomType,
		BedType:           r.BedType,
		SmokingPreference: r.SmokingPreference,
		FloorPreference:   r.FloorPreference,
		Newsletter:        r.Newsletter,
	}
}

type UploadAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required,url"`
}
