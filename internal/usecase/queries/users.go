package queries

import (
	"context"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/errs"
)

var ErrUserNotFound = errs.New("user not found")

// UserView is the user shape exposed to callers: no credential material.
type UserView struct {
	ID            int
	Email         string
	FirstName     string
	LastName      string
	Name          string
	Phone         string
	Avatar        string
	LoyaltyStatus user.LoyaltyStatus
	MemberSince   string
	TotalBookings int
	Preferences   user.Preferences
}

type UserQueries interface {
	GetByID(ctx context.Context, id int) (*UserView, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id int) (user.User, error)
	FindByEmail(ctx context.Context, email string) (user.User, error)
}

type userQueriesImpl struct {
	users UserReader
}

func NewUserQueries(users UserReader) UserQueries {
	return &userQueriesImpl{users: users}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int) (*UserView, error) {
	u, err := q.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	view := NewUserView(u)
	return &view, nil
}

func NewUserView(u user.User) UserView {
	memberSince := ""
	if !u.MemberSince.IsZero() {
		memberSince = u.MemberSince.UTC().Format("2006-01-02")
	}
	return UserView{
		ID:            u.ID,
		Email:         u.Email,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Name:          u.Name,
		Phone:         u.Phone,
		Avatar:        u.Avatar,
		LoyaltyStatus: u.LoyaltyStatus,
		MemberSince:   memberSince,
		TotalBookings: u.TotalBookings,
		Preferences:   u.Preferences,
	}
}
