package commands

import (
	"context"

	"github.com/jinzhu/copier"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/pkg/password"
	"stayhub/internal/recordstore"
)

var (
	ErrUserNotFound       = errs.New("user not found")
	ErrEmailTaken         = errs.New("an account with this email already exists")
	ErrInvalidCredentials = errs.New("invalid email or password")
)

// defaultAvatarURL is assigned to new accounts until the user uploads one.
const defaultAvatarURL = "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=150&h=150&fit=crop&crop=face"

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput fields left empty keep their current values.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Phone     string
	Avatar    string
}

type UpdatePreferencesInput struct {
	RoomType          string
	BedType           string
	SmokingPreference string
	FloorPreference   string
	Newsletter        *bool
}

type AuthResult struct {
	User  user.User
	Token string
}

type UserCommands interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, input LoginInput) (*AuthResult, error)
	UpdateProfile(ctx context.Context, userID int, input UpdateProfileInput) (*user.User, error)
	UpdatePreferences(ctx context.Context, userID int, input UpdatePreferencesInput) (*user.User, error)
	UploadAvatar(ctx context.Context, userID int, avatarURL string) (*user.User, error)
}

type UserWriter interface {
	FindByID(ctx context.Context, id int) (user.User, error)
	FindByEmail(ctx context.Context, email string) (user.User, error)
	Create(ctx context.Context, u user.User) (user.User, error)
	Update(ctx context.Context, id int, fields recordstore.RawRecord) (user.User, error)
}

type TokenIssuer interface {
	GenerateToken(userID int) (string, error)
}

type userCommandsImpl struct {
	users  UserWriter
	tokens TokenIssuer
	clock  clock.Clock
}

func NewUserCommands(users UserWriter, tokens TokenIssuer, clk clock.Clock) UserCommands {
	return &userCommandsImpl{users: users, tokens: tokens, clock: clk}
}

func (c *userCommandsImpl) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if err := user.ValidateRegistration(input.Email, input.FirstName, input.LastName); err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := c.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	hash, err := password.HashPassword(input.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	now := c.clock.Now()
	created, err := c.users.Create(ctx, user.User{
		Email:         input.Email,
		FirstName:     input.FirstName,
		LastName:      input.LastName,
		Name:          user.FullName(input.FirstName, input.LastName),
		Phone:         input.Phone,
		Avatar:        defaultAvatarURL,
		LoyaltyStatus: user.LoyaltyBronze,
		MemberSince:   now,
		TotalBookings: 0,
		Preferences:   user.DefaultPreferences(),
		PasswordHash:  hash,
		CreatedAt:     now,
	})
	if err != nil {
		return nil, err
	}

	return c.authResult(created)
}

func (c *userCommandsImpl) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	u, err := c.users.FindByEmail(ctx, input.Email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := password.ComparePassword(u.PasswordHash, input.Password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return c.authResult(u)
}

// UpdateProfile merges the non-empty input fields over the stored profile
// and recomputes the display name.
func (c *userCommandsImpl) UpdateProfile(ctx context.Context, userID int, input UpdateProfileInput) (*user.User, error) {
	existing, err := c.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := UpdateProfileInput{
		FirstName: existing.FirstName,
		LastName:  existing.LastName,
		Phone:     existing.Phone,
		Avatar:    existing.Avatar,
	}
	if err := copier.CopyWithOption(&profile, &input, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, errs.Wrap(err, "failed to merge profile fields")
	}

	updated, err := c.users.Update(ctx, userID, recordstore.RawRecord{
		"first_name_c": profile.FirstName,
		"last_name_c":  profile.LastName,
		"name_c":       user.FullName(profile.FirstName, profile.LastName),
		"phone_c":      profile.Phone,
		"avatar_c":     profile.Avatar,
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *userCommandsImpl) UpdatePreferences(ctx context.Context, userID int, input UpdatePreferencesInput) (*user.User, error) {
	existing, err := c.fetch(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := existing.Preferences
	if input.RoomType != "" {
		prefs.RoomType = input.RoomType
	}
	if input.BedType != "" {
		prefs.BedType = input.BedType
	}
	if input.SmokingPreference != "" {
		prefs.SmokingPreference = input.SmokingPreference
	}
	if input.FloorPreference != "" {
		prefs.FloorPreference = input.FloorPreference
	}
	if input.Newsletter != nil {
		prefs.Newsletter = *input.Newsletter
	}

	updated, err := c.users.Update(ctx, userID, formatter.FromPreferenceFields(prefs))
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *userCommandsImpl) UploadAvatar(ctx context.Context, userID int, avatarURL string) (*user.User, error) {
	if _, err := c.fetch(ctx, userID); err != nil {
		return nil, err
	}
	updated, err := c.users.Update(ctx, userID, recordstore.RawRecord{
		"avatar_c": avatarURL,
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *userCommandsImpl) authResult(u user.User) (*AuthResult, error) {
	tok, err := c.tokens.GenerateToken(u.ID)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}
	return &AuthResult{User: u, Token: tok}, nil
}

func (c *userCommandsImpl) fetch(ctx context.Context, id int) (*user.User, error) {
	u, err := c.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
