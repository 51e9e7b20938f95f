package stores

import (
	"context"
	"errors"

	"stayhub/internal/domain/user"
	"stayhub/internal/infra"
	"stayhub/internal/infra/formatter"
	"stayhub/internal/recordstore"
)

type UserStore struct {
	store recordstore.Store
}

func NewUserStore(store recordstore.Store) *UserStore {
	return &UserStore{store: store}
}

func (s *UserStore) FindByID(ctx context.Context, id int) (user.User, error) {
	rec, err := s.store.FetchOne(ctx, recordstore.KindUsers, id)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return user.User{}, infra.WrapStoreErr("user not found", err, infra.KindNotFound)
		}
		return user.User{}, infra.WrapStoreErr("failed to fetch user", err)
	}
	return formatter.ToUser(rec), nil
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (user.User, error) {
	q := recordstore.Query{
		Where: []recordstore.Condition{
			{Field: "email_c", Operator: recordstore.EqualTo, Values: []any{email}},
		},
		Paging: recordstore.Paging{Limit: 1},
	}
	recs, err := s.store.FetchMany(ctx, recordstore.KindUsers, q)
	if err != nil {
		return user.User{}, infra.WrapStoreErr("failed to fetch user by email", err)
	}
	if len(recs) == 0 {
		return user.User{}, infra.WrapStoreErr("user not found", recordstore.ErrNotFound, infra.KindNotFound)
	}
	return formatter.ToUser(recs[0]), nil
}

func (s *UserStore) Create(ctx context.Context, u user.User) (user.User, error) {
	rec, err := s.store.Create(ctx, recordstore.KindUsers, formatter.FromUserFields(u))
	if err != nil {
		return user.User{}, infra.WrapStoreErr("failed to create user", err)
	}
	return formatter.ToUser(rec), nil
}

func (s *UserStore) Update(ctx context.Context, id int, fields recordstore.RawRecord) (user.User, error) {
	rec, err := s.store.Update(ctx, recordstore.KindUsers, id, fields)
	if err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return user.User{}, infra.WrapStoreErr("user not found", err, infra.KindNotFound)
		}
		return user.User{}, infra.WrapStoreErr("failed to update user", err)
	}
	return formatter.ToUser(rec), nil
}
