// Package recordstore defines the narrow tabular-record contract the rest of
// the application depends on, together with its in-memory and postgres
// implementations. Raw record shapes never leak past the formatter boundary.
package recordstore

import (
	"context"
	"errors"
)

type Kind string

const (
	KindHotels   Kind = "hotels"
	KindReviews  Kind = "reviews"
	KindBookings Kind = "bookings"
	KindUsers    Kind = "users"
)

// RawRecord is a mapping from field name to an optional scalar or
// JSON-encoded string, exactly as the backing table API returns it.
// The "Id" field is always present on records read back from a store.
type RawRecord map[string]any

type Operator string

const (
	EqualTo              Operator = "EqualTo"
	NotEqualTo           Operator = "NotEqualTo"
	GreaterThanOrEqualTo Operator = "GreaterThanOrEqualTo"
	LessThanOrEqualTo    Operator = "LessThanOrEqualTo"
	Contains             Operator = "Contains"
	ExactMatch           Operator = "ExactMatch"
)

type Condition struct {
	Field    string
	Operator Operator
	Values   []any
}

type OrderBy struct {
	Field string
	Desc  bool
}

type Paging struct {
	Limit  int
	Offset int
}

// Query carries the criteria for FetchMany. Where conditions are
// AND-combined; OrGroups is one level of OR-of-AND nesting: a record
// matches when every Where condition holds and, if OrGroups is non-empty,
// at least one group's conditions all hold.
type Query struct {
	Fields   []string
	Where    []Condition
	OrGroups [][]Condition
	OrderBy  []OrderBy
	Paging   Paging
}

var ErrNotFound = errors.New("record not found")

type Store interface {
	FetchMany(ctx context.Context, kind Kind, q Query) ([]RawRecord, error)
	FetchOne(ctx context.Context, kind Kind, id int) (RawRecord, error)
	Create(ctx context.Context, kind Kind, fields RawRecord) (RawRecord, error)
	Update(ctx context.Context, kind Kind, id int, fields RawRecord) (RawRecord, error)
	Delete(ctx context.Context, kind Kind, id int) (bool, error)
}
