package review

import (
	"strings"
	"time"

	"stayhub/internal/pkg/errs"
)

var (
	ErrInvalidRating   = errs.New("rating must be between 1 and 5")
	ErrEmptyTitle      = errs.New("title is required")
	ErrEmptyComment    = errs.New("comment is required")
	ErrFutureStayDate  = errs.New("stay date cannot be in the future")
	ErrTooManyPhotos   = errs.New("too many photos")
	ErrMissingStayDate = errs.New("stay date is required")
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Title struct {
	text string
}

func NewTitle(s string) (Title, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Title{}, ErrEmptyTitle
	}
	return Title{text: t}, nil
}

func (t Title) String() string { return t.text }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return Comment{}, ErrEmptyComment
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

type StayDate struct {
	date time.Time
}

// NewStayDate accepts a past or current date relative to now. Comparison is
// by calendar date, not instant, so a stay ending today is valid.
func NewStayDate(d time.Time, now time.Time) (StayDate, error) {
	if d.IsZero() {
		return StayDate{}, ErrMissingStayDate
	}
	day := truncateToDay(d)
	if day.After(truncateToDay(now)) {
		return StayDate{}, ErrFutureStayDate
	}
	return StayDate{date: day}, nil
}

func (s StayDate) Time() time.Time { return s.date }

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

type Photos struct {
	urls []string
}

func NewPhotos(urls []string) (Photos, error) {
	if len(urls) > MaxPhotos {
		return Photos{}, ErrTooManyPhotos
	}
	return Photos{urls: urls}, nil
}

func (p Photos) URLs() []string {
	if p.urls == nil {
		return []string{}
	}
	return p.urls
}
