package commands

import (
	"context"
	"encoding/json"
	"time"

	domreview "stayhub/internal/domain/review"
	"stayhub/internal/infra"
	"stayhub/internal/pkg/clock"
	"stayhub/internal/pkg/errs"
	"stayhub/internal/recordstore"
)

var (
	ErrReviewNotFound = errs.New("review not found")
	ErrReviewNotOwned = errs.New("review not owned by user")
)

type CreateReviewInput struct {
	HotelID    int
	Rating     int
	Title      string
	Comment    string
	Photos     []string
	StayDate   string // YYYY-MM-DD; empty defaults to today
	UserName   string
	UserAvatar string
}

type UpdateReviewInput struct {
	Rating   int
	Title    string
	Comment  string
	Photos   []string
	StayDate string
}

type ReviewCommands interface {
	Create(ctx context.Context, input CreateReviewInput, userID int) (*domreview.Review, error)
	Update(ctx context.Context, id int, input UpdateReviewInput, actorID int) (*domreview.Review, error)
	Delete(ctx context.Context, id int, actorID int) error
	MarkHelpful(ctx context.Context, id int) (*domreview.Review, error)
}

type ReviewWriter interface {
	FindByID(ctx context.Context, id int) (domreview.Review, error)
	Create(ctx context.Context, r domreview.Review) (domreview.Review, error)
	Update(ctx context.Context, id int, fields recordstore.RawRecord) (domreview.Review, error)
	Delete(ctx context.Context, id int) error
}

type reviewCommandsImpl struct {
	reviews ReviewWriter
	clock   clock.Clock
}

func NewReviewCommands(reviews ReviewWriter, clk clock.Clock) ReviewCommands {
	return &reviewCommandsImpl{reviews: reviews, clock: clk}
}

func (c *reviewCommandsImpl) Create(ctx context.Context, input CreateReviewInput, userID int) (*domreview.Review, error) {
	now := c.clock.Now()

	validated, err := c.validate(input.Rating, input.Title, input.Comment, input.Photos, input.StayDate)
	if err != nil {
		return nil, err
	}

	userName := input.UserName
	if userName == "" {
		userName = "Anonymous"
	}

	created, err := c.reviews.Create(ctx, domreview.Review{
		HotelID:    input.HotelID,
		UserID:     userID,
		UserName:   userName,
		UserAvatar: input.UserAvatar,
		Rating:     validated.rating.Value(),
		Title:      validated.title.String(),
		Comment:    validated.comment.String(),
		Photos:     validated.photos.URLs(),
		StayDate:   validated.stayDate.Time(),
		Helpful:    0,
		Verified:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces the review's content in place, preserving Id and
// createdAt and refreshing updatedAt. Omitted stay date and photos keep
// the review's current values rather than resetting to defaults.
func (c *reviewCommandsImpl) Update(ctx context.Context, id int, input UpdateReviewInput, actorID int) (*domreview.Review, error) {
	existing, err := c.fetchOwned(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	stayDate := input.StayDate
	if stayDate == "" && !existing.StayDate.IsZero() {
		stayDate = existing.StayDate.Format(dateLayout)
	}
	photos := input.Photos
	if photos == nil {
		photos = existing.Photos
	}

	validated, err := c.validate(input.Rating, input.Title, input.Comment, photos, stayDate)
	if err != nil {
		return nil, err
	}

	updated, err := c.reviews.Update(ctx, existing.ID, recordstore.RawRecord{
		"rating_c":     validated.rating.Value(),
		"title_c":      validated.title.String(),
		"comment_c":    validated.comment.String(),
		"photos_c":     encodePhotos(validated.photos.URLs()),
		"stay_date_c":  validated.stayDate.Time().Format(dateLayout),
		"updated_at_c": c.clock.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *reviewCommandsImpl) Delete(ctx context.Context, id int, actorID int) error {
	if _, err := c.fetchOwned(ctx, id, actorID); err != nil {
		return err
	}
	return c.reviews.Delete(ctx, id)
}

func (c *reviewCommandsImpl) MarkHelpful(ctx context.Context, id int) (*domreview.Review, error) {
	existing, err := c.reviews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	updated, err := c.reviews.Update(ctx, id, recordstore.RawRecord{
		"helpful_c": existing.Helpful + 1,
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, errs.Wrap(err, "invalid date")
	}
	return t, nil
}

func encodePhotos(urls []string) string {
	encoded, _ := json.Marshal(urls)
	return string(encoded)
}

type validatedReview struct {
	rating   domreview.Rating
	title    domreview.Title
	comment  domreview.Comment
	photos   domreview.Photos
	stayDate domreview.StayDate
}

func (c *reviewCommandsImpl) validate(ratingValue int, titleText, commentText string, photoURLs []string, stayDate string) (validatedReview, error) {
	var v validatedReview
	var err error

	if v.rating, err = domreview.NewRating(ratingValue); err != nil {
		return v, errs.Mark(err, ErrDomainValidation)
	}
	if v.title, err = domreview.NewTitle(titleText); err != nil {
		return v, errs.Mark(err, ErrDomainValidation)
	}
	if v.comment, err = domreview.NewComment(commentText); err != nil {
		return v, errs.Mark(err, ErrDomainValidation)
	}
	if v.photos, err = domreview.NewPhotos(photoURLs); err != nil {
		return v, errs.Mark(err, ErrDomainValidation)
	}

	now := c.clock.Now()
	date := now
	if stayDate != "" {
		if date, err = parseDate(stayDate); err != nil {
			return v, errs.Mark(err, ErrDomainValidation)
		}
	}
	if v.stayDate, err = domreview.NewStayDate(date, now); err != nil {
		return v, errs.Mark(err, ErrDomainValidation)
	}
	return v, nil
}

func (c *reviewCommandsImpl) fetchOwned(ctx context.Context, id int, actorID int) (*domreview.Review, error) {
	r, err := c.reviews.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	if r.UserID != actorID {
		return nil, ErrReviewNotOwned
	}
	return &r, nil
}
