package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Hotel errors
	ErrHotelNotFound = errors.New("hotel not found")

	// Review errors
	ErrReviewNotFound = errors.New("review not found")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomUnavailable = errors.New("room no longer available for selected dates")

	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already exists")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrStoreOperationFailed = errors.New("record store operation failed")
)
