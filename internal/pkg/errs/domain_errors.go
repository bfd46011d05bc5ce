package errs

import "errors"

// Domain-specific sentinel errors shared across usecase layers
var (
	// Restaurant / table errors
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrTableNotFound         = errors.New("table not found")
	ErrHasActiveReservations = errors.New("active reservations still reference this resource")

	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSlotUnavailable     = errors.New("slot unavailable")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrStaleWrite          = errors.New("stale write")

	// Review errors
	ErrReviewNotFound  = errors.New("review not found")
	ErrNotEligible     = errors.New("reservation not eligible for review")
	ErrAlreadyReviewed = errors.New("reservation already reviewed")

	// Authorization / validation errors
	ErrAccessDenied     = errors.New("access denied")
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
