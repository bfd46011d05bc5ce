package httperr

import (
	"errors"
	"net/http"

	"tablebook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithDomainError translates core sentinel errors to HTTP statuses.
// NotFound sentinels are produced before access checks in the usecases, so
// 404 vs 403 here already reflects the load-then-guard ordering.
func AbortWithDomainError(c *gin.Context, err error) {
	status, msg := classify(err)
	AbortWithError(c, status, err, msg, nil)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrRestaurantNotFound):
		return http.StatusNotFound, "Restaurant not found"
	case errors.Is(err, errs.ErrTableNotFound):
		return http.StatusNotFound, "Table not found"
	case errors.Is(err, errs.ErrReservationNotFound):
		return http.StatusNotFound, "Reservation not found"
	case errors.Is(err, errs.ErrReviewNotFound):
		return http.StatusNotFound, "Review not found"
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden, "Access denied"
	case errors.Is(err, errs.ErrSlotUnavailable):
		return http.StatusConflict, "Slot is not available"
	case errors.Is(err, errs.ErrAlreadyReviewed):
		return http.StatusConflict, "Reservation already reviewed"
	case errors.Is(err, errs.ErrStaleWrite):
		return http.StatusConflict, "Reservation was modified concurrently"
	case errors.Is(err, errs.ErrHasActiveReservations):
		return http.StatusConflict, "Active reservations exist"
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, "Illegal status transition"
	case errors.Is(err, errs.ErrNotEligible):
		return http.StatusUnprocessableEntity, "Reservation is not eligible for review"
	case errors.Is(err, errs.ErrDomainValidation):
		return http.StatusUnprocessableEntity, "Validation failed"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
