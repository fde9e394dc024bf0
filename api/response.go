package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vizierair/booking/internal/domain"
)

// respondError maps domain errors onto the API envelope. Every error body
// is {"success": false, "message": ...}; successes spread their payload next
// to "success": true.
func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"success": false, "message": err.Error()})
}

func statusFor(err error) int {
	switch {
	case domain.IsValidationError(err),
		errors.Is(err, domain.ErrInvalidCard),
		errors.Is(err, domain.ErrCardExpired),
		errors.Is(err, domain.ErrAlreadyConfirmed),
		errors.Is(err, domain.ErrBookingNotPayable),
		errors.Is(err, domain.ErrAlreadyCancelled):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrDuplicatePayment):
		return http.StatusConflict
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrFlightNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
