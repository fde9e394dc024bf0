package domain

import "errors"

var (
	ErrInvalidCard       = errors.New("invalid card number")
	ErrCardExpired       = errors.New("card expired")
	ErrFlightNotFound    = errors.New("flight not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrAlreadyConfirmed  = errors.New("booking already confirmed")
	ErrBookingNotPayable = errors.New("booking is not payable")
	ErrAlreadyCancelled  = errors.New("booking already cancelled")
	ErrDuplicatePayment  = errors.New("payment already exists for this booking")
)

// ValidationError marks client-fixable business input errors (bad cabin
// class, empty passenger list, malformed names). Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
