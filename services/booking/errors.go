package booking

import (
	"errors"
	"fmt"
)

// Error codes for the quote and checkout flows. Validation codes are
// terminal: retrying with the same input cannot succeed.
const (
	CodeUnitNotFound               = "unitNotFound"
	CodeInvalidDateRange           = "invalidDateRange"
	CodeMinimumStayViolation       = "minimumStayViolation"
	CodeUnavailable                = "unavailable"
	CodeNoLongerAvailable          = "noLongerAvailable"
	CodeInvalidPricing             = "invalidPricing"
	CodePaymentAuthorizationFailed = "paymentAuthorizationFailed"
	CodeReservationLinkFailed      = "reservationLinkFailed"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &BookingError{
		Code:    code,
		Message: msg,
	}
}

// ErrorCode extracts the booking error code from err, or "" when err is
// not a booking error (infrastructure failures stay uncoded and are
// what the fallback paths key on).
func ErrorCode(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
