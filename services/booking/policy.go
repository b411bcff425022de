package booking

import (
	"fmt"
	"time"
)

// DefaultMinNights applies when a property carries no minimum-nights
// policy of its own, and always on the static fallback catalog.
const DefaultMinNights = 2

// RefundWindow is how long before check-in a reservation stays
// refundable. Advisory metadata on the quote; not enforced here.
const RefundWindow = 48 * time.Hour

// EffectiveMinNights returns the property's minimum-nights policy,
// falling back to the default when unset.
func EffectiveMinNights(minNights int) int {
	if minNights <= 0 {
		return DefaultMinNights
	}
	return minNights
}

// ValidateStay enforces the date-range and minimum-stay rules for a
// prospective booking.
func ValidateStay(nights, minNights int) error {
	if nights <= 0 {
		return NewBookingError(CodeInvalidDateRange, "check-out must be after check-in")
	}
	if nights < minNights {
		return NewBookingError(CodeMinimumStayViolation, fmt.Sprintf("stay of %d night(s) is below the %d-night minimum", nights, minNights))
	}
	return nil
}

// RefundableUntil computes the advisory refund deadline for a stay.
func RefundableUntil(checkIn time.Time) time.Time {
	return checkIn.Add(-RefundWindow)
}
