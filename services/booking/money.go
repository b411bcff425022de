package booking

import (
	"fmt"
	"math"
	"time"

	"staybook/models"
)

const day = 24 * time.Hour

// NightsBetween returns the number of whole calendar days between the
// check-in and check-out dates, clamped to a minimum of 0. Time-of-day
// components are ignored; a same-day or inverted range yields 0 and is
// rejected by the stay policy, not here.
func NightsBetween(checkIn, checkOut time.Time) int {
	in := truncateToDay(checkIn)
	out := truncateToDay(checkOut)
	diff := out.Sub(in)
	if diff <= 0 {
		return 0
	}
	nights := int(diff / day)
	if diff%day != 0 {
		nights++
	}
	return nights
}

func truncateToDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// NormalizeRateCents converts a stored nightly rate into minor currency
// units. A rate tagged models.RateUnitCents is trusted as-is. Untagged
// rates are disambiguated with the legacy threshold heuristic: values
// above 1000 are treated as already-minor-unit, anything else as a
// major-unit amount. The heuristic exists for heterogeneous upstream
// data; tagged rates bypass it entirely.
func NormalizeRateCents(rate float64, rateUnit string) (int64, error) {
	if math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, NewBookingError(CodeInvalidPricing, "nightly rate is not finite")
	}

	cents := rate
	if rateUnit != models.RateUnitCents {
		if rate <= 1000 {
			cents = rate * 100
		}
	}
	if cents != math.Trunc(cents) {
		return 0, NewBookingError(CodeInvalidPricing, fmt.Sprintf("nightly rate %v does not normalize to whole minor units", rate))
	}
	if cents <= 0 {
		return 0, NewBookingError(CodeInvalidPricing, fmt.Sprintf("nightly rate %v is not positive", rate))
	}
	return int64(cents), nil
}

// FormatMajorUnits renders an integer-cents amount in major units for
// human-readable labels, e.g. 9500 -> "95", 9550 -> "95.50".
func FormatMajorUnits(cents int64) string {
	if cents%100 == 0 {
		return fmt.Sprintf("%d", cents/100)
	}
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
