package booking

import (
	"fmt"

	"staybook/models"
)

// PriceStay turns a stored nightly rate and a night count into the
// ordered line items of a quote: the base rate line first, then the
// flat servicing fee. All amounts are integer minor currency units.
func PriceStay(nightlyRate float64, rateUnit string, nights int, serviceFeeCents int64) ([]models.LineItem, int64, error) {
	rateCents, err := NormalizeRateCents(nightlyRate, rateUnit)
	if err != nil {
		return nil, 0, err
	}

	subtotal := rateCents * int64(nights)
	if subtotal <= 0 {
		return nil, 0, NewBookingError(CodeInvalidPricing, fmt.Sprintf("computed subtotal %d is not positive", subtotal))
	}

	lineItems := []models.LineItem{
		{
			Label:       fmt.Sprintf("%d night(s) x %s", nights, FormatMajorUnits(rateCents)),
			AmountCents: subtotal,
		},
		{
			Label:       "Service fee",
			AmountCents: serviceFeeCents,
		},
	}

	var total int64
	for _, item := range lineItems {
		total += item.AmountCents
	}
	return lineItems, total, nil
}
