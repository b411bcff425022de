package booking

import (
	"context"
	"fmt"
	"time"

	catalogRepo "staybook/database/repository/catalog"
)

// AvailabilityGate asks the catalog store whether a date range is free.
// The store's answer is authoritative; the gate does not cache it. Any
// committed overlap fails the check without distinguishing among
// booked, blocked or maintenance ranges.
type AvailabilityGate struct {
	Catalog catalogRepo.CatalogRepository
}

// Check returns nil when the range is free, a booking error with the
// given code when the store reports an overlap, and the store's own
// error when it cannot answer (which callers treat as an
// infrastructure failure).
func (g *AvailabilityGate) Check(ctx context.Context, propertyID string, checkIn, checkOut time.Time, code string) error {
	available, err := g.Catalog.CheckAvailability(ctx, propertyID, checkIn, checkOut)
	if err != nil {
		return fmt.Errorf("availability check failed: %w", err)
	}
	if !available {
		return NewBookingError(code, fmt.Sprintf("property %s is not available for the selected dates", propertyID))
	}
	return nil
}
