package catalogRepo

import (
	"context"
	"time"

	"staybook/models"
)

// CatalogRepository defines read access to the property catalog. The
// catalog is owned by an upstream system; the booking core never writes
// to it.
type CatalogRepository interface {
	// GetPropertyBySlug returns the property with the given slug.
	GetPropertyBySlug(ctx context.Context, slug string) (*models.Property, error)
	// CheckAvailability reports whether the date range is free of any
	// committed calendar block (booked, blocked or maintenance alike).
	CheckAvailability(ctx context.Context, propertyID string, checkIn, checkOut time.Time) (bool, error)
}
