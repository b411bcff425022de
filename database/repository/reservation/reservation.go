package reservationRepo

import (
	"context"

	"staybook/models"
)

// ReservationRepository defines persistence for reservation records.
type ReservationRepository interface {
	// Create inserts a new reservation document.
	Create(ctx context.Context, reservation *models.Reservation) error
	// GetByID retrieves a reservation by its id.
	GetByID(ctx context.Context, reservationID string) (*models.Reservation, error)
	// AttachAuthorization stores the payment authorization reference on
	// the reservation and moves it from pending to authorized.
	AttachAuthorization(ctx context.Context, reservationID, authorizationID string) error
	// UpdateStatus applies a status transition.
	UpdateStatus(ctx context.Context, reservationID, status string) error
}
