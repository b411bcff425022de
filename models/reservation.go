package models

import "time"

// Reservation statuses. The only transitions in this core are
// pending -> authorized (payment reference attached) and
// authorized -> confirmed/cancelled (applied by the payment webhook).
const (
	ReservationStatusPending    = "pending"
	ReservationStatusAuthorized = "authorized"
	ReservationStatusConfirmed  = "confirmed"
	ReservationStatusCancelled  = "cancelled"
)

// Customer holds the guest contact fields collected at checkout.
type Customer struct {
	FirstName       string `bson:"first_name" json:"firstName"`
	LastName        string `bson:"last_name" json:"lastName"`
	Email           string `bson:"email" json:"email"`
	Phone           string `bson:"phone,omitempty" json:"phone,omitempty"`
	Country         string `bson:"country,omitempty" json:"country,omitempty"`
	SpecialRequests string `bson:"special_requests,omitempty" json:"specialRequests,omitempty"`
}

// Reservation represents a guest's booking attempt, independent of the
// payment outcome. Created in "pending" status by the checkout
// orchestrator and owned by the persistent store thereafter.
type Reservation struct {
	ID              string    `bson:"id" json:"id"`
	PropertyID      string    `bson:"property_id" json:"propertyId"`
	PropertySlug    string    `bson:"property_slug" json:"propertySlug"`
	CheckIn         time.Time `bson:"check_in" json:"checkIn"`
	CheckOut        time.Time `bson:"check_out" json:"checkOut"`
	Guests          int       `bson:"guests" json:"guests"`
	Customer        Customer  `bson:"customer" json:"customer"`
	TotalCents      int64     `bson:"total_cents" json:"totalCents"`
	Currency        string    `bson:"currency" json:"currency"`
	Status          string    `bson:"status" json:"status"`
	Source          string    `bson:"source" json:"source"` // e.g. "web"
	AuthorizationID string    `bson:"authorization_id,omitempty" json:"authorizationId,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}
