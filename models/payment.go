package models

// PaymentAuthorization is the gateway's promise to collect funds: an
// opaque id plus the client-usable secret the UI needs to complete the
// payment.
type PaymentAuthorization struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
}

// AuthorizationRequest is what the checkout orchestrator sends to the
// payment gateway. Metadata carries the reservation id and stay details
// so an asynchronous confirmation event can be correlated back to the
// correct reservation.
type AuthorizationRequest struct {
	AmountCents    int64
	Currency       string
	Description    string
	Metadata       map[string]string
	IdempotencyKey string
}
