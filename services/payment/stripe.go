package payment

import (
	"context"
	"errors"
	"fmt"

	"staybook/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

// StripeGateway implements Gateway on Stripe payment intents. The
// intent is created with manual capture so funds are only authorized;
// capture happens after the stay is confirmed, outside this core.
type StripeGateway struct{}

// NewStripeGateway constructs a StripeGateway. The Stripe API key is
// process-wide state set once in main.
func NewStripeGateway() *StripeGateway {
	return &StripeGateway{}
}

// Authorize creates a payment intent for the given amount. Request
// metadata rides on the intent so asynchronous confirmation events can
// be correlated back to the reservation.
func (g *StripeGateway) Authorize(ctx context.Context, req models.AuthorizationRequest) (*models.PaymentAuthorization, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountCents),
		Currency:      stripe.String(req.Currency),
		CaptureMethod: stripe.String(string(stripe.PaymentIntentCaptureMethodManual)),
	}
	params.Context = ctx
	if req.Description != "" {
		params.Description = stripe.String(req.Description)
	}
	for key, value := range req.Metadata {
		params.AddMetadata(key, value)
	}
	if req.IdempotencyKey != "" {
		params.SetIdempotencyKey(req.IdempotencyKey)
	}

	intent, err := paymentintent.New(params)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Type == stripe.ErrorTypeCard {
			return nil, fmt.Errorf("%w: %s", ErrDeclined, stripeErr.Msg)
		}
		return nil, fmt.Errorf("stripe payment intent creation failed: %w", err)
	}

	return &models.PaymentAuthorization{
		ID:           intent.ID,
		ClientSecret: intent.ClientSecret,
	}, nil
}
