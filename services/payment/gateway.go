package payment

import (
	"context"
	"errors"

	"staybook/models"
)

// ErrDeclined marks an authorization the gateway understood and
// rejected (declined card, invalid payment details). Callers must not
// confuse it with the gateway being unreachable: a declined charge is
// terminal, an unreachable gateway triggers the degraded checkout path.
var ErrDeclined = errors.New("payment authorization declined")

// Gateway is the payment-authorization collaborator. Implementations
// return an opaque authorization id plus the client-usable secret the
// UI needs to complete the payment.
type Gateway interface {
	Authorize(ctx context.Context, req models.AuthorizationRequest) (*models.PaymentAuthorization, error)
}
