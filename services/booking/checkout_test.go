package booking

import (
	"context"
	"errors"
	"testing"

	"staybook/models"
	"staybook/services/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReservations struct {
	created   []*models.Reservation
	createErr error
	attachErr error
	attached  map[string]string
}

func (f *fakeReservations) Create(ctx context.Context, reservation *models.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, reservation)
	return nil
}

func (f *fakeReservations) GetByID(ctx context.Context, reservationID string) (*models.Reservation, error) {
	for _, r := range f.created {
		if r.ID == reservationID {
			return r, nil
		}
	}
	return nil, errors.New("reservation not found")
}

func (f *fakeReservations) AttachAuthorization(ctx context.Context, reservationID, authorizationID string) error {
	if f.attachErr != nil {
		return f.attachErr
	}
	if f.attached == nil {
		f.attached = make(map[string]string)
	}
	f.attached[reservationID] = authorizationID
	for _, r := range f.created {
		if r.ID == reservationID {
			r.AuthorizationID = authorizationID
			r.Status = models.ReservationStatusAuthorized
		}
	}
	return nil
}

func (f *fakeReservations) UpdateStatus(ctx context.Context, reservationID, status string) error {
	for _, r := range f.created {
		if r.ID == reservationID {
			r.Status = status
			return nil
		}
	}
	return errors.New("reservation not found")
}

type fakeGateway struct {
	requests []models.AuthorizationRequest
	errs     []error
}

func (f *fakeGateway) Authorize(ctx context.Context, req models.AuthorizationRequest) (*models.PaymentAuthorization, error) {
	f.requests = append(f.requests, req)
	if len(f.errs) > 0 {
		err := f.errs[0]
		f.errs = f.errs[1:]
		if err != nil {
			return nil, err
		}
	}
	return &models.PaymentAuthorization{
		ID:           "pi_test_123",
		ClientSecret: "pi_test_123_secret",
	}, nil
}

type fakeIdempotency struct {
	records map[string]*CheckoutResult
}

func (f *fakeIdempotency) Get(ctx context.Context, key string) (*CheckoutResult, bool) {
	result, ok := f.records[key]
	return result, ok
}

func (f *fakeIdempotency) Save(ctx context.Context, key string, result *CheckoutResult) {
	if f.records == nil {
		f.records = make(map[string]*CheckoutResult)
	}
	f.records[key] = result
}

func newCheckoutService(catalog *fakeCatalog, reservations *fakeReservations, gateway *fakeGateway) *DefaultCheckoutService {
	gate := &AvailabilityGate{Catalog: catalog}
	return &DefaultCheckoutService{
		Quotes: &DefaultQuoteService{
			Catalog:         catalog,
			Gate:            gate,
			Currency:        "usd",
			ServiceFeeCents: 3000,
		},
		Catalog:      catalog,
		Reservations: reservations,
		Gateway:      gateway,
		Gate:         gate,
	}
}

func checkoutRequest() CheckoutRequest {
	return CheckoutRequest{
		QuoteRequest: quoteRequest(),
		Customer: models.Customer{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "ada@example.com",
			Country:   "GB",
		},
		Source: "web",
	}
}

func TestStartCheckout(t *testing.T) {
	catalog := &fakeCatalog{property: testProperty()}
	reservations := &fakeReservations{}
	gateway := &fakeGateway{}
	svc := newCheckoutService(catalog, reservations, gateway)

	result, err := svc.StartCheckout(context.Background(), checkoutRequest())
	require.NoError(t, err)

	require.Len(t, reservations.created, 1)
	reservation := reservations.created[0]
	assert.Equal(t, result.ReservationID, reservation.ID)
	assert.Equal(t, int64(31500), reservation.TotalCents)
	assert.Equal(t, models.ReservationStatusAuthorized, reservation.Status)
	assert.Equal(t, "pi_test_123", reservation.AuthorizationID)

	require.Len(t, gateway.requests, 1)
	authReq := gateway.requests[0]
	assert.Equal(t, int64(31500), authReq.AmountCents)
	assert.Equal(t, reservation.ID, authReq.Metadata["reservation_id"])
	assert.Equal(t, "prop-1", authReq.Metadata["property_id"])
	assert.Equal(t, "ada@example.com", authReq.Metadata["customer_email"])
	assert.Equal(t, "reservation:"+reservation.ID, authReq.IdempotencyKey)

	assert.Equal(t, "pi_test_123_secret", result.ClientSecret)
	assert.Equal(t, "usd", result.Currency)
	assert.Equal(t, int64(31500), result.TotalCents)
	assert.Equal(t, "pi_test_123", result.AuthorizationID)
	assert.False(t, result.Degraded)

	// Quote-time check plus checkout-time re-check.
	assert.Equal(t, 2, catalog.availCalls)
}

func TestStartCheckoutNoLongerAvailable(t *testing.T) {
	// Available at quote time, taken by the time checkout re-checks.
	catalog := &fakeCatalog{property: testProperty(), availability: []bool{true, false}}
	reservations := &fakeReservations{}
	gateway := &fakeGateway{}
	svc := newCheckoutService(catalog, reservations, gateway)

	_, err := svc.StartCheckout(context.Background(), checkoutRequest())
	assert.Equal(t, CodeNoLongerAvailable, ErrorCode(err))
	assert.Empty(t, reservations.created)
	assert.Empty(t, gateway.requests)
}

func TestStartCheckoutAttachFailureKeepsPendingRow(t *testing.T) {
	catalog := &fakeCatalog{property: testProperty()}
	reservations := &fakeReservations{attachErr: errors.New("write timeout")}
	gateway := &fakeGateway{}
	svc := newCheckoutService(catalog, reservations, gateway)

	_, err := svc.StartCheckout(context.Background(), checkoutRequest())
	assert.Equal(t, CodeReservationLinkFailed, ErrorCode(err))

	// The row is kept for reconciliation, never rolled back: the
	// authorization may have succeeded.
	require.Len(t, reservations.created, 1)
	assert.Equal(t, models.ReservationStatusPending, reservations.created[0].Status)
	assert.Len(t, gateway.requests, 1)
}

func TestStartCheckoutDegradedOnStoreFailure(t *testing.T) {
	catalog := &fakeCatalog{property: testProperty()}
	reservations := &fakeReservations{createErr: errors.New("store down")}
	gateway := &fakeGateway{}
	svc := newCheckoutService(catalog, reservations, gateway)

	result, err := svc.StartCheckout(context.Background(), checkoutRequest())
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.NotEmpty(t, result.ReservationID)
	assert.Equal(t, "pi_test_123_secret", result.ClientSecret)
	assert.Empty(t, reservations.created)

	// The standalone authorization carries no correlation metadata.
	require.Len(t, gateway.requests, 1)
	assert.Empty(t, gateway.requests[0].Metadata)
	assert.Empty(t, gateway.requests[0].IdempotencyKey)
}

func TestStartCheckoutDeclinedIsTerminal(t *testing.T) {
	catalog := &fakeCatalog{property: testProperty()}
	reservations := &fakeReservations{}
	gateway := &fakeGateway{errs: []error{payment.ErrDeclined}}
	svc := newCheckoutService(catalog, reservations, gateway)

	_, err := svc.StartCheckout(context.Background(), checkoutRequest())
	assert.Equal(t, CodePaymentAuthorizationFailed, ErrorCode(err))
	// A declined charge must not be retried on the degraded path.
	assert.Len(t, gateway.requests, 1)
}

func TestStartCheckoutGatewayUnreachable(t *testing.T) {
	catalog := &fakeCatalog{property: testProperty()}
	reservations := &fakeReservations{}
	gateway := &fakeGateway{errs: []error{errors.New("dial timeout"), errors.New("dial timeout")}}
	svc := newCheckoutService(catalog, reservations, gateway)

	_, err := svc.StartCheckout(context.Background(), checkoutRequest())
	assert.Equal(t, CodePaymentAuthorizationFailed, ErrorCode(err))
	// Primary attempt plus one standalone fallback attempt.
	assert.Len(t, gateway.requests, 2)
}

func TestStartCheckoutIdempotencyReplay(t *testing.T) {
	catalog := &fakeCatalog{property: testProperty()}
	reservations := &fakeReservations{}
	gateway := &fakeGateway{}
	svc := newCheckoutService(catalog, reservations, gateway)

	stored := &CheckoutResult{
		ReservationID: "res-1",
		ClientSecret:  "pi_prev_secret",
		Currency:      "usd",
		TotalCents:    31500,
	}
	svc.Idempotency = &fakeIdempotency{records: map[string]*CheckoutResult{"key-1": stored}}

	req := checkoutRequest()
	req.IdempotencyKey = "key-1"
	result, err := svc.StartCheckout(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, stored, result)
	assert.Empty(t, reservations.created)
	assert.Empty(t, gateway.requests)
}

func TestStartCheckoutRecordsIdempotencyResult(t *testing.T) {
	catalog := &fakeCatalog{property: testProperty()}
	reservations := &fakeReservations{}
	gateway := &fakeGateway{}
	svc := newCheckoutService(catalog, reservations, gateway)
	store := &fakeIdempotency{}
	svc.Idempotency = store

	req := checkoutRequest()
	req.IdempotencyKey = "key-2"
	result, err := svc.StartCheckout(context.Background(), req)
	require.NoError(t, err)

	saved, ok := store.records["key-2"]
	require.True(t, ok)
	assert.Equal(t, result, saved)
}
