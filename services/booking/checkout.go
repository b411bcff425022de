package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogRepo "staybook/database/repository/catalog"
	reservationRepo "staybook/database/repository/reservation"
	"staybook/models"
	"staybook/services/payment"
	"staybook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutRequest carries everything needed to turn a quoted stay into
// a pending reservation with a payment authorization.
type CheckoutRequest struct {
	QuoteRequest
	Customer       models.Customer
	Source         string // source channel, e.g. "web"
	IdempotencyKey string // optional; identical keys replay the stored result
}

// CheckoutResult is what the UI needs to collect payment: the
// reservation id, the gateway's client secret and the authoritative
// total. Degraded marks the offline path where no reservation was
// persisted.
type CheckoutResult struct {
	ReservationID   string `json:"reservationId"`
	ClientSecret    string `json:"clientSecret"`
	Currency        string `json:"currency"`
	TotalCents      int64  `json:"totalCents"`
	AuthorizationID string `json:"authorizationId,omitempty"`
	Degraded        bool   `json:"degraded,omitempty"`
}

// CheckoutService starts paid reservations.
type CheckoutService interface {
	StartCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error)
}

// DefaultCheckoutService orchestrates checkout: re-quote, re-check
// availability, create the pending reservation, authorize payment with
// the reservation id as correlation metadata, attach the authorization
// reference. The reservation write and the gateway call are separate
// resources with no transaction spanning them; a failure between the
// two leaves a pending row for out-of-band reconciliation.
type DefaultCheckoutService struct {
	Quotes       QuoteService
	Catalog      catalogRepo.CatalogRepository
	Reservations reservationRepo.ReservationRepository
	Gateway      payment.Gateway
	Gate         *AvailabilityGate
	Idempotency  IdempotencyStore // optional
}

func (s *DefaultCheckoutService) StartCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	logger := utils.GetLogger()

	if s.Idempotency != nil && req.IdempotencyKey != "" {
		if stored, ok := s.Idempotency.Get(ctx, req.IdempotencyKey); ok {
			logger.Info("replaying stored checkout result",
				zap.String("idempotencyKey", req.IdempotencyKey),
				zap.String("reservationID", stored.ReservationID))
			return stored, nil
		}
	}

	// Always re-quote; a client-supplied total is never trusted.
	quote, err := s.Quotes.Quote(ctx, req.QuoteRequest)
	if err != nil {
		return nil, err
	}

	result, err := s.checkout(ctx, req, quote)
	if err == nil {
		if s.Idempotency != nil && req.IdempotencyKey != "" && !result.Degraded {
			s.Idempotency.Save(ctx, req.IdempotencyKey, result)
		}
		return result, nil
	}

	var be *BookingError
	if errors.As(err, &be) {
		return nil, err
	}

	// Backend outage mid-checkout: keep the payment UI alive with a
	// standalone authorization. Nothing is persisted on this path.
	logger.Error("checkout infrastructure failure, falling back to standalone authorization",
		zap.String("slug", req.PropertySlug), zap.Error(err))
	return s.checkoutDegraded(ctx, req, quote)
}

func (s *DefaultCheckoutService) checkout(ctx context.Context, req CheckoutRequest, quote *models.Quote) (*CheckoutResult, error) {
	logger := utils.GetLogger()

	property, err := s.Catalog.GetPropertyBySlug(ctx, req.PropertySlug)
	if err != nil {
		return nil, fmt.Errorf("property lookup failed: %w", err)
	}

	// Second availability check against the live store. Narrows the
	// race window between quoting and paying; it cannot close it.
	if err := s.Gate.Check(ctx, property.ID, req.CheckIn, req.CheckOut, CodeNoLongerAvailable); err != nil {
		return nil, err
	}

	now := time.Now()
	reservation := &models.Reservation{
		ID:           uuid.New().String(),
		PropertyID:   property.ID,
		PropertySlug: property.Slug,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Guests:       req.Guests,
		Customer:     req.Customer,
		TotalCents:   quote.TotalCents,
		Currency:     quote.Currency,
		Status:       models.ReservationStatusPending,
		Source:       req.Source,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Reservations.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("failed to create reservation: %w", err)
	}

	authorization, err := s.Gateway.Authorize(ctx, models.AuthorizationRequest{
		AmountCents: quote.TotalCents,
		Currency:    quote.Currency,
		Description: fmt.Sprintf("Stay at %s (%s)", property.Name, property.Slug),
		Metadata: map[string]string{
			"reservation_id": reservation.ID,
			"property_id":    property.ID,
			"check_in":       req.CheckIn.Format("2006-01-02"),
			"check_out":      req.CheckOut.Format("2006-01-02"),
			"customer_email": req.Customer.Email,
		},
		// One active authorization per reservation; a retried
		// orchestration cannot double-authorize.
		IdempotencyKey: "reservation:" + reservation.ID,
	})
	if err != nil {
		if errors.Is(err, payment.ErrDeclined) {
			return nil, NewBookingError(CodePaymentAuthorizationFailed, err.Error())
		}
		return nil, fmt.Errorf("payment authorization failed: %w", err)
	}

	if err := s.Reservations.AttachAuthorization(ctx, reservation.ID, authorization.ID); err != nil {
		// The authorization may have succeeded; deleting the row could
		// discard a paid reservation. Leave it pending for
		// reconciliation against the gateway metadata.
		logger.Error("failed to attach authorization to reservation",
			zap.String("reservationID", reservation.ID),
			zap.String("authorizationID", authorization.ID),
			zap.Error(err))
		return nil, NewBookingError(CodeReservationLinkFailed,
			fmt.Sprintf("reservation %s created but authorization reference could not be stored", reservation.ID))
	}

	logger.Info("checkout authorized",
		zap.String("reservationID", reservation.ID),
		zap.String("authorizationID", authorization.ID),
		zap.Int64("totalCents", quote.TotalCents))

	return &CheckoutResult{
		ReservationID:   reservation.ID,
		ClientSecret:    authorization.ClientSecret,
		Currency:        quote.Currency,
		TotalCents:      quote.TotalCents,
		AuthorizationID: authorization.ID,
	}, nil
}

// checkoutDegraded requests a standalone authorization with no
// reservation row and no correlation metadata, returning a locally
// generated reservation-shaped id. The booking is never persisted; the
// degraded flag makes the gap observable instead of silent.
func (s *DefaultCheckoutService) checkoutDegraded(ctx context.Context, req CheckoutRequest, quote *models.Quote) (*CheckoutResult, error) {
	authorization, err := s.Gateway.Authorize(ctx, models.AuthorizationRequest{
		AmountCents: quote.TotalCents,
		Currency:    quote.Currency,
		Description: fmt.Sprintf("Stay at %s", req.PropertySlug),
	})
	if err != nil {
		return nil, NewBookingError(CodePaymentAuthorizationFailed, err.Error())
	}

	return &CheckoutResult{
		ReservationID:   uuid.New().String(),
		ClientSecret:    authorization.ClientSecret,
		Currency:        quote.Currency,
		TotalCents:      quote.TotalCents,
		AuthorizationID: authorization.ID,
		Degraded:        true,
	}, nil
}
