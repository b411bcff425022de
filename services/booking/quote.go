package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	catalogRepo "staybook/database/repository/catalog"
	"staybook/models"
	"staybook/utils"

	"go.uber.org/zap"
)

// QuoteRequest carries the inputs of a quote computation. Dates are
// calendar dates; time-of-day components are ignored.
type QuoteRequest struct {
	PropertySlug string
	CheckIn      time.Time
	CheckOut     time.Time
	Guests       int
}

// QuoteService computes authoritative price breakdowns for prospective
// stays.
type QuoteService interface {
	Quote(ctx context.Context, req QuoteRequest) (*models.Quote, error)
}

// DefaultQuoteService implements QuoteService against the live catalog
// store, degrading to the bundled static catalog when the store is
// unreachable so the booking funnel stays alive during outages.
type DefaultQuoteService struct {
	Catalog         catalogRepo.CatalogRepository
	Gate            *AvailabilityGate
	Currency        string
	ServiceFeeCents int64
}

// Quote runs the full sequence: property lookup, night count, stay
// policy, availability gate, pricing. Validation failures are terminal
// and surface verbatim. Any other failure triggers one retry of the
// whole sequence against the static catalog; failures on that path
// surface as unitNotFound / invalidPricing.
func (s *DefaultQuoteService) Quote(ctx context.Context, req QuoteRequest) (*models.Quote, error) {
	quote, err := s.quoteLive(ctx, req)
	if err == nil {
		return quote, nil
	}

	var be *BookingError
	if errors.As(err, &be) {
		return nil, err
	}

	logger := utils.GetLogger()
	logger.Warn("catalog store unavailable, quoting from static catalog",
		zap.String("slug", req.PropertySlug), zap.Error(err))
	return s.quoteFallback(req)
}

func (s *DefaultQuoteService) quoteLive(ctx context.Context, req QuoteRequest) (*models.Quote, error) {
	property, err := s.Catalog.GetPropertyBySlug(ctx, req.PropertySlug)
	if err != nil {
		return nil, fmt.Errorf("property lookup failed: %w", err)
	}

	nights := NightsBetween(req.CheckIn, req.CheckOut)
	minNights := EffectiveMinNights(property.MinNights)
	if err := ValidateStay(nights, minNights); err != nil {
		return nil, err
	}

	if err := s.Gate.Check(ctx, property.ID, req.CheckIn, req.CheckOut, CodeUnavailable); err != nil {
		return nil, err
	}

	return s.assembleQuote(*property, req, nights, minNights, models.QuoteSourceLive)
}

// quoteFallback recomputes the quote against the bundled seed list with
// the hard-coded default minimum stay. The static catalog carries no
// calendar, so availability is assumed; callers can see this through
// the quote's source tag.
func (s *DefaultQuoteService) quoteFallback(req QuoteRequest) (*models.Quote, error) {
	property, ok := FallbackProperty(req.PropertySlug)
	if !ok {
		return nil, NewBookingError(CodeUnitNotFound, fmt.Sprintf("no property with slug %q", req.PropertySlug))
	}

	nights := NightsBetween(req.CheckIn, req.CheckOut)
	if err := ValidateStay(nights, DefaultMinNights); err != nil {
		return nil, err
	}

	return s.assembleQuote(property, req, nights, DefaultMinNights, models.QuoteSourceFallback)
}

func (s *DefaultQuoteService) assembleQuote(property models.Property, req QuoteRequest, nights, minNights int, source string) (*models.Quote, error) {
	lineItems, total, err := PriceStay(property.NightlyRate, property.RateUnit, nights, s.ServiceFeeCents)
	if err != nil {
		return nil, err
	}

	currency := property.Currency
	if currency == "" {
		currency = s.Currency
	}

	refundableUntil := RefundableUntil(req.CheckIn)
	return &models.Quote{
		Nights:          nights,
		Currency:        currency,
		LineItems:       lineItems,
		TotalCents:      total,
		MinNights:       minNights,
		RefundableUntil: &refundableUntil,
		Source:          source,
	}, nil
}
