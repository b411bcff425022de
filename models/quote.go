package models

import "time"

// Quote sources. A fallback quote was computed against the bundled
// static catalog because the primary store was unreachable.
const (
	QuoteSourceLive     = "live"
	QuoteSourceFallback = "fallback"
)

// LineItem is a single labelled amount on a quote, in minor currency units.
// Immutable once produced.
type LineItem struct {
	Label       string `bson:"label" json:"label"`
	AmountCents int64  `bson:"amount_cents" json:"amountCents"`
}

// Quote is the itemized price breakdown for a prospective stay. It is a
// pure value recomputed per request and is never persisted.
type Quote struct {
	Nights          int        `json:"nights"`
	Currency        string     `json:"currency"`
	LineItems       []LineItem `json:"lineItems"` // base rate line first, then fees
	TotalCents      int64      `json:"totalCents"`
	MinNights       int        `json:"minNights,omitempty"`
	RefundableUntil *time.Time `json:"refundableUntil,omitempty"`
	Source          string     `json:"source"`
}
