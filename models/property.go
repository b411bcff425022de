package models

// RateUnitCents marks a nightly rate that is already stored in minor
// currency units. Untagged rates are normalized with the legacy
// threshold heuristic at pricing time.
const RateUnitCents = "cents"

// Property represents a bookable unit in the catalog. The catalog store
// owns these documents; the booking core only reads them.
type Property struct {
	ID          string  `bson:"id" json:"id"`
	Slug        string  `bson:"slug" json:"slug"`
	Name        string  `bson:"name" json:"name"`
	NightlyRate float64 `bson:"nightly_rate" json:"nightlyRate"` // major units or minor units, see RateUnit
	RateUnit    string  `bson:"rate_unit,omitempty" json:"rateUnit,omitempty"`
	MinNights   int     `bson:"min_nights,omitempty" json:"minNights,omitempty"` // default 2 when unset
	Currency    string  `bson:"currency,omitempty" json:"currency,omitempty"`
}
