package booking

import "staybook/models"

// fallbackCatalog is the bundled, read-only property seed list used
// when the primary catalog store is unreachable. Rates are kept in the
// same heterogeneous shape the live store carries so the normalization
// rule applies identically on both paths. Prices may be stale; that is
// the accepted cost of keeping the booking funnel alive.
var fallbackCatalog = map[string]models.Property{
	"seaside-loft": {
		ID:          "prop-seaside-loft",
		Slug:        "seaside-loft",
		Name:        "Seaside Loft",
		NightlyRate: 95, // major units
		Currency:    "usd",
	},
	"harbor-house": {
		ID:          "prop-harbor-house",
		Slug:        "harbor-house",
		Name:        "Harbor House",
		NightlyRate: 14500, // already minor units
		RateUnit:    models.RateUnitCents,
		Currency:    "usd",
	},
	"garden-studio": {
		ID:          "prop-garden-studio",
		Slug:        "garden-studio",
		Name:        "Garden Studio",
		NightlyRate: 72.50,
		Currency:    "usd",
	},
	"hillside-cabin": {
		ID:          "prop-hillside-cabin",
		Slug:        "hillside-cabin",
		Name:        "Hillside Cabin",
		NightlyRate: 120,
		Currency:    "usd",
	},
}

// FallbackProperty looks up a property in the bundled static catalog.
func FallbackProperty(slug string) (models.Property, bool) {
	property, ok := fallbackCatalog[slug]
	return property, ok
}
