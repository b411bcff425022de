package booking

import (
	"testing"

	"staybook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceStay(t *testing.T) {
	t.Run("base line first then service fee", func(t *testing.T) {
		lineItems, total, err := PriceStay(95, "", 3, 3000)
		require.NoError(t, err)
		require.Len(t, lineItems, 2)

		assert.Equal(t, "3 night(s) x 95", lineItems[0].Label)
		assert.Equal(t, int64(28500), lineItems[0].AmountCents)
		assert.Equal(t, "Service fee", lineItems[1].Label)
		assert.Equal(t, int64(3000), lineItems[1].AmountCents)
		assert.Equal(t, int64(31500), total)
	})

	t.Run("total equals exact sum of line amounts", func(t *testing.T) {
		lineItems, total, err := PriceStay(72.50, "", 5, 3000)
		require.NoError(t, err)

		var sum int64
		for _, item := range lineItems {
			sum += item.AmountCents
		}
		assert.Equal(t, sum, total)
	})

	t.Run("major and minor unit rates price identically", func(t *testing.T) {
		majorItems, majorTotal, err := PriceStay(95, "", 1, 3000)
		require.NoError(t, err)
		minorItems, minorTotal, err := PriceStay(9500, "", 1, 3000)
		require.NoError(t, err)

		assert.Equal(t, majorItems, minorItems)
		assert.Equal(t, majorTotal, minorTotal)
		assert.Equal(t, int64(9500), majorItems[0].AmountCents)
	})

	t.Run("tagged minor-unit rate prices identically", func(t *testing.T) {
		tagged, taggedTotal, err := PriceStay(9500, models.RateUnitCents, 1, 3000)
		require.NoError(t, err)
		untagged, untaggedTotal, err := PriceStay(95, "", 1, 3000)
		require.NoError(t, err)

		assert.Equal(t, untagged, tagged)
		assert.Equal(t, untaggedTotal, taggedTotal)
	})

	t.Run("invalid rate surfaces invalid pricing", func(t *testing.T) {
		_, _, err := PriceStay(-5, "", 2, 3000)
		assert.Equal(t, CodeInvalidPricing, ErrorCode(err))
	})
}
