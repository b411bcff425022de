package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveMinNights(t *testing.T) {
	assert.Equal(t, 2, EffectiveMinNights(0))
	assert.Equal(t, 2, EffectiveMinNights(-1))
	assert.Equal(t, 3, EffectiveMinNights(3))
}

func TestValidateStay(t *testing.T) {
	t.Run("zero nights is an invalid range", func(t *testing.T) {
		err := ValidateStay(0, 2)
		assert.Equal(t, CodeInvalidDateRange, ErrorCode(err))
	})

	t.Run("below minimum stay", func(t *testing.T) {
		err := ValidateStay(2, 3)
		assert.Equal(t, CodeMinimumStayViolation, ErrorCode(err))
	})

	t.Run("exactly minimum stay", func(t *testing.T) {
		assert.NoError(t, ValidateStay(3, 3))
	})
}

func TestRefundableUntil(t *testing.T) {
	checkIn := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	want := time.Date(2024, 8, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, RefundableUntil(checkIn))
}
