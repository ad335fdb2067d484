package model_test

import (
	"testing"
	"time"

	"gomoto/internal/domains/booking/model"

	"github.com/stretchr/testify/assert"
)

func TestReference(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

	assert.Equal(t, "GOMOTO20260314093000000042", model.Reference(now, 42))
	assert.Equal(t, "GOMOTO202603140930001234567", model.Reference(now, 1234567))
}

func TestCharges_ValueAndScan(t *testing.T) {
	charges := model.Charges{
		{Description: "helmet", Amount: 50},
		{Description: "delivery", Amount: 120.5},
	}

	value, err := charges.Value()
	assert.NoError(t, err)

	var scanned model.Charges
	assert.NoError(t, scanned.Scan(value))
	assert.Equal(t, charges, scanned)
	assert.Equal(t, []float64{50, 120.5}, scanned.Amounts())
}

func TestCharges_NilValue(t *testing.T) {
	var charges model.Charges

	value, err := charges.Value()
	assert.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)
}

func TestBooking_IsClosed(t *testing.T) {
	for status, want := range map[string]bool{
		model.StatusPending:   false,
		model.StatusConfirmed: false,
		model.StatusActive:    false,
		model.StatusCompleted: true,
		model.StatusCancelled: true,
	} {
		assert.Equal(t, want, model.Booking{BookingStatus: status}.IsClosed(), status)
	}
}
