package policy

import (
	"math"
	"time"
)

const (
	fullRefundWindow    = 48 * time.Hour
	partialRefundWindow = 24 * time.Hour

	fullRefundPercent    = 80
	partialRefundPercent = 50
)

// Refund returns the amount given back when a booking is cancelled at now.
// Cancelling more than 48h before pickup refunds 80%, more than 24h refunds 50%.
func Refund(totalAmount float64, pickupDate, now time.Time) float64 {
	untilPickup := pickupDate.Sub(now)

	switch {
	case untilPickup > fullRefundWindow:
		return math.Ceil(totalAmount * fullRefundPercent / 100)
	case untilPickup > partialRefundWindow:
		return math.Ceil(totalAmount * partialRefundPercent / 100)
	default:
		return 0
	}
}
