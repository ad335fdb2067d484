// Package policy holds the pure booking rules: pricing, refunds and rating aggregation.
package policy

import "math"

const (
	InsuranceBasic    = "basic"
	InsuranceStandard = "standard"
	InsurancePremium  = "premium"
)

// AdvancePercent is the share of the total collected upfront.
const AdvancePercent = 20

// insurancePercent is charged per rental day on the daily rate.
var insurancePercent = map[string]float64{
	InsuranceBasic:    5,
	InsuranceStandard: 10,
	InsurancePremium:  15,
}

type PriceInput struct {
	PricePerDay       float64
	PricePerHour      float64
	RentalDays        int
	RentalHours       int
	InsuranceType     string
	AdditionalCharges []float64
}

type Quote struct {
	TotalAmount    float64
	InsurancePrice float64
	AdvancePayment float64
}

// InsurancePrice returns zero for an empty or unknown insurance type.
func InsurancePrice(pricePerDay float64, rentalDays int, insuranceType string) float64 {
	percent, ok := insurancePercent[insuranceType]
	if !ok {
		return 0
	}

	return pricePerDay * percent / 100 * float64(rentalDays)
}

// Price computes the booking total. Only the advance payment is rounded.
func Price(in PriceInput) Quote {
	total := in.PricePerDay * float64(in.RentalDays)

	if in.RentalHours > 0 {
		total += in.PricePerHour * float64(in.RentalHours)
	}

	insurance := InsurancePrice(in.PricePerDay, in.RentalDays, in.InsuranceType)
	total += insurance

	for _, amount := range in.AdditionalCharges {
		total += amount
	}

	return Quote{
		TotalAmount:    total,
		InsurancePrice: insurance,
		AdvancePayment: math.Ceil(total * AdvancePercent / 100),
	}
}
