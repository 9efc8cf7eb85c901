package domain

import "github.com/shopspring/decimal"

// CostSummary is the aggregate cost of a booking or draft.
// It is derived data: recomputed wholesale from the occurrence set,
// never partially mutated.
type CostSummary struct {
	Subtotal          decimal.Decimal
	ClientPlatformFee decimal.Decimal
	ProPlatformFee    decimal.Decimal
	TotalPlatformFee  decimal.Decimal
	Taxes             decimal.Decimal
	TotalClientCost   decimal.Decimal
	TotalSitterPayout decimal.Decimal

	TaxState            string
	ClientFeePercentage decimal.Decimal
	ProFeePercentage    decimal.Decimal
}

// FeeSchedule holds the platform fee percentages resolved for a
// (client, professional) pair. A waitlisted client has a zero client fee.
type FeeSchedule struct {
	ClientFeePercentage decimal.Decimal
	ProFeePercentage    decimal.Decimal
}
