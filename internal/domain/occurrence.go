package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vlkhvnn/PCM-PricingService/pkg/types"
)

// DraftOccurrenceIDPrefix prefix of synthetic ids assigned to occurrences
// created inside a draft. Confirmed occurrences carry durable integer ids.
const DraftOccurrenceIDPrefix = "draft_"

// Occurrence is a single scheduled time window within a booking
// (one overnight stay, one visit). All wall-clock values are timezone-naive
// and interpreted as UTC once persisted.
type Occurrence struct {
	OccurrenceID string
	StartDate    time.Time // date only, midnight UTC
	EndDate      time.Time // date only, midnight UTC
	StartTime    types.TimeString
	EndTime      types.TimeString

	// Rates is the schedule snapshot this occurrence was priced with.
	// Its AdditionalRates list is the user-selected set for this occurrence.
	Rates RateSchedule

	// Computed fields, refreshed whenever the cost is recalculated
	Multiple              decimal.Decimal // fractional billing units consumed
	BaseTotal             decimal.Decimal
	AdditionalAnimalTotal decimal.Decimal
	HolidayTotal          decimal.Decimal
	CalculatedCost        decimal.Decimal
}

// IsDraftOccurrence returns true if the occurrence id is a synthetic draft id
func (o *Occurrence) IsDraftOccurrence() bool {
	return strings.HasPrefix(o.OccurrenceID, DraftOccurrenceIDPrefix)
}

// StartDateTime combines the start date and start time
func (o *Occurrence) StartDateTime() (time.Time, error) {
	return o.StartTime.OnDate(o.StartDate)
}

// EndDateTime combines the end date and end time
func (o *Occurrence) EndDateTime() (time.Time, error) {
	return o.EndTime.OnDate(o.EndDate)
}

// AdditionalRatesTotal sums the amounts of the occurrence's selected add-ons
func (o *Occurrence) AdditionalRatesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, ar := range o.Rates.AdditionalRates {
		total = total.Add(ar.Amount)
	}
	return total
}

// SameTiming returns true if the occurrence covers exactly the given window
func (o *Occurrence) SameTiming(startDate, endDate time.Time, startTime, endTime types.TimeString) bool {
	return sameDay(o.StartDate, startDate) &&
		sameDay(o.EndDate, endDate) &&
		o.StartTime == startTime &&
		o.EndTime == endTime
}

// sameDay compares two dates ignoring the time-of-day component
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// SameDay reports whether two timestamps fall on the same calendar day
func SameDay(a, b time.Time) bool {
	return sameDay(a, b)
}

// DaysApart returns the absolute distance between two dates in whole days
func DaysApart(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	diff := da.Sub(db)
	if diff < 0 {
		diff = -diff
	}
	return int(diff.Hours() / 24)
}
