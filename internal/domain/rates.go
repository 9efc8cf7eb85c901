package domain

import "github.com/shopspring/decimal"

// UnitOfTime represents the billing unit of a service rate
type UnitOfTime string

const (
	Unit15Min    UnitOfTime = "15_MIN"
	Unit30Min    UnitOfTime = "30_MIN"
	Unit45Min    UnitOfTime = "45_MIN"
	Unit1Hour    UnitOfTime = "1_HOUR"
	Unit2Hour    UnitOfTime = "2_HOUR"
	Unit3Hour    UnitOfTime = "3_HOUR"
	Unit4Hour    UnitOfTime = "4_HOUR"
	Unit5Hour    UnitOfTime = "5_HOUR"
	Unit6Hour    UnitOfTime = "6_HOUR"
	Unit7Hour    UnitOfTime = "7_HOUR"
	Unit8Hour    UnitOfTime = "8_HOUR"
	Unit24Hour   UnitOfTime = "24_HOUR"
	UnitPerDay   UnitOfTime = "PER_DAY"
	UnitWeek     UnitOfTime = "WEEK"
	UnitPerVisit UnitOfTime = "PER_VISIT"
)

// unitHours maps a billing unit to its length in hours.
// PER_VISIT is intentionally absent: a visit is never prorated by duration.
var unitHours = map[UnitOfTime]decimal.Decimal{
	Unit15Min:  decimal.RequireFromString("0.25"),
	Unit30Min:  decimal.RequireFromString("0.5"),
	Unit45Min:  decimal.RequireFromString("0.75"),
	Unit1Hour:  decimal.NewFromInt(1),
	Unit2Hour:  decimal.NewFromInt(2),
	Unit3Hour:  decimal.NewFromInt(3),
	Unit4Hour:  decimal.NewFromInt(4),
	Unit5Hour:  decimal.NewFromInt(5),
	Unit6Hour:  decimal.NewFromInt(6),
	Unit7Hour:  decimal.NewFromInt(7),
	Unit8Hour:  decimal.NewFromInt(8),
	Unit24Hour: decimal.NewFromInt(24),
	UnitPerDay: decimal.NewFromInt(24),
	UnitWeek:   decimal.NewFromInt(168),
}

// Hours returns the unit length in hours and whether the unit is prorated.
// PER_VISIT (and unknown units) return ok=false.
func (u UnitOfTime) Hours() (decimal.Decimal, bool) {
	h, ok := unitHours[u]
	return h, ok
}

// IsValid returns true if the unit is a known billing unit
func (u UnitOfTime) IsValid() bool {
	if u == UnitPerVisit {
		return true
	}
	_, ok := unitHours[u]
	return ok
}

// AdditionalRate is an optional service add-on (e.g. grooming, medication)
type AdditionalRate struct {
	Title       string
	Description string
	Amount      decimal.Decimal
}

// RateSchedule is the effective rate set used to price one occurrence.
// It is an immutable snapshot: a draft may override the unit of time or
// amounts per occurrence, so the schedule is resolved fresh for every
// recalculation and stored on the occurrence it priced.
type RateSchedule struct {
	BaseRate             decimal.Decimal
	AdditionalAnimalRate decimal.Decimal
	AppliesAfter         int // pet count above which the additional-animal rate applies
	HolidayRate          decimal.Decimal
	UnitOfTime           UnitOfTime
	AdditionalRates      []AdditionalRate
}

// RateOverrides are draft-level overrides applied on top of the
// service-defined schedule when resolving rates for an occurrence
type RateOverrides struct {
	BaseRate             *decimal.Decimal
	AdditionalAnimalRate *decimal.Decimal
	AppliesAfter         *int
	HolidayRate          *decimal.Decimal
	UnitOfTime           *UnitOfTime
}

// HasRateTitle returns true if the schedule carries an additional rate with the title
func (r RateSchedule) HasRateTitle(title string) bool {
	for _, ar := range r.AdditionalRates {
		if ar.Title == title {
			return true
		}
	}
	return false
}

// RateToggle is one entry of the draft's optional-rate toggle map.
// The map is keyed by "<title>_start-<suffix>"; Applies survives occurrence
// regeneration so a rate a user switched off never silently comes back.
type RateToggle struct {
	Applies     bool
	Amount      decimal.Decimal
	Description string
}
