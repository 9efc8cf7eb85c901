package pricing

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// multiplePrecision точность квантования multiple (доли единиц тарификации)
const multiplePrecision = 5

// OccurrenceCost результат расчёта стоимости одного occurrence
type OccurrenceCost struct {
	Multiple              decimal.Decimal
	BaseTotal             decimal.Decimal
	AdditionalAnimalTotal decimal.Decimal
	HolidayTotal          decimal.Decimal
	AdditionalRatesTotal  decimal.Decimal
	CalculatedCost        decimal.Decimal
}

// CalculateOccurrence считает стоимость одного временного окна.
//
// Длительность берётся в часах (конец может переходить на следующий календарный
// день). multiple = длительность / размер единицы тарификации, квантуется до
// 5 знаков. PER_VISIT не пропорционализируется: multiple = 1 и базовая
// стоимость равна базовой ставке независимо от длительности.
//
// Доплата за дополнительных животных начисляется только при
// numPets > AppliesAfter, пропорционально multiple.
//
// HolidayTotal всегда ноль - см. IsHoliday.
func CalculateOccurrence(start, end time.Time, rates domain.RateSchedule, numPets int) OccurrenceCost {
	var multiple decimal.Decimal
	var baseTotal decimal.Decimal

	// PER_VISIT (и неизвестные единицы) не пропорционализируются
	if unitHrs, prorated := rates.UnitOfTime.Hours(); !prorated {
		multiple = decimal.NewFromInt(1)
		baseTotal = rates.BaseRate
	} else {
		durationMinutes := int64(end.Sub(start) / time.Minute)
		durationHours := decimal.NewFromInt(durationMinutes).Div(decimal.NewFromInt(60))

		multiple = durationHours.Div(unitHrs).Round(multiplePrecision)
		baseTotal = rates.BaseRate.Mul(multiple)
	}

	additionalAnimalTotal := decimal.Zero
	if numPets > rates.AppliesAfter {
		extraPets := decimal.NewFromInt(int64(numPets - rates.AppliesAfter))
		additionalAnimalTotal = rates.AdditionalAnimalRate.Mul(extraPets).Mul(multiple)
	}

	// Праздничная надбавка: заглушка, всегда ноль (IsHoliday не реализован)
	holidayTotal := decimal.Zero
	if IsHoliday(start) {
		holidayTotal = rates.HolidayRate.Mul(multiple)
	}

	additionalRatesTotal := decimal.Zero
	for _, ar := range rates.AdditionalRates {
		additionalRatesTotal = additionalRatesTotal.Add(ar.Amount)
	}

	return OccurrenceCost{
		Multiple:              multiple,
		BaseTotal:             baseTotal,
		AdditionalAnimalTotal: additionalAnimalTotal,
		HolidayTotal:          holidayTotal,
		AdditionalRatesTotal:  additionalRatesTotal,
		CalculatedCost:        baseTotal.Add(additionalAnimalTotal).Add(holidayTotal).Add(additionalRatesTotal),
	}
}

// ApplyCost записывает результат расчёта в occurrence
func ApplyCost(occ *domain.Occurrence, cost OccurrenceCost) {
	occ.Multiple = cost.Multiple
	occ.BaseTotal = cost.BaseTotal
	occ.AdditionalAnimalTotal = cost.AdditionalAnimalTotal
	occ.HolidayTotal = cost.HolidayTotal
	occ.CalculatedCost = cost.CalculatedCost
}

// RecalculateOccurrence пересчитывает стоимость occurrence по его собственному
// расписанию ставок и количеству животных
func RecalculateOccurrence(occ *domain.Occurrence, numPets int) error {
	start, err := occ.StartDateTime()
	if err != nil {
		return fmt.Errorf("pricing: occurrence %s has invalid start time: %w", occ.OccurrenceID, err)
	}
	end, err := occ.EndDateTime()
	if err != nil {
		return fmt.Errorf("pricing: occurrence %s has invalid end time: %w", occ.OccurrenceID, err)
	}

	ApplyCost(occ, CalculateOccurrence(start, end, occ.Rates, numPets))
	return nil
}
