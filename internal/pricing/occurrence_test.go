package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateOccurrencePerVisitIgnoresDuration(t *testing.T) {
	t.Parallel()

	rates := domain.RateSchedule{
		BaseRate:   dec("45"),
		UnitOfTime: domain.UnitPerVisit,
	}

	short := CalculateOccurrence(
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
		rates, 1,
	)
	long := CalculateOccurrence(
		time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		rates, 1,
	)

	require.True(t, short.Multiple.Equal(decimal.NewFromInt(1)))
	require.True(t, long.Multiple.Equal(decimal.NewFromInt(1)))
	require.True(t, short.BaseTotal.Equal(rates.BaseRate))
	require.True(t, long.BaseTotal.Equal(rates.BaseRate))
}

func TestCalculateOccurrenceOvernightStay(t *testing.T) {
	t.Parallel()

	// База $100/сутки, третий питомец сверх порога 1: 48 часов, 3 питомца
	rates := domain.RateSchedule{
		BaseRate:             dec("100"),
		AdditionalAnimalRate: dec("20"),
		AppliesAfter:         1,
		UnitOfTime:           domain.UnitPerDay,
	}

	cost := CalculateOccurrence(
		time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 3, 8, 0, 0, 0, time.UTC),
		rates, 3,
	)

	require.True(t, cost.Multiple.Equal(dec("2")), "multiple = %s", cost.Multiple)
	require.True(t, cost.BaseTotal.Equal(dec("200")), "base = %s", cost.BaseTotal)
	require.True(t, cost.AdditionalAnimalTotal.Equal(dec("80")), "animals = %s", cost.AdditionalAnimalTotal)
	require.True(t, cost.HolidayTotal.IsZero())
	require.True(t, cost.CalculatedCost.Equal(dec("280")), "cost = %s", cost.CalculatedCost)
}

func TestCalculateOccurrenceAppliesAfterBoundary(t *testing.T) {
	t.Parallel()

	rates := domain.RateSchedule{
		BaseRate:             dec("50"),
		AdditionalAnimalRate: dec("15"),
		AppliesAfter:         2,
		UnitOfTime:           domain.Unit1Hour,
	}
	start := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	atThreshold := CalculateOccurrence(start, end, rates, 2)
	require.True(t, atThreshold.AdditionalAnimalTotal.IsZero(),
		"num_pets == applies_after must not be charged")

	aboveThreshold := CalculateOccurrence(start, end, rates, 3)
	require.True(t, aboveThreshold.AdditionalAnimalTotal.Equal(dec("15")))
}

func TestCalculateOccurrenceFractionalUnits(t *testing.T) {
	t.Parallel()

	rates := domain.RateSchedule{
		BaseRate:   dec("30"),
		UnitOfTime: domain.Unit1Hour,
	}

	cost := CalculateOccurrence(
		time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 10, 11, 30, 0, 0, time.UTC),
		rates, 1,
	)

	require.True(t, cost.Multiple.Equal(dec("1.5")))
	require.True(t, cost.BaseTotal.Equal(dec("45")))
}

func TestCalculateOccurrenceCostIdentity(t *testing.T) {
	t.Parallel()

	rates := domain.RateSchedule{
		BaseRate:             dec("37.50"),
		AdditionalAnimalRate: dec("12.25"),
		AppliesAfter:         1,
		HolidayRate:          dec("10"),
		UnitOfTime:           domain.Unit30Min,
		AdditionalRates: []domain.AdditionalRate{
			{Title: "Grooming", Amount: dec("25.00")},
			{Title: "Medication", Amount: dec("7.75")},
		},
	}

	cost := CalculateOccurrence(
		time.Date(2024, 7, 4, 9, 0, 0, 0, time.UTC),
		time.Date(2024, 7, 4, 10, 45, 0, 0, time.UTC),
		rates, 4,
	)

	sum := cost.BaseTotal.
		Add(cost.AdditionalAnimalTotal).
		Add(cost.HolidayTotal).
		Add(cost.AdditionalRatesTotal)
	require.True(t, cost.CalculatedCost.Equal(sum),
		"calculated_cost %s != component sum %s", cost.CalculatedCost, sum)
	require.True(t, cost.AdditionalRatesTotal.Equal(dec("32.75")))
}

func TestRecalculateOccurrenceOverwritesComputedFields(t *testing.T) {
	t.Parallel()

	occ := domain.Occurrence{
		OccurrenceID: "17",
		StartDate:    time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
		StartTime:    "18:00",
		EndTime:      "09:00",
		Rates: domain.RateSchedule{
			BaseRate:   dec("80"),
			UnitOfTime: domain.UnitPerVisit,
		},
		CalculatedCost: dec("999"),
	}

	require.NoError(t, RecalculateOccurrence(&occ, 1))
	require.True(t, occ.CalculatedCost.Equal(dec("80")))
	require.True(t, occ.Multiple.Equal(decimal.NewFromInt(1)))
}
