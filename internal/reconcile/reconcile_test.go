package reconcile

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/pkg/types"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func testSchedule() domain.RateSchedule {
	return domain.RateSchedule{
		BaseRate:             dec("100"),
		AdditionalAnimalRate: dec("20"),
		AppliesAfter:         1,
		HolidayRate:          dec("50"),
		UnitOfTime:           domain.UnitPerDay,
		AdditionalRates: []domain.AdditionalRate{
			{Title: "Grooming", Description: "Bath and brush", Amount: dec("25")},
		},
	}
}

func TestReconcileCreatesNewOccurrences(t *testing.T) {
	t.Parallel()

	incoming := []IncomingDate{
		{Date: date(2024, 7, 1), StartTime: "18:00", EndTime: "09:00"},
		{Date: date(2024, 7, 3), StartTime: "18:00", EndTime: "09:00"},
	}

	occurrences, warnings := Reconcile(nil, incoming, testSchedule(), 2, fixedNow)

	require.Empty(t, warnings)
	require.Len(t, occurrences, 2)
	for _, occ := range occurrences {
		require.True(t, occ.IsDraftOccurrence(), "new occurrence must carry a draft id: %s", occ.OccurrenceID)
		// Ночёвка: конец времени не позже начала, дата конца - следующий день
		require.True(t, occ.EndDate.After(occ.StartDate))
		// Новые occurrences получают полный набор услуг сервиса
		require.True(t, occ.Rates.HasRateTitle("Grooming"))
		require.False(t, occ.CalculatedCost.IsZero())
	}
}

func TestReconcileIdempotence(t *testing.T) {
	t.Parallel()

	incoming := []IncomingDate{
		{Date: date(2024, 7, 1), StartTime: "18:00", EndTime: "09:00"},
		{Date: date(2024, 7, 3), StartTime: "10:00", EndTime: "12:00"},
	}
	schedule := testSchedule()

	first, _ := Reconcile(nil, incoming, schedule, 2, fixedNow)

	// Повторная сверка того же списка: точное совпадение, перенос как есть
	second, warnings := Reconcile(first, incoming, schedule, 2, fixedNow)

	require.Empty(t, warnings)
	require.Equal(t, first, second, "exact-match reconcile must be idempotent")
}

func TestReconcileStartDateMatchPreservesOwnRates(t *testing.T) {
	t.Parallel()

	schedule := testSchedule()
	existing, _ := Reconcile(nil, []IncomingDate{
		{Date: date(2024, 7, 1), StartTime: "18:00", EndTime: "09:00"},
	}, schedule, 2, fixedNow)
	require.Len(t, existing, 1)

	// Пользователь снял Grooming с occurrence
	existing[0].Rates.AdditionalRates = nil

	// Правим только время той же даты
	updated, warnings := Reconcile(existing, []IncomingDate{
		{Date: date(2024, 7, 1), StartTime: "19:00", EndTime: "10:00"},
	}, schedule, 2, fixedNow)

	require.Empty(t, warnings)
	require.Len(t, updated, 1)
	require.Equal(t, existing[0].OccurrenceID, updated[0].OccurrenceID)
	require.Equal(t, types.TimeString("19:00"), updated[0].StartTime)
	// Снятая услуга не возвращается при пересчёте
	require.False(t, updated[0].Rates.HasRateTitle("Grooming"))
}

func TestReconcilePositionalMatchWithinOneDay(t *testing.T) {
	t.Parallel()

	schedule := testSchedule()
	existing, _ := Reconcile(nil, []IncomingDate{
		{Date: date(2024, 7, 1), StartTime: "18:00", EndTime: "09:00"},
	}, schedule, 2, fixedNow)

	// Сдвиг на один день: позиционное совпадение, id сохраняется
	updated, _ := Reconcile(existing, []IncomingDate{
		{Date: date(2024, 7, 2), StartTime: "18:00", EndTime: "09:00"},
	}, schedule, 2, fixedNow)

	require.Len(t, updated, 1)
	require.Equal(t, existing[0].OccurrenceID, updated[0].OccurrenceID)
	require.True(t, domain.SameDay(updated[0].StartDate, date(2024, 7, 2)))
}

func TestReconcilePositionalGuardBeyondOneDay(t *testing.T) {
	t.Parallel()

	schedule := testSchedule()
	existing, _ := Reconcile(nil, []IncomingDate{
		{Date: date(2024, 7, 1), StartTime: "18:00", EndTime: "09:00"},
	}, schedule, 2, fixedNow)

	// Сдвиг на четыре дня: позиционное совпадение запрещено, создаётся новый
	updated, _ := Reconcile(existing, []IncomingDate{
		{Date: date(2024, 7, 5), StartTime: "18:00", EndTime: "09:00"},
	}, schedule, 2, fixedNow)

	require.Len(t, updated, 1)
	require.NotEqual(t, existing[0].OccurrenceID, updated[0].OccurrenceID)
	require.True(t, updated[0].IsDraftOccurrence())
}

func TestReconcileExplicitEndDate(t *testing.T) {
	t.Parallel()

	end := date(2024, 7, 5)
	occurrences, _ := Reconcile(nil, []IncomingDate{
		{Date: date(2024, 7, 1), EndDate: &end, StartTime: "08:00", EndTime: "08:00"},
	}, testSchedule(), 1, fixedNow)

	require.Len(t, occurrences, 1)
	require.True(t, domain.SameDay(occurrences[0].EndDate, end))
	// 96 часов по суточной ставке
	require.True(t, occurrences[0].Multiple.Equal(dec("4")))
}

func TestReconcileSameDayWindow(t *testing.T) {
	t.Parallel()

	occurrences, _ := Reconcile(nil, []IncomingDate{
		{Date: date(2024, 7, 1), StartTime: "09:00", EndTime: "17:00"},
	}, testSchedule(), 1, fixedNow)

	require.Len(t, occurrences, 1)
	require.True(t, domain.SameDay(occurrences[0].EndDate, date(2024, 7, 1)),
		"end after start on the same day must not roll over")
}

func TestReconcileNewOccurrencesDoNotShareRateSlices(t *testing.T) {
	t.Parallel()

	occurrences, _ := Reconcile(nil, []IncomingDate{
		{Date: date(2024, 7, 1), StartTime: "18:00", EndTime: "09:00"},
		{Date: date(2024, 7, 3), StartTime: "18:00", EndTime: "09:00"},
	}, testSchedule(), 1, fixedNow)

	require.Len(t, occurrences, 2)
	occurrences[0].Rates.AdditionalRates[0].Title = "Mutated"
	require.Equal(t, "Grooming", occurrences[1].Rates.AdditionalRates[0].Title)
}
