package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/pkg/ptr"
)

func TestResolveRatesNoOverrides(t *testing.T) {
	t.Parallel()

	service := domain.RateSchedule{
		BaseRate:             dec("100"),
		AdditionalAnimalRate: dec("20"),
		AppliesAfter:         1,
		HolidayRate:          dec("50"),
		UnitOfTime:           domain.UnitPerDay,
		AdditionalRates:      []domain.AdditionalRate{{Title: "Grooming", Amount: dec("25")}},
	}

	resolved := ResolveRates(service, domain.RateOverrides{})

	require.True(t, resolved.BaseRate.Equal(service.BaseRate))
	require.Equal(t, service.UnitOfTime, resolved.UnitOfTime)
	require.Equal(t, service.AppliesAfter, resolved.AppliesAfter)
	require.Len(t, resolved.AdditionalRates, 1)
}

func TestResolveRatesOverridePrecedence(t *testing.T) {
	t.Parallel()

	service := domain.RateSchedule{
		BaseRate:             dec("100"),
		AdditionalAnimalRate: dec("20"),
		AppliesAfter:         1,
		HolidayRate:          dec("50"),
		UnitOfTime:           domain.UnitPerDay,
	}
	overrides := domain.RateOverrides{
		BaseRate:     ptr.Ptr(dec("120")),
		AppliesAfter: ptr.Ptr(2),
		UnitOfTime:   ptr.Ptr(domain.UnitPerVisit),
	}

	resolved := ResolveRates(service, overrides)

	require.True(t, resolved.BaseRate.Equal(dec("120")))
	require.Equal(t, 2, resolved.AppliesAfter)
	require.Equal(t, domain.UnitPerVisit, resolved.UnitOfTime)
	// Не переопределённые поля остаются из услуги
	require.True(t, resolved.AdditionalAnimalRate.Equal(dec("20")))
	require.True(t, resolved.HolidayRate.Equal(dec("50")))
}

func TestResolveRatesInvalidUnitOverrideIgnored(t *testing.T) {
	t.Parallel()

	service := domain.RateSchedule{
		BaseRate:   dec("100"),
		UnitOfTime: domain.Unit1Hour,
	}
	bogus := domain.UnitOfTime("FORTNIGHT")

	resolved := ResolveRates(service, domain.RateOverrides{UnitOfTime: &bogus})

	require.Equal(t, domain.Unit1Hour, resolved.UnitOfTime)
}

func TestResolveRatesClonesAdditionalRates(t *testing.T) {
	t.Parallel()

	service := domain.RateSchedule{
		BaseRate:        dec("100"),
		UnitOfTime:      domain.Unit1Hour,
		AdditionalRates: []domain.AdditionalRate{{Title: "Grooming", Amount: dec("25")}},
	}

	resolved := ResolveRates(service, domain.RateOverrides{})
	resolved.AdditionalRates[0].Title = "Mutated"

	require.Equal(t, "Grooming", service.AdditionalRates[0].Title)
}
