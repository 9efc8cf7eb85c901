package reconcile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

func occurrenceWithRates(id string, titles ...string) domain.Occurrence {
	rates := make([]domain.AdditionalRate, 0, len(titles))
	for _, title := range titles {
		rates = append(rates, domain.AdditionalRate{Title: title, Amount: dec("10")})
	}
	return domain.Occurrence{
		OccurrenceID: id,
		Rates:        domain.RateSchedule{AdditionalRates: rates},
	}
}

func TestMergeTogglesServiceRatesAlwaysPresent(t *testing.T) {
	t.Parallel()

	serviceRates := []domain.AdditionalRate{
		{Title: "Grooming", Description: "Bath and brush", Amount: dec("25")},
		{Title: "Medication", Amount: dec("10")},
	}

	// Ни один occurrence не использует услуги сервиса
	merged := MergeToggles(nil, serviceRates, []domain.Occurrence{
		occurrenceWithRates("1"),
	})

	require.Len(t, merged, 2)
	for key, toggle := range merged {
		title, ok := TitleFromKey(key)
		require.True(t, ok, "key %q must carry a suffix", key)
		require.Contains(t, []string{"Grooming", "Medication"}, title)
		require.False(t, toggle.Applies, "unused service rate must not apply")
	}
}

func TestMergeTogglesAppliesOnlyWhenUniversal(t *testing.T) {
	t.Parallel()

	serviceRates := []domain.AdditionalRate{{Title: "Grooming", Amount: dec("25")}}
	occurrences := []domain.Occurrence{
		occurrenceWithRates("1", "Grooming", "Walking"),
		occurrenceWithRates("2", "Grooming"),
	}

	merged := MergeToggles(nil, serviceRates, occurrences)
	require.Len(t, merged, 2)

	byTitle := make(map[string]domain.RateToggle, len(merged))
	for key, toggle := range merged {
		title, _ := TitleFromKey(key)
		byTitle[title] = toggle
	}

	require.True(t, byTitle["Grooming"].Applies, "rate on every occurrence applies")
	// Ad hoc услуга только на части occurrences: в карте есть, но не применяется
	require.False(t, byTitle["Walking"].Applies)
}

func TestMergeTogglesPreservesPriorApplies(t *testing.T) {
	t.Parallel()

	serviceRates := []domain.AdditionalRate{{Title: "Grooming", Description: "Bath", Amount: dec("25")}}
	prior := map[string]domain.RateToggle{
		"Grooming_start-ab12ef": {Applies: false, Amount: dec("25"), Description: "Bath"},
	}

	// Grooming на каждом occurrence, но пользователь ранее выключил услугу
	merged := MergeToggles(prior, serviceRates, []domain.Occurrence{
		occurrenceWithRates("1", "Grooming"),
	})

	toggle, ok := merged["Grooming_start-ab12ef"]
	require.True(t, ok, "surviving title must keep its prior key")
	require.False(t, toggle.Applies, "user's applies=false must survive regeneration")
}

func TestMergeTogglesEmptyOccurrencesDefaultsToApplies(t *testing.T) {
	t.Parallel()

	serviceRates := []domain.AdditionalRate{{Title: "Grooming", Amount: dec("25")}}

	merged := MergeToggles(nil, serviceRates, nil)

	require.Len(t, merged, 1)
	for _, toggle := range merged {
		require.True(t, toggle.Applies, "with no occurrences service rates default to applies")
	}
}

func TestMergeTogglesKeyFormat(t *testing.T) {
	t.Parallel()

	merged := MergeToggles(nil, []domain.AdditionalRate{{Title: "Late pickup", Amount: dec("5")}}, nil)

	require.Len(t, merged, 1)
	for key := range merged {
		require.True(t, strings.HasPrefix(key, "Late pickup_start-"))
		suffix := strings.TrimPrefix(key, "Late pickup_start-")
		require.Len(t, suffix, 6)
	}
}

func TestTitleFromKey(t *testing.T) {
	t.Parallel()

	title, ok := TitleFromKey("Grooming_start-ab12ef")
	require.True(t, ok)
	require.Equal(t, "Grooming", title)

	// Название с самим разделителем внутри: берётся последнее вхождение
	title, ok = TitleFromKey("Walk_start-evening_start-012abc")
	require.True(t, ok)
	require.Equal(t, "Walk_start-evening", title)

	_, ok = TitleFromKey("no-suffix")
	require.False(t, ok)
}
