package pricing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

func comparableBookingAndDraft() (*domain.Booking, *domain.Draft) {
	rates := domain.RateSchedule{
		BaseRate:             dec("100"),
		AdditionalAnimalRate: dec("20"),
		AppliesAfter:         1,
		HolidayRate:          dec("50"),
		UnitOfTime:           domain.UnitPerDay,
	}
	pets := []domain.Pet{
		{PetID: 1, Name: "Rex", Species: "dog", Breed: "lab"},
		{PetID: 2, Name: "Tom", Species: "cat", Breed: "tabby"},
	}

	booking := &domain.Booking{
		ServiceName: "Overnight stay",
		Pets:        pets,
		Occurrences: []domain.Occurrence{{OccurrenceID: "41", Rates: rates}},
	}
	draft := &domain.Draft{
		ServiceName: "Overnight stay",
		Pets:        []domain.Pet{pets[1], pets[0]}, // порядок не важен
		Occurrences: []domain.Occurrence{{OccurrenceID: "41", Rates: rates}},
	}
	return booking, draft
}

func TestHasChangesIdentical(t *testing.T) {
	t.Parallel()

	booking, draft := comparableBookingAndDraft()
	require.False(t, HasChanges(booking, draft))
}

func TestHasChangesServiceName(t *testing.T) {
	t.Parallel()

	booking, draft := comparableBookingAndDraft()
	draft.ServiceName = "Drop-in visit"
	require.True(t, HasChanges(booking, draft))
}

func TestHasChangesPetSet(t *testing.T) {
	t.Parallel()

	booking, draft := comparableBookingAndDraft()
	draft.Pets = append(draft.Pets, domain.Pet{PetID: 3, Name: "Kiwi", Species: "bird"})
	require.True(t, HasChanges(booking, draft))
}

func TestHasChangesDuplicatePetsCollapse(t *testing.T) {
	t.Parallel()

	booking, draft := comparableBookingAndDraft()
	draft.Pets = append(draft.Pets, draft.Pets[0])
	require.False(t, HasChanges(booking, draft), "duplicate pet must collapse in set comparison")
}

func TestHasChangesRateDifference(t *testing.T) {
	t.Parallel()

	booking, draft := comparableBookingAndDraft()
	draft.Occurrences[0].Rates.BaseRate = dec("110")
	require.True(t, HasChanges(booking, draft))
}

func TestHasChangesOccurrenceCountDifference(t *testing.T) {
	t.Parallel()

	booking, draft := comparableBookingAndDraft()
	draft.Occurrences = append(draft.Occurrences, draft.Occurrences[0])
	require.True(t, HasChanges(booking, draft))
}

func TestHasChangesFailsOpen(t *testing.T) {
	t.Parallel()

	_, draft := comparableBookingAndDraft()
	require.True(t, HasChanges(nil, draft))

	booking, _ := comparableBookingAndDraft()
	require.True(t, HasChanges(booking, nil))
}
