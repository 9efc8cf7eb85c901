package pricing

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// HasChanges сравнивает черновик с подтверждённым бронированием и решает,
// требуется ли цикл повторного подтверждения.
//
// Сравнивает по порядку: название услуги, множество животных (порядок не
// важен, дубликаты схлопываются), ставки каждого occurrence (базовая,
// за дополнительное животное, праздничная, applies_after). Возвращает true
// при первом же расхождении; false - только если все проверки прошли.
//
// Любая паника при сравнении трактуется как "изменения есть": безопаснее
// лишний раз запросить подтверждение, чем молча его пропустить.
func HasChanges(booking *domain.Booking, draft *domain.Draft) (changed bool) {
	defer func() {
		if r := recover(); r != nil {
			changed = true
		}
	}()

	if booking == nil || draft == nil {
		return true
	}

	if booking.ServiceName != draft.ServiceName {
		return true
	}

	if !petSetsEqual(booking.Pets, draft.Pets) {
		return true
	}

	if !occurrenceRatesEqual(booking.Occurrences, draft.Occurrences) {
		return true
	}

	return false
}

// petKey кортеж идентичности животного для сравнения множеств
type petKey struct {
	id      int64
	name    string
	species string
	breed   string
}

func petSetsEqual(a, b []domain.Pet) bool {
	return petSetEquals(petSet(a), petSet(b))
}

func petSet(pets []domain.Pet) map[petKey]bool {
	set := make(map[petKey]bool, len(pets))
	for _, p := range pets {
		set[petKey{id: p.PetID, name: p.Name, species: p.Species, breed: p.Breed}] = true
	}
	return set
}

func petSetEquals(a, b map[petKey]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}

func occurrenceRatesEqual(bookingOccs, draftOccs []domain.Occurrence) bool {
	if len(bookingOccs) != len(draftOccs) {
		return false
	}

	// Сопоставляем по occurrence_id, при отсутствии совпадения - по позиции
	byID := make(map[string]*domain.Occurrence, len(bookingOccs))
	for i := range bookingOccs {
		byID[bookingOccs[i].OccurrenceID] = &bookingOccs[i]
	}

	for i := range draftOccs {
		counterpart, ok := byID[draftOccs[i].OccurrenceID]
		if !ok {
			counterpart = &bookingOccs[i]
		}
		if !rateScheduleEqual(counterpart.Rates, draftOccs[i].Rates) {
			return false
		}
	}

	return true
}

func rateScheduleEqual(a, b domain.RateSchedule) bool {
	return a.BaseRate.Equal(b.BaseRate) &&
		a.AdditionalAnimalRate.Equal(b.AdditionalAnimalRate) &&
		a.HolidayRate.Equal(b.HolidayRate) &&
		a.AppliesAfter == b.AppliesAfter
}
