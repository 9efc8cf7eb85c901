package pricing

import "github.com/vlkhvnn/PCM-PricingService/internal/domain"

// ResolveRates строит эффективное расписание ставок для пересчёта occurrence.
// Переопределения из черновика (если профессионал менял ставки или единицу
// времени до пересчёта) имеют приоритет над базовым определением услуги;
// отсутствующие значения берутся из услуги как есть.
//
// Ошибочных состояний нет: незаполненные ставки услуги остаются числовым нулём.
func ResolveRates(service domain.RateSchedule, overrides domain.RateOverrides) domain.RateSchedule {
	resolved := domain.RateSchedule{
		BaseRate:             service.BaseRate,
		AdditionalAnimalRate: service.AdditionalAnimalRate,
		AppliesAfter:         service.AppliesAfter,
		HolidayRate:          service.HolidayRate,
		UnitOfTime:           service.UnitOfTime,
		AdditionalRates:      cloneAdditionalRates(service.AdditionalRates),
	}

	if overrides.BaseRate != nil {
		resolved.BaseRate = *overrides.BaseRate
	}
	if overrides.AdditionalAnimalRate != nil {
		resolved.AdditionalAnimalRate = *overrides.AdditionalAnimalRate
	}
	if overrides.AppliesAfter != nil {
		resolved.AppliesAfter = *overrides.AppliesAfter
	}
	if overrides.HolidayRate != nil {
		resolved.HolidayRate = *overrides.HolidayRate
	}
	if overrides.UnitOfTime != nil && overrides.UnitOfTime.IsValid() {
		resolved.UnitOfTime = *overrides.UnitOfTime
	}

	return resolved
}

func cloneAdditionalRates(rates []domain.AdditionalRate) []domain.AdditionalRate {
	if rates == nil {
		return nil
	}
	cloned := make([]domain.AdditionalRate, len(rates))
	copy(cloned, rates)
	return cloned
}
