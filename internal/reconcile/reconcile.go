package reconcile

import (
	"fmt"
	"time"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/internal/pricing"
)

// Reconcile сливает входящий список дат с текущими occurrences черновика.
//
// Каждая входящая дата разрешается в сохранённый (и, возможно, пересчитанный)
// существующий occurrence либо в свежесозданный, по убыванию приоритета:
//
//  1. Точное совпадение (start_date, end_date, start_time, end_time) -
//     occurrence переносится без изменений: без пересчёта, пользовательские
//     настройки полностью сохраняются.
//
//  2. Совпадение по дате начала - occurrence переносится; если время
//     изменилось, базовые/животные/праздничные ставки пересчитываются по
//     свежему расписанию, но выбранный пользователем список дополнительных
//     услуг occurrence сохраняется дословно: пересчёт не должен подмешивать
//     в него ставки из резолвера.
//
//  3. Позиционное совпадение - occurrence с тем же индексом переиспользуется
//     как база, только если разница дат не превышает одного дня (защита от
//     связывания несвязанных дат и "загрязнения" их устаревшими ставками).
//     Иначе создаётся новый occurrence с id draft_<millis>_<index> и полным
//     набором дополнительных услуг сервиса: новые occurrences подключают всё,
//     что предлагает услуга, - в отличие от правок существующих, которые
//     никогда молча не возвращают снятые пользователем услуги.
//
// Возвращает новый список occurrences и предупреждения о строках,
// пересчитать которые не удалось (частичный успех - норма).
func Reconcile(
	existing []domain.Occurrence,
	incoming []IncomingDate,
	schedule domain.RateSchedule,
	numPets int,
	now func() time.Time,
) ([]domain.Occurrence, []string) {
	used := make([]bool, len(existing))
	result := make([]domain.Occurrence, 0, len(incoming))
	warnings := make([]string, 0)

	for i, in := range incoming {
		endDate := in.ResolvedEndDate()

		// 1. Точное совпадение: переносим как есть, без пересчёта
		if idx := findExact(existing, used, in, endDate); idx >= 0 {
			used[idx] = true
			result = append(result, cloneOccurrence(existing[idx]))
			continue
		}

		// 2. Совпадение по дате начала
		if idx := findByStartDate(existing, used, in.Date); idx >= 0 {
			used[idx] = true
			occ := cloneOccurrence(existing[idx])

			timingChanged := occ.StartTime != in.StartTime ||
				occ.EndTime != in.EndTime ||
				!domain.SameDay(occ.EndDate, endDate)

			occ.EndDate = endDate
			occ.StartTime = in.StartTime
			occ.EndTime = in.EndTime

			if timingChanged {
				refreshSchedulePreservingSelection(&occ, schedule)
				if err := pricing.RecalculateOccurrence(&occ, numPets); err != nil {
					warnings = append(warnings, fmt.Sprintf("occurrence %s: %v", occ.OccurrenceID, err))
				}
			}

			result = append(result, occ)
			continue
		}

		// 3. Позиционное совпадение: только в пределах одного дня
		if i < len(existing) && !used[i] &&
			domain.DaysApart(existing[i].StartDate, in.Date) <= domain.PositionalMatchMaxDays {
			used[i] = true
			occ := cloneOccurrence(existing[i])

			occ.StartDate = in.Date
			occ.EndDate = endDate
			occ.StartTime = in.StartTime
			occ.EndTime = in.EndTime

			refreshSchedulePreservingSelection(&occ, schedule)
			if err := pricing.RecalculateOccurrence(&occ, numPets); err != nil {
				warnings = append(warnings, fmt.Sprintf("occurrence %s: %v", occ.OccurrenceID, err))
			}

			result = append(result, occ)
			continue
		}

		// Новый occurrence: полный набор дополнительных услуг сервиса
		occ := domain.Occurrence{
			OccurrenceID: fmt.Sprintf("%s%d_%d", domain.DraftOccurrenceIDPrefix, now().UnixMilli(), i),
			StartDate:    in.Date,
			EndDate:      endDate,
			StartTime:    in.StartTime,
			EndTime:      in.EndTime,
			Rates:        cloneSchedule(schedule),
		}
		if err := pricing.RecalculateOccurrence(&occ, numPets); err != nil {
			warnings = append(warnings, fmt.Sprintf("occurrence %s: %v", occ.OccurrenceID, err))
		}

		result = append(result, occ)
	}

	return result, warnings
}

// findExact ищет неиспользованный occurrence с полностью совпадающим окном
func findExact(existing []domain.Occurrence, used []bool, in IncomingDate, endDate time.Time) int {
	for i := range existing {
		if used[i] {
			continue
		}
		if existing[i].SameTiming(in.Date, endDate, in.StartTime, in.EndTime) {
			return i
		}
	}
	return -1
}

// findByStartDate ищет неиспользованный occurrence с той же датой начала
func findByStartDate(existing []domain.Occurrence, used []bool, date time.Time) int {
	for i := range existing {
		if used[i] {
			continue
		}
		if domain.SameDay(existing[i].StartDate, date) {
			return i
		}
	}
	return -1
}

// refreshSchedulePreservingSelection обновляет ставки occurrence из свежего
// расписания, сохраняя его собственный список дополнительных услуг дословно
func refreshSchedulePreservingSelection(occ *domain.Occurrence, schedule domain.RateSchedule) {
	preserved := occ.Rates.AdditionalRates
	occ.Rates = schedule
	occ.Rates.AdditionalRates = preserved
}

// cloneSchedule возвращает копию расписания с собственным списком услуг
func cloneSchedule(schedule domain.RateSchedule) domain.RateSchedule {
	cloned := schedule
	if schedule.AdditionalRates != nil {
		cloned.AdditionalRates = make([]domain.AdditionalRate, len(schedule.AdditionalRates))
		copy(cloned.AdditionalRates, schedule.AdditionalRates)
	}
	return cloned
}

// cloneOccurrence возвращает копию occurrence с собственным списком
// дополнительных услуг (ставки-снимки не разделяются между копиями)
func cloneOccurrence(occ domain.Occurrence) domain.Occurrence {
	cloned := occ
	if occ.Rates.AdditionalRates != nil {
		cloned.Rates.AdditionalRates = make([]domain.AdditionalRate, len(occ.Rates.AdditionalRates))
		copy(cloned.Rates.AdditionalRates, occ.Rates.AdditionalRates)
	}
	return cloned
}
