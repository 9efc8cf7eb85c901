package reconcile

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// toggleKeySeparator разделитель в ключах карты переключателей услуг
const toggleKeySeparator = "_start-"

// MergeToggles пересобирает карту переключателей дополнительных услуг
// черновика после пересчёта occurrences.
//
// Для каждого названия услуги, встречающегося в сервисе или хотя бы в одном
// occurrence, в карту пишется запись с ключом "<title>_start-<suffix>".
// applies = true только если услуга присутствует в каждом occurrence
// (услуги сервиса представлены в карте всегда, даже если их не использует
// ни один occurrence; ad hoc услуги отдельных occurrences тоже попадают
// в карту, с applies=false, если они не универсальны).
//
// Критично: значения applies из prior восстанавливаются для всех ключей,
// переживших пересборку, - иначе выключенная пользователем услуга молча
// включилась бы обратно после правки даты.
func MergeToggles(
	prior map[string]domain.RateToggle,
	serviceRates []domain.AdditionalRate,
	occurrences []domain.Occurrence,
) map[string]domain.RateToggle {
	keyByTitle := make(map[string]string, len(prior))
	for key := range prior {
		if title, ok := TitleFromKey(key); ok {
			keyByTitle[title] = key
		}
	}

	// Названия в стабильном порядке: сначала услуги сервиса, затем ad hoc
	titles := make([]string, 0, len(serviceRates))
	seen := make(map[string]bool, len(serviceRates))
	for _, sr := range serviceRates {
		if !seen[sr.Title] {
			seen[sr.Title] = true
			titles = append(titles, sr.Title)
		}
	}
	for i := range occurrences {
		for _, ar := range occurrences[i].Rates.AdditionalRates {
			if !seen[ar.Title] {
				seen[ar.Title] = true
				titles = append(titles, ar.Title)
			}
		}
	}

	merged := make(map[string]domain.RateToggle, len(titles))
	for _, title := range titles {
		key, existedBefore := keyByTitle[title]
		if !existedBefore {
			key = newToggleKey(title)
		}

		toggle := domain.RateToggle{
			Applies: appearsInEveryOccurrence(title, occurrences),
		}

		if def, ok := findRateByTitle(serviceRates, title); ok {
			toggle.Amount = def.Amount
			toggle.Description = def.Description
		} else if def, ok := findOccurrenceRate(occurrences, title); ok {
			toggle.Amount = def.Amount
			toggle.Description = def.Description
		}

		// Восстанавливаем прежний выбор пользователя для выживших ключей
		if priorToggle, ok := prior[key]; ok {
			toggle.Applies = priorToggle.Applies
		}

		merged[key] = toggle
	}

	return merged
}

// TitleFromKey извлекает название услуги из ключа "<title>_start-<suffix>"
func TitleFromKey(key string) (string, bool) {
	idx := strings.LastIndex(key, toggleKeySeparator)
	if idx <= 0 {
		return "", false
	}
	return key[:idx], true
}

// newToggleKey генерирует новый ключ с коротким случайным суффиксом
func newToggleKey(title string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:6]
	return fmt.Sprintf("%s%s%s", title, toggleKeySeparator, suffix)
}

// appearsInEveryOccurrence проверяет, выбрана ли услуга в каждом occurrence
// (пустой список occurrences считается универсальным вхождением)
func appearsInEveryOccurrence(title string, occurrences []domain.Occurrence) bool {
	for i := range occurrences {
		if !occurrences[i].Rates.HasRateTitle(title) {
			return false
		}
	}
	return true
}

func findRateByTitle(rates []domain.AdditionalRate, title string) (domain.AdditionalRate, bool) {
	for _, r := range rates {
		if r.Title == title {
			return r, true
		}
	}
	return domain.AdditionalRate{}, false
}

func findOccurrenceRate(occurrences []domain.Occurrence, title string) (domain.AdditionalRate, bool) {
	for i := range occurrences {
		if r, ok := findRateByTitle(occurrences[i].Rates.AdditionalRates, title); ok {
			return r, true
		}
	}
	return domain.AdditionalRate{}, false
}
