package reconcile

import (
	"time"

	"github.com/vlkhvnn/PCM-PricingService/pkg/types"
)

// IncomingDate одна строка правки дат от клиента или профессионала.
// EndDate опционален: для однодневных окон конец совпадает с датой начала,
// для ночёвок (время конца не позже времени начала) конец переносится
// на следующий календарный день.
type IncomingDate struct {
	Date      time.Time
	EndDate   *time.Time
	StartTime types.TimeString
	EndTime   types.TimeString
}

// ResolvedEndDate возвращает фактическую дату окончания окна
func (d IncomingDate) ResolvedEndDate() time.Time {
	if d.EndDate != nil {
		return *d.EndDate
	}
	if !d.EndTime.IsAfter(d.StartTime) {
		return d.Date.AddDate(0, 0, 1)
	}
	return d.Date
}
