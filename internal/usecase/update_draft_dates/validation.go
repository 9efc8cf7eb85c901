package update_draft_dates

import (
	"fmt"
	"time"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/internal/reconcile"
	"github.com/vlkhvnn/PCM-PricingService/pkg/types"
)

// validateRequest валидирует запрос целиком
// Отсутствующий список дат - ошибка запроса; пустой список допустим
// (означает снятие всех occurrences)
func validateRequest(req *Request) error {
	if req.DraftID == "" {
		return fmt.Errorf("%w: draftID is required", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Dates == nil {
		return fmt.Errorf("%w: dates list is required", ErrInvalidInput)
	}

	if len(req.Dates) > domain.MaxOccurrencesPerDraft {
		return fmt.Errorf("%w: too many dates, max %d", ErrInvalidInput, domain.MaxOccurrencesPerDraft)
	}

	return nil
}

// parseDateRows парсит строки правок в типизированные строки.
//
// Строка без даты или времени пропускается с предупреждением - частичный
// успех предпочтительнее отказа всей правки. Неразбираемая дата или
// отрицательная длительность - ошибка всего запроса: это не пропуск
// поля, а мусор на входе.
func parseDateRows(rows []DateRow) ([]reconcile.IncomingDate, []string, error) {
	parsed := make([]reconcile.IncomingDate, 0, len(rows))
	warnings := make([]string, 0)

	for i, row := range rows {
		if row.Date == "" || row.StartTime == "" || row.EndTime == "" {
			warnings = append(warnings, fmt.Sprintf("row %d skipped: date, start_time and end_time are required", i))
			continue
		}

		date, err := time.Parse(domain.DateFormat, row.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: unparsable date %q", ErrInvalidInput, i, row.Date)
		}

		startTime, err := types.NewTimeStringFromString(row.StartTime)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: unparsable start_time %q", ErrInvalidInput, i, row.StartTime)
		}

		endTime, err := types.NewTimeStringFromString(row.EndTime)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: unparsable end_time %q", ErrInvalidInput, i, row.EndTime)
		}

		incoming := reconcile.IncomingDate{
			Date:      date,
			StartTime: startTime,
			EndTime:   endTime,
		}

		if row.EndDate != "" {
			endDate, err := time.Parse(domain.DateFormat, row.EndDate)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: row %d: unparsable end_date %q", ErrInvalidInput, i, row.EndDate)
			}
			incoming.EndDate = &endDate
		}

		if err := validateDuration(incoming); err != nil {
			return nil, nil, fmt.Errorf("%w: row %d: %v", ErrInvalidInput, i, err)
		}

		parsed = append(parsed, incoming)
	}

	return parsed, warnings, nil
}

// validateDuration отклоняет окна с отрицательной длительностью
func validateDuration(in reconcile.IncomingDate) error {
	start, err := in.StartTime.OnDate(in.Date)
	if err != nil {
		return err
	}
	end, err := in.EndTime.OnDate(in.ResolvedEndDate())
	if err != nil {
		return err
	}
	if !end.After(start) {
		return fmt.Errorf("negative or zero duration: %s %s - %s %s",
			in.Date.Format(domain.DateFormat), in.StartTime, in.ResolvedEndDate().Format(domain.DateFormat), in.EndTime)
	}
	return nil
}
