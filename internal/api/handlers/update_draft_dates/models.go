package update_draft_dates

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	updateDates "github.com/vlkhvnn/PCM-PricingService/internal/usecase/update_draft_dates"
)

// DateRowRequest одна строка правки дат
type DateRowRequest struct {
	Date      string `json:"date"`              // YYYY-MM-DD
	EndDate   string `json:"endDate,omitempty"` // YYYY-MM-DD, опционально
	StartTime string `json:"startTime"`         // HH:MM
	EndTime   string `json:"endTime"`           // HH:MM
}

// UpdateDraftDatesRequest запрос на пересчёт дат черновика
type UpdateDraftDatesRequest struct {
	Version int64            `json:"version,omitempty"`
	Dates   []DateRowRequest `json:"dates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Отсутствующий список дат сохраняется как nil: пустой список означает
// "снять все occurrences", отсутствующий - ошибку запроса
func (r *UpdateDraftDatesRequest) ToUseCaseRequest(draftID string, userID int64) *updateDates.Request {
	var rows []updateDates.DateRow
	if r.Dates != nil {
		rows = make([]updateDates.DateRow, 0, len(r.Dates))
		for _, d := range r.Dates {
			rows = append(rows, updateDates.DateRow{
				Date:      d.Date,
				EndDate:   d.EndDate,
				StartTime: d.StartTime,
				EndTime:   d.EndTime,
			})
		}
	}
	return &updateDates.Request{
		DraftID: draftID,
		UserID:  userID,
		Version: r.Version,
		Dates:   rows,
	}
}

// UpdateDraftDatesResponse ответ с пересчитанным черновиком
type UpdateDraftDatesResponse struct {
	Draft    *handlers.DraftJSON `json:"draft"`
	Warnings []string            `json:"warnings,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *updateDates.Response) *UpdateDraftDatesResponse {
	return &UpdateDraftDatesResponse{
		Draft:    handlers.FromDomainDraft(resp.Draft),
		Warnings: resp.Warnings,
	}
}
