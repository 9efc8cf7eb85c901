package update_draft_dates

import (
	"context"

	updateDates "github.com/vlkhvnn/PCM-PricingService/internal/usecase/update_draft_dates"
)

type UpdateDraftDatesUseCase interface {
	Execute(ctx context.Context, req *updateDates.Request) (*updateDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
