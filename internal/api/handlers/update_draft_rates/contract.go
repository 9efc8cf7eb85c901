package update_draft_rates

import (
	"context"

	updateRates "github.com/vlkhvnn/PCM-PricingService/internal/usecase/update_draft_rates"
)

type UpdateDraftRatesUseCase interface {
	Execute(ctx context.Context, req *updateRates.Request) (*updateRates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
