package promote_draft

import (
	"context"

	promoteDraft "github.com/vlkhvnn/PCM-PricingService/internal/usecase/promote_draft"
)

type PromoteDraftUseCase interface {
	Execute(ctx context.Context, req *promoteDraft.Request) (*promoteDraft.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
