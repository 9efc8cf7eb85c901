package create_draft

import (
	"context"

	createDraft "github.com/vlkhvnn/PCM-PricingService/internal/usecase/create_draft"
)

type CreateDraftUseCase interface {
	Execute(ctx context.Context, req *createDraft.Request) (*createDraft.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
