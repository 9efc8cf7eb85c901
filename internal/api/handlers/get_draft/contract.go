package get_draft

import (
	"context"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

type DraftService interface {
	GetByID(ctx context.Context, draftID string, userID int64) (*domain.Draft, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
