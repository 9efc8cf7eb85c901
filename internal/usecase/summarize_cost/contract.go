package summarize_cost

import (
	"context"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, draftID string) (*domain.Draft, error)
}

// CostingService интерфейс сервиса расчёта сводки стоимости
type CostingService interface {
	SummarizeBooking(ctx context.Context, occurrences []domain.Occurrence, clientID *int64, professionalID int64) (*domain.CostSummary, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
