package update_draft_rates

import (
	"context"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/internal/integrations/proservice"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, draftID string) (*domain.Draft, error)
	UpdateWithVersion(ctx context.Context, d *domain.Draft) error
}

// ProServiceClient интерфейс клиента для ProService
type ProServiceClient interface {
	GetService(ctx context.Context, proID, serviceID int64) (*proservice.Service, error)
}

// CostingService интерфейс сервиса расчёта сводки стоимости
type CostingService interface {
	SummarizeBooking(ctx context.Context, occurrences []domain.Occurrence, clientID *int64, professionalID int64) (*domain.CostSummary, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
