package create_draft

import (
	"context"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/internal/integrations/proservice"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	Create(ctx context.Context, d *domain.Draft) (*domain.Draft, error)
	DeleteActiveByPair(ctx context.Context, professionalID, clientID int64) (int64, error)
}

// ProServiceClient интерфейс клиента для ProService
type ProServiceClient interface {
	GetService(ctx context.Context, proID, serviceID int64) (*proservice.Service, error)
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
