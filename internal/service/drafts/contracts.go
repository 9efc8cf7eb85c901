package drafts

import (
	"context"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, draftID string) (*domain.Draft, error)
	GetActiveByPair(ctx context.Context, professionalID, clientID int64) (*domain.Draft, error)
	SetStatus(ctx context.Context, draftID string, status domain.DraftStatus) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
