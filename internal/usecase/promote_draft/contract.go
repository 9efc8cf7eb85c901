package promote_draft

import (
	"context"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, draftID string) (*domain.Draft, error)
	SetStatus(ctx context.Context, draftID string, status domain.DraftStatus) error
}

// BookingRepository интерфейс репозитория подтверждённых бронирований
type BookingRepository interface {
	NextOccurrenceIDs(ctx context.Context, n int) ([]int64, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByPair(ctx context.Context, professionalID, clientID int64) (*domain.Booking, error)
	SetStatus(ctx context.Context, id int64, status domain.BookingStatus) error
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
