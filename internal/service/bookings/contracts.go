package bookings

import (
	"context"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// BookingRepository интерфейс репозитория подтверждённых бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// DraftRepository интерфейс репозитория черновиков
type DraftRepository interface {
	GetByID(ctx context.Context, draftID string) (*domain.Draft, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
