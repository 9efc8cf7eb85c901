package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	bookingRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/booking"
	draftRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/draft"
	"github.com/vlkhvnn/PCM-PricingService/internal/pricing"
)

// Service сервис для чтения подтверждённых бронирований и сравнения
// их с черновиками
type Service struct {
	bookingRepo BookingRepository
	draftRepo   DraftRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, draftRepo DraftRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		draftRepo:   draftRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Доступ есть только у сторон бронирования - клиента и профессионала
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.ProfessionalID != userID && booking.ClientID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// HasChanges сравнивает черновик с подтверждённым бронированием и сообщает,
// потребует ли промоушен черновика цикла переподтверждения.
// Сравнение «падает» в сторону true: любая ошибка разбора данных трактуется
// как наличие изменений
func (s *Service) HasChanges(ctx context.Context, bookingID int64, draftID string, userID int64) (bool, error) {
	booking, err := s.GetByID(ctx, bookingID, userID)
	if err != nil {
		return false, err
	}

	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("HasChanges: draft=%s not found", draftID)
			return false, ErrDraftNotFound
		}
		s.logger.Error("HasChanges: repository error for draft=%s: %v", draftID, err)
		return false, fmt.Errorf("%w: HasChanges - repository error: %v", ErrInternal, err)
	}

	if !draft.IsOwnedBy(userID) {
		s.logger.Warn("HasChanges: access denied for user=%d to draft=%s", userID, draftID)
		return false, ErrAccessDenied
	}
	if draft.ProfessionalID != booking.ProfessionalID || draft.ClientID != booking.ClientID {
		s.logger.Warn("HasChanges: draft=%s and booking=%d belong to different pairs", draftID, bookingID)
		return false, ErrPairMismatch
	}

	changed := pricing.HasChanges(booking, draft)
	s.logger.Info("HasChanges: booking=%d draft=%s changed=%t", bookingID, draftID, changed)
	return changed, nil
}
