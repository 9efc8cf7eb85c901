package drafts

import (
	"context"
	"errors"
	"fmt"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	draftRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/draft"
)

// Service сервис для чтения и отбрасывания черновиков.
// Правки черновиков идут через отдельные use cases, здесь только операции,
// не требующие пересчёта стоимости
type Service struct {
	draftRepo DraftRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(draftRepo DraftRepository, logger Logger) *Service {
	return &Service{
		draftRepo: draftRepo,
		logger:    logger,
	}
}

// GetByID получает черновик по ID
// Доступ есть только у сторон черновика - клиента и профессионала
func (s *Service) GetByID(ctx context.Context, draftID string, userID int64) (*domain.Draft, error) {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("GetByID: draft=%s not found", draftID)
			return nil, ErrDraftNotFound
		}
		s.logger.Error("GetByID: repository error for draft=%s: %v", draftID, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !draft.IsOwnedBy(userID) {
		s.logger.Warn("GetByID: access denied for user=%d to draft=%s", userID, draftID)
		return nil, ErrAccessDenied
	}

	return draft, nil
}

// Discard отбрасывает активный черновик
// Отброшенный черновик сохраняется в истории, но больше не редактируется
func (s *Service) Discard(ctx context.Context, draftID string, userID int64) error {
	draft, err := s.draftRepo.GetByID(ctx, draftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			s.logger.Warn("Discard: draft=%s not found", draftID)
			return ErrDraftNotFound
		}
		s.logger.Error("Discard: repository error for draft=%s: %v", draftID, err)
		return fmt.Errorf("%w: Discard - repository error: %v", ErrInternal, err)
	}

	if !draft.IsOwnedBy(userID) {
		s.logger.Warn("Discard: access denied for user=%d to draft=%s", userID, draftID)
		return ErrAccessDenied
	}
	if !draft.IsActive() {
		s.logger.Warn("Discard: draft=%s is %s, cannot discard", draftID, draft.Status)
		return ErrDraftNotActive
	}

	if err := s.draftRepo.SetStatus(ctx, draftID, domain.DraftStatusDiscarded); err != nil {
		s.logger.Error("Discard: failed to discard draft=%s: %v", draftID, err)
		return fmt.Errorf("%w: Discard - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Discard: draft=%s discarded by user=%d", draftID, userID)
	return nil
}
