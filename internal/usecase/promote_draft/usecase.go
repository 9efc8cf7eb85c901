package promote_draft

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	bookingRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/booking"
	draftRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/draft"
	"github.com/vlkhvnn/PCM-PricingService/internal/pricing"
)

// UseCase use case промоушена черновика в подтверждённое бронирование.
// Сравнение с прежним подтверждённым состоянием решает, нужен ли цикл
// переподтверждения; синтетические draft_* идентификаторы occurrences
// заменяются долговечными из sequence
type UseCase struct {
	draftRepo   DraftRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:   draftRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет промоушен черновика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PromoteDraft: draft=%s user=%d", req.DraftID, req.UserID)

	if req.DraftID == "" {
		return nil, fmt.Errorf("%w: draft id is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	var resp *Response

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Загружаем черновик и проверяем, что его можно промоутить
		draft, err := uc.draftRepo.GetByID(txCtx, req.DraftID)
		if err != nil {
			if errors.Is(err, draftRepo.ErrDraftNotFound) {
				return ErrDraftNotFound
			}
			uc.logger.Error("PromoteDraft: failed to get draft=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
		}

		if !draft.IsOwnedBy(req.UserID) {
			uc.logger.Warn("PromoteDraft: access denied for user=%d to draft=%s", req.UserID, req.DraftID)
			return ErrAccessDenied
		}
		if !draft.IsActive() {
			uc.logger.Warn("PromoteDraft: draft=%s is %s, not promotable", req.DraftID, draft.Status)
			return ErrDraftNotPromotable
		}
		if req.Version > 0 && req.Version != draft.Version {
			uc.logger.Warn("PromoteDraft: version conflict on draft=%s: client=%d db=%d",
				req.DraftID, req.Version, draft.Version)
			return ErrVersionConflict
		}
		if len(draft.Occurrences) == 0 {
			uc.logger.Warn("PromoteDraft: draft=%s has no occurrences", req.DraftID)
			return ErrEmptyDraft
		}

		// 2. Прежнее активное бронирование пары: база для сравнения изменений
		prior, err := uc.bookingRepo.GetActiveByPair(txCtx, draft.ProfessionalID, draft.ClientID)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("PromoteDraft: failed to get prior booking: %v", err)
			return fmt.Errorf("%w: failed to get prior booking: %v", ErrInternal, err)
		}

		// 3. Нужно ли переподтверждение. HasChanges «падает» в сторону true:
		// отсутствие прежнего бронирования тоже означает подтверждение с нуля
		requiresApproval := pricing.HasChanges(prior, draft)

		// 4. Синтетические draft_* идентификаторы заменяются долговечными
		occurrences, err := uc.assignDurableIDs(txCtx, draft.Occurrences)
		if err != nil {
			return err
		}

		status := domain.BookingStatusConfirmed
		if requiresApproval {
			status = domain.BookingStatusPendingApproval
		}

		booking := &domain.Booking{
			ProfessionalID:      draft.ProfessionalID,
			ClientID:            draft.ClientID,
			Status:              status,
			ServiceID:           draft.ServiceID,
			ServiceName:         draft.ServiceName,
			Pets:                draft.Pets,
			Occurrences:         occurrences,
			CostSummary:         draft.CostSummary,
			PromotedFromDraftID: &draft.DraftID,
			RequiresApproval:    requiresApproval,
		}

		// 5. Прежнее бронирование уступает место новому
		var supersededID *int64
		if prior != nil && prior.CanBeSuperseded() {
			if err := uc.bookingRepo.SetStatus(txCtx, prior.ID, domain.BookingStatusCancelled); err != nil {
				uc.logger.Error("PromoteDraft: failed to cancel prior booking=%d: %v", prior.ID, err)
				return fmt.Errorf("%w: failed to cancel prior booking: %v", ErrInternal, err)
			}
			supersededID = &prior.ID
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("PromoteDraft: failed to create booking from draft=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 6. Черновик уничтожается промоушеном
		if err := uc.draftRepo.SetStatus(txCtx, draft.DraftID, domain.DraftStatusPromoted); err != nil {
			uc.logger.Error("PromoteDraft: failed to mark draft=%s promoted: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to mark draft promoted: %v", ErrInternal, err)
		}

		resp = &Response{
			Booking:             created,
			SupersededBookingID: supersededID,
			RequiresApproval:    requiresApproval,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("PromoteDraft: draft=%s promoted to booking=%d status=%s",
		req.DraftID, resp.Booking.ID, resp.Booking.Status)

	return resp, nil
}

// assignDurableIDs заменяет синтетические draft_* идентификаторы occurrences
// долговечными из sequence; подтверждённые идентификаторы сохраняются
func (uc *UseCase) assignDurableIDs(ctx context.Context, occurrences []domain.Occurrence) ([]domain.Occurrence, error) {
	needed := 0
	for i := range occurrences {
		if occurrences[i].IsDraftOccurrence() {
			needed++
		}
	}

	out := make([]domain.Occurrence, len(occurrences))
	copy(out, occurrences)
	if needed == 0 {
		return out, nil
	}

	ids, err := uc.bookingRepo.NextOccurrenceIDs(ctx, needed)
	if err != nil {
		uc.logger.Error("PromoteDraft: failed to allocate occurrence ids: %v", err)
		return nil, fmt.Errorf("%w: failed to allocate occurrence ids: %v", ErrInternal, err)
	}

	next := 0
	for i := range out {
		if out[i].IsDraftOccurrence() {
			out[i].OccurrenceID = strconv.FormatInt(ids[next], 10)
			next++
		}
	}
	return out, nil
}
