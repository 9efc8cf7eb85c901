package summarize_cost

import (
	"context"
	"errors"
	"fmt"

	draftRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/draft"
)

// UseCase use case пересчёта сводки стоимости черновика «на чтение».
// Комиссии и налоги запрашиваются заново, поэтому сводка может отличаться
// от сохранённой в черновике, если тариф пары успел измениться
type UseCase struct {
	draftRepo DraftRepository
	costing   CostingService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(draftRepo DraftRepository, costing CostingService, logger Logger) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		costing:   costing,
		logger:    logger,
	}
}

// Execute выполняет пересчёт сводки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.DraftID == "" {
		return nil, fmt.Errorf("%w: draft id is required", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	draft, err := uc.draftRepo.GetByID(ctx, req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("SummarizeCost: draft=%s not found", req.DraftID)
			return nil, ErrDraftNotFound
		}
		uc.logger.Error("SummarizeCost: failed to get draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if !draft.IsOwnedBy(req.UserID) {
		uc.logger.Warn("SummarizeCost: access denied for user=%d to draft=%s", req.UserID, req.DraftID)
		return nil, ErrAccessDenied
	}

	summary, err := uc.costing.SummarizeBooking(ctx, draft.Occurrences, &draft.ClientID, draft.ProfessionalID)
	if err != nil {
		uc.logger.Error("SummarizeCost: cost summary failed for draft=%s: %v", req.DraftID, err)
		return nil, fmt.Errorf("%w: failed to summarize cost: %v", ErrInternal, err)
	}

	return &Response{
		DraftID: draft.DraftID,
		Summary: summary,
	}, nil
}
