package create_draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	proClient "github.com/vlkhvnn/PCM-PricingService/internal/integrations/proservice"
	"github.com/vlkhvnn/PCM-PricingService/internal/reconcile"
)

// UseCase use case создания черновика бронирования.
// Для пары (профессионал, клиент) может существовать максимум один активный
// черновик - прежние активные черновики пары удаляются в той же транзакции
type UseCase struct {
	draftRepo DraftRepository
	proClient ProServiceClient
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	proClient ProServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo: draftRepo,
		proClient: proClient,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет создание черновика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDraft: pro=%d client=%d service=%d pets=%d",
		req.ProfessionalID, req.ClientID, req.ServiceID, len(req.Pets))

	// 1. Валидация запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateDraft: validation failed: %v", err)
		return nil, err
	}

	// 2. Определение услуги: название и набор дополнительных услуг
	// снимаются в черновик на момент создания
	service, err := uc.proClient.GetService(ctx, req.ProfessionalID, req.ServiceID)
	if err != nil {
		if errors.Is(err, proClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateDraft: service=%d not found for pro=%d", req.ServiceID, req.ProfessionalID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateDraft: failed to get service=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if service.ProfessionalID != req.ProfessionalID {
		uc.logger.Warn("CreateDraft: service=%d belongs to pro=%d, not pro=%d",
			req.ServiceID, service.ProfessionalID, req.ProfessionalID)
		return nil, ErrServiceMismatch
	}

	pets := make([]domain.Pet, 0, len(req.Pets))
	for _, p := range req.Pets {
		pets = append(pets, domain.Pet{
			PetID:   p.PetID,
			Name:    p.Name,
			Species: p.Species,
			Breed:   p.Breed,
		})
	}

	schedule := service.ToRateSchedule()

	draft := &domain.Draft{
		DraftID:        uuid.NewString(),
		ProfessionalID: req.ProfessionalID,
		ClientID:       req.ClientID,
		Status:         domain.DraftStatusInProgress,
		ServiceID:      req.ServiceID,
		ServiceName:    service.Name,
		// Пустой список occurrences: все услуги сервиса включены по умолчанию
		AdditionalRateToggles: reconcile.MergeToggles(nil, schedule.AdditionalRates, nil),
		Pets:                  pets,
		Occurrences:           []domain.Occurrence{},
	}

	var replaced int64

	// 3. Замена прежних черновиков и создание нового - атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		replaced, err = uc.draftRepo.DeleteActiveByPair(txCtx, req.ProfessionalID, req.ClientID)
		if err != nil {
			uc.logger.Error("CreateDraft: failed to delete prior drafts for pro=%d client=%d: %v",
				req.ProfessionalID, req.ClientID, err)
			return fmt.Errorf("%w: failed to delete prior drafts: %v", ErrInternal, err)
		}

		created, err := uc.draftRepo.Create(txCtx, draft)
		if err != nil {
			uc.logger.Error("CreateDraft: failed to create draft: %v", err)
			return fmt.Errorf("%w: failed to create draft: %v", ErrInternal, err)
		}
		draft = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	if replaced > 0 {
		uc.logger.Info("CreateDraft: replaced %d prior draft(s) for pro=%d client=%d",
			replaced, req.ProfessionalID, req.ClientID)
	}
	uc.logger.Info("CreateDraft: created draft=%s", draft.DraftID)

	return &Response{
		Draft:          draft,
		ReplacedDrafts: replaced,
	}, nil
}
