package update_draft_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	draftRepo "github.com/vlkhvnn/PCM-PricingService/internal/infra/storage/draft"
	proClient "github.com/vlkhvnn/PCM-PricingService/internal/integrations/proservice"
	"github.com/vlkhvnn/PCM-PricingService/internal/pricing"
	"github.com/vlkhvnn/PCM-PricingService/internal/reconcile"
)

// UseCase use case пересчёта дат черновика.
// Самая нагруженная операция сервиса: сверка входящих дат с текущими
// occurrences, пересборка карты переключателей услуг и пересчёт сводки
// стоимости - всё в одной serializable транзакции
type UseCase struct {
	draftRepo    DraftRepository
	proClient    ProServiceClient
	costing      CostingService
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	draftRepo DraftRepository,
	proClient ProServiceClient,
	costing CostingService,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		draftRepo:    draftRepo,
		proClient:    proClient,
		costing:      costing,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет пересчёт дат черновика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateDraftDates: draft=%s user=%d rows=%d", req.DraftID, req.UserID, len(req.Dates))

	// 1. Валидация запроса и парсинг строк правок
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateDraftDates: validation failed: %v", err)
		return nil, err
	}

	incoming, warnings, err := parseDateRows(req.Dates)
	if err != nil {
		uc.logger.Warn("UpdateDraftDates: date parsing failed: %v", err)
		return nil, err
	}
	for _, w := range warnings {
		uc.logger.Warn("UpdateDraftDates: draft=%s %s", req.DraftID, w)
	}

	var result *domain.Draft
	var recWarnings []string

	// 2. Пересчёт в serializable транзакции: черновик блокируется на чтении,
	// конкурентные правки той же пары не теряют изменений.
	// Предупреждения сверки собираются присваиванием, не накоплением:
	// ретрай транзакции после 40001 не должен их дублировать
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем черновик (FOR UPDATE внутри транзакции)
		draft, err := uc.draftRepo.GetByID(txCtx, req.DraftID)
		if err != nil {
			if errors.Is(err, draftRepo.ErrDraftNotFound) {
				uc.logger.Warn("UpdateDraftDates: draft=%s not found", req.DraftID)
				return ErrDraftNotFound
			}
			uc.logger.Error("UpdateDraftDates: failed to get draft=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
		}

		// 2.2. Проверки доступа и состояния
		if !draft.IsOwnedBy(req.UserID) {
			uc.logger.Warn("UpdateDraftDates: access denied for user=%d to draft=%s", req.UserID, req.DraftID)
			return ErrAccessDenied
		}
		if !draft.IsActive() {
			uc.logger.Warn("UpdateDraftDates: draft=%s is %s, not editable", req.DraftID, draft.Status)
			return ErrDraftNotEditable
		}
		if req.Version > 0 && req.Version != draft.Version {
			uc.logger.Warn("UpdateDraftDates: version conflict on draft=%s: client=%d db=%d",
				req.DraftID, req.Version, draft.Version)
			return ErrVersionConflict
		}

		// 2.3. Свежее определение услуги: ставки могли измениться между правками,
		// кэшировать расписание между запросами нельзя
		service, err := uc.proClient.GetService(txCtx, draft.ProfessionalID, draft.ServiceID)
		if err != nil {
			if errors.Is(err, proClient.ErrServiceNotFound) {
				uc.logger.Warn("UpdateDraftDates: service=%d not found for draft=%s", draft.ServiceID, req.DraftID)
				return ErrServiceNotFound
			}
			uc.logger.Error("UpdateDraftDates: failed to get service=%d: %v", draft.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		// 2.4. Эффективное расписание: переопределения черновика поверх услуги
		schedule := pricing.ResolveRates(service.ToRateSchedule(), draft.Overrides)

		// 2.5. Сверка входящих дат с текущими occurrences
		var occurrences []domain.Occurrence
		occurrences, recWarnings = reconcile.Reconcile(
			draft.Occurrences, incoming, schedule, draft.NumPets(), uc.timeProvider.Now)

		// 2.6. Пересборка карты переключателей: прежние значения applies
		// восстанавливаются внутри MergeToggles для выживших ключей
		draft.AdditionalRateToggles = reconcile.MergeToggles(
			draft.AdditionalRateToggles, schedule.AdditionalRates, occurrences)

		draft.Occurrences = occurrences

		// 2.7. Сводка стоимости пересчитывается целиком
		summary, err := uc.costing.SummarizeBooking(txCtx, draft.Occurrences, &draft.ClientID, draft.ProfessionalID)
		if err != nil {
			uc.logger.Error("UpdateDraftDates: cost summary failed for draft=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to summarize cost: %v", ErrInternal, err)
		}
		draft.CostSummary = summary

		// 2.8. Сохраняем с проверкой версии
		if err := uc.draftRepo.UpdateWithVersion(txCtx, draft); err != nil {
			if errors.Is(err, draftRepo.ErrVersionConflict) {
				return ErrVersionConflict
			}
			if errors.Is(err, draftRepo.ErrDraftNotFound) {
				return ErrDraftNotFound
			}
			uc.logger.Error("UpdateDraftDates: failed to save draft=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
		}

		result = draft
		return nil
	})

	if err != nil {
		return nil, err
	}
	warnings = append(warnings, recWarnings...)

	uc.logger.Info("UpdateDraftDates: draft=%s recalculated, occurrences=%d warnings=%d version=%d",
		req.DraftID, len(result.Occurrences), len(warnings), result.Version)

	return &Response{
		Draft:    result,
		Warnings: warnings,
	}, nil
}
