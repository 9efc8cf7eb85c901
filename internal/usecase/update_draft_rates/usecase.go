package update_draft_rates

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

// UseCase use case правки ставок черновика: переключатели дополнительных
// услуг, переопределения ставок, ad hoc услуги и состав питомцев.
// Любая правка пересчитывает стоимость всех occurrences и сводку
type UseCase struct {
	draftRepo DraftRepository
	proClient ProServiceClient
	costing   CostingService
	txManager TransactionManager
	logger    Logger
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
		draftRepo: draftRepo,
		proClient: proClient,
		costing:   costing,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет правку ставок черновика
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateDraftRates: draft=%s user=%d toggles=%d custom=%d",
		req.DraftID, req.UserID, len(req.Toggles), len(req.CustomRates))

	// 1. Валидация и парсинг правок
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateDraftRates: validation failed: %v", err)
		return nil, err
	}

	var warnings []string

	var overrides domain.RateOverrides
	if req.Overrides != nil {
		parsed, overrideWarnings, err := parseOverrides(req.Overrides)
		if err != nil {
			uc.logger.Warn("UpdateDraftRates: override parsing failed: %v", err)
			return nil, err
		}
		overrides = parsed
		warnings = append(warnings, overrideWarnings...)
	}

	customRates, customWarnings := parseCustomRates(req.CustomRates)
	warnings = append(warnings, customWarnings...)
	for _, w := range warnings {
		uc.logger.Warn("UpdateDraftRates: draft=%s %s", req.DraftID, w)
	}

	var result *domain.Draft

	// 2. Правка и пересчёт в serializable транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		draft, err := uc.draftRepo.GetByID(txCtx, req.DraftID)
		if err != nil {
			if errors.Is(err, draftRepo.ErrDraftNotFound) {
				return ErrDraftNotFound
			}
			uc.logger.Error("UpdateDraftRates: failed to get draft=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
		}

		if !draft.IsOwnedBy(req.UserID) {
			uc.logger.Warn("UpdateDraftRates: access denied for user=%d to draft=%s", req.UserID, req.DraftID)
			return ErrAccessDenied
		}
		if !draft.IsActive() {
			uc.logger.Warn("UpdateDraftRates: draft=%s is %s, not editable", req.DraftID, draft.Status)
			return ErrDraftNotEditable
		}
		if req.Version > 0 && req.Version != draft.Version {
			uc.logger.Warn("UpdateDraftRates: version conflict on draft=%s: client=%d db=%d",
				req.DraftID, req.Version, draft.Version)
			return ErrVersionConflict
		}

		// 2.1. Все запрошенные ключи переключателей должны существовать
		for key := range req.Toggles {
			if _, ok := draft.AdditionalRateToggles[key]; !ok {
				uc.logger.Warn("UpdateDraftRates: draft=%s has no toggle key %q", req.DraftID, key)
				return fmt.Errorf("%w: %q", ErrUnknownToggle, key)
			}
		}

		// 2.2. Переопределения мерджатся по полям: правим только то, что пришло
		if req.Overrides != nil {
			mergeOverrides(&draft.Overrides, overrides)
		}
		if req.Pets != nil {
			pets := make([]domain.Pet, 0, len(req.Pets))
			for _, p := range req.Pets {
				pets = append(pets, domain.Pet{PetID: p.PetID, Name: p.Name, Species: p.Species, Breed: p.Breed})
			}
			draft.Pets = pets
		}

		// 2.3. Эффективное расписание с учётом новых переопределений
		service, err := uc.proClient.GetService(txCtx, draft.ProfessionalID, draft.ServiceID)
		if err != nil {
			if errors.Is(err, proClient.ErrServiceNotFound) {
				return ErrServiceNotFound
			}
			uc.logger.Error("UpdateDraftRates: failed to get service=%d: %v", draft.ServiceID, err)
			return fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		schedule := pricing.ResolveRates(service.ToRateSchedule(), draft.Overrides)

		// 2.4. Применяем правки к каждому occurrence и пересчитываем стоимость
		numPets := draft.NumPets()
		for i := range draft.Occurrences {
			occ := &draft.Occurrences[i]

			// Базовые поля расписания обновляются из эффективного расписания,
			// собственный список дополнительных услуг occurrence сохраняется
			occ.Rates.BaseRate = schedule.BaseRate
			occ.Rates.AdditionalAnimalRate = schedule.AdditionalAnimalRate
			occ.Rates.AppliesAfter = schedule.AppliesAfter
			occ.Rates.HolidayRate = schedule.HolidayRate
			occ.Rates.UnitOfTime = schedule.UnitOfTime

			for key, applies := range req.Toggles {
				applyToggle(occ, key, applies, draft.AdditionalRateToggles[key])
			}
			for _, cr := range customRates {
				addRate(occ, cr)
			}

			if err := pricing.RecalculateOccurrence(occ, numPets); err != nil {
				uc.logger.Error("UpdateDraftRates: recalculation failed for occurrence=%s: %v", occ.OccurrenceID, err)
				return fmt.Errorf("%w: failed to recalculate occurrence: %v", ErrInternal, err)
			}
		}

		// 2.5. Карта переключателей пересобирается от карты с уже применёнными
		// правками пользователя: именно их MergeToggles восстановит для
		// выживших ключей
		prior := make(map[string]domain.RateToggle, len(draft.AdditionalRateToggles))
		for key, toggle := range draft.AdditionalRateToggles {
			if applies, ok := req.Toggles[key]; ok {
				toggle.Applies = applies
			}
			prior[key] = toggle
		}
		draft.AdditionalRateToggles = reconcile.MergeToggles(prior, schedule.AdditionalRates, draft.Occurrences)

		// 2.6. Пересчёт сводки и сохранение
		summary, err := uc.costing.SummarizeBooking(txCtx, draft.Occurrences, &draft.ClientID, draft.ProfessionalID)
		if err != nil {
			uc.logger.Error("UpdateDraftRates: cost summary failed for draft=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to summarize cost: %v", ErrInternal, err)
		}
		draft.CostSummary = summary

		if err := uc.draftRepo.UpdateWithVersion(txCtx, draft); err != nil {
			if errors.Is(err, draftRepo.ErrVersionConflict) {
				return ErrVersionConflict
			}
			if errors.Is(err, draftRepo.ErrDraftNotFound) {
				return ErrDraftNotFound
			}
			uc.logger.Error("UpdateDraftRates: failed to save draft=%s: %v", req.DraftID, err)
			return fmt.Errorf("%w: failed to save draft: %v", ErrInternal, err)
		}

		result = draft
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateDraftRates: draft=%s recalculated, version=%d", req.DraftID, result.Version)

	return &Response{
		Draft:    result,
		Warnings: warnings,
	}, nil
}

// mergeOverrides накладывает пришедшие переопределения на существующие,
// трогая только непустые поля запроса
func mergeOverrides(dst *domain.RateOverrides, src domain.RateOverrides) {
	if src.BaseRate != nil {
		dst.BaseRate = src.BaseRate
	}
	if src.AdditionalAnimalRate != nil {
		dst.AdditionalAnimalRate = src.AdditionalAnimalRate
	}
	if src.AppliesAfter != nil {
		dst.AppliesAfter = src.AppliesAfter
	}
	if src.HolidayRate != nil {
		dst.HolidayRate = src.HolidayRate
	}
	if src.UnitOfTime != nil {
		dst.UnitOfTime = src.UnitOfTime
	}
}

// applyToggle добавляет или снимает услугу переключателя на occurrence
func applyToggle(occ *domain.Occurrence, key string, applies bool, toggle domain.RateToggle) {
	title, ok := reconcile.TitleFromKey(key)
	if !ok {
		return
	}
	if applies {
		addRate(occ, domain.AdditionalRate{
			Title:       title,
			Description: toggle.Description,
			Amount:      toggle.Amount,
		})
		return
	}
	removeRate(occ, title)
}

func addRate(occ *domain.Occurrence, rate domain.AdditionalRate) {
	if occ.Rates.HasRateTitle(rate.Title) {
		return
	}
	occ.Rates.AdditionalRates = append(occ.Rates.AdditionalRates, rate)
}

func removeRate(occ *domain.Occurrence, title string) {
	kept := occ.Rates.AdditionalRates[:0]
	for _, ar := range occ.Rates.AdditionalRates {
		if ar.Title != title {
			kept = append(kept, ar)
		}
	}
	occ.Rates.AdditionalRates = kept
}
