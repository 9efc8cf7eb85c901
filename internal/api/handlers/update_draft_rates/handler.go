package update_draft_rates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	"github.com/vlkhvnn/PCM-PricingService/internal/api/middleware"
	updateRates "github.com/vlkhvnn/PCM-PricingService/internal/usecase/update_draft_rates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "черновик не найден"
	msgNotEditable        = "черновик больше не редактируется"
	msgForbidden          = "доступ запрещен"
	msgVersionConflict    = "черновик был изменён параллельно, обновите данные"
	msgServiceNotFound    = "услуга черновика не найдена"
	msgUnknownToggle      = "неизвестный ключ переключателя услуги"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateDraftRatesUseCase
	logger  Logger
}

func NewHandler(useCase UpdateDraftRatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/drafts/{draftId}/rates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id}/rates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateDraftRatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id}/rates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(draftID, userID))
	if err != nil {
		switch {
		case errors.Is(err, updateRates.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{id}/rates - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateRates.ErrDraftNotEditable):
			h.logger.Warn("PATCH /drafts/{id}/rates - Draft not editable: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateRates.ErrAccessDenied):
			h.logger.Warn("PATCH /drafts/{id}/rates - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateRates.ErrVersionConflict):
			h.logger.Warn("PATCH /drafts/{id}/rates - Version conflict: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgVersionConflict)

		case errors.Is(err, updateRates.ErrServiceNotFound):
			h.logger.Warn("PATCH /drafts/{id}/rates - Service not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateRates.ErrUnknownToggle):
			h.logger.Warn("PATCH /drafts/{id}/rates - Unknown toggle: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgUnknownToggle)

		case errors.Is(err, updateRates.ErrInvalidInput):
			h.logger.Warn("PATCH /drafts/{id}/rates - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /drafts/{id}/rates - Failed to update rates: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /drafts/{id}/rates - Rates updated: draft_id=%s", draftID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
