package update_draft_dates

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	"github.com/vlkhvnn/PCM-PricingService/internal/api/middleware"
	updateDates "github.com/vlkhvnn/PCM-PricingService/internal/usecase/update_draft_dates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "черновик не найден"
	msgNotEditable        = "черновик больше не редактируется"
	msgForbidden          = "доступ запрещен"
	msgVersionConflict    = "черновик был изменён параллельно, обновите данные"
	msgServiceNotFound    = "услуга черновика не найдена"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase UpdateDraftDatesUseCase
	logger  Logger
}

func NewHandler(useCase UpdateDraftDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/drafts/{draftId}/dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /drafts/{id}/dates - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateDraftDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /drafts/{id}/dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(draftID, userID))
	if err != nil {
		switch {
		case errors.Is(err, updateDates.ErrDraftNotFound):
			h.logger.Warn("PATCH /drafts/{id}/dates - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateDates.ErrDraftNotEditable):
			h.logger.Warn("PATCH /drafts/{id}/dates - Draft not editable: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateDates.ErrAccessDenied):
			h.logger.Warn("PATCH /drafts/{id}/dates - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateDates.ErrVersionConflict):
			h.logger.Warn("PATCH /drafts/{id}/dates - Version conflict: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgVersionConflict)

		case errors.Is(err, updateDates.ErrServiceNotFound):
			h.logger.Warn("PATCH /drafts/{id}/dates - Service not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, updateDates.ErrInvalidInput):
			h.logger.Warn("PATCH /drafts/{id}/dates - Invalid input: draft_id=%s, error=%v", draftID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /drafts/{id}/dates - Failed to update dates: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /drafts/{id}/dates - Dates updated: draft_id=%s, occurrences=%d",
		draftID, len(result.Draft.Occurrences))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
