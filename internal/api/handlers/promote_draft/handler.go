package promote_draft

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	"github.com/vlkhvnn/PCM-PricingService/internal/api/middleware"
	promoteDraft "github.com/vlkhvnn/PCM-PricingService/internal/usecase/promote_draft"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "черновик не найден"
	msgNotPromotable      = "черновик уже промоучен или отброшен"
	msgEmptyDraft         = "в черновике нет ни одного временного окна"
	msgForbidden          = "доступ запрещен"
	msgVersionConflict    = "черновик был изменён параллельно, обновите данные"
)

type Handler struct {
	useCase PromoteDraftUseCase
	logger  Logger
}

func NewHandler(useCase PromoteDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts/{draftId}/promote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts/{id}/promote - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело опционально: без него промоушен идет без проверки версии
	var req PromoteDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /drafts/{id}/promote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &promoteDraft.Request{
		DraftID: draftID,
		UserID:  userID,
		Version: req.Version,
	})
	if err != nil {
		switch {
		case errors.Is(err, promoteDraft.ErrDraftNotFound):
			h.logger.Warn("POST /drafts/{id}/promote - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, promoteDraft.ErrDraftNotPromotable):
			h.logger.Warn("POST /drafts/{id}/promote - Draft not promotable: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNotPromotable)

		case errors.Is(err, promoteDraft.ErrEmptyDraft):
			h.logger.Warn("POST /drafts/{id}/promote - Empty draft: draft_id=%s", draftID)
			handlers.RespondBadRequest(w, msgEmptyDraft)

		case errors.Is(err, promoteDraft.ErrAccessDenied):
			h.logger.Warn("POST /drafts/{id}/promote - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, promoteDraft.ErrVersionConflict):
			h.logger.Warn("POST /drafts/{id}/promote - Version conflict: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgVersionConflict)

		default:
			h.logger.Error("POST /drafts/{id}/promote - Failed to promote draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts/{id}/promote - Draft promoted: draft_id=%s, booking_id=%d, requires_approval=%t",
		draftID, result.Booking.ID, result.RequiresApproval)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
