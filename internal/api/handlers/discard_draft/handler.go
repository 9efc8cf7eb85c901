package discard_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	"github.com/vlkhvnn/PCM-PricingService/internal/api/middleware"
	"github.com/vlkhvnn/PCM-PricingService/internal/service/drafts"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "черновик не найден"
	msgNotActive     = "черновик уже промоучен или отброшен"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/drafts/{draftId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /drafts/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Discard(r.Context(), draftID, userID); err != nil {
		switch {
		case errors.Is(err, drafts.ErrDraftNotFound):
			h.logger.Warn("DELETE /drafts/{id} - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, drafts.ErrDraftNotActive):
			h.logger.Warn("DELETE /drafts/{id} - Draft not active: draft_id=%s", draftID)
			handlers.RespondConflict(w, msgNotActive)

		case errors.Is(err, drafts.ErrAccessDenied):
			h.logger.Warn("DELETE /drafts/{id} - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /drafts/{id} - Failed to discard draft: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /drafts/{id} - Draft discarded: draft_id=%s, user_id=%d", draftID, userID)
	w.WriteHeader(http.StatusNoContent)
}
