package get_cost_summary

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	"github.com/vlkhvnn/PCM-PricingService/internal/api/middleware"
	summarizeCost "github.com/vlkhvnn/PCM-PricingService/internal/usecase/summarize_cost"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "черновик не найден"
	msgForbidden     = "доступ запрещен"
)

// CostSummaryResponse ответ со свежей сводкой стоимости черновика
type CostSummaryResponse struct {
	DraftID string                    `json:"draftId"`
	Summary *handlers.CostSummaryJSON `json:"summary"`
}

type Handler struct {
	useCase SummarizeCostUseCase
	logger  Logger
}

func NewHandler(useCase SummarizeCostUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/drafts/{draftId}/cost-summary
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	draftID := mux.Vars(r)["draftId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /drafts/{id}/cost-summary - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &summarizeCost.Request{
		DraftID: draftID,
		UserID:  userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, summarizeCost.ErrDraftNotFound):
			h.logger.Warn("GET /drafts/{id}/cost-summary - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, summarizeCost.ErrAccessDenied):
			h.logger.Warn("GET /drafts/{id}/cost-summary - Access denied: draft_id=%s, user_id=%d", draftID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /drafts/{id}/cost-summary - Failed to summarize: draft_id=%s, error=%v", draftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &CostSummaryResponse{
		DraftID: result.DraftID,
		Summary: handlers.FromDomainCostSummary(result.Summary),
	})
}
