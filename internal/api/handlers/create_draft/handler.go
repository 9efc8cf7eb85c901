package create_draft

import (
	"errors"
	"net/http"

	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	"github.com/vlkhvnn/PCM-PricingService/internal/api/middleware"
	createDraft "github.com/vlkhvnn/PCM-PricingService/internal/usecase/create_draft"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgServiceNotFound    = "услуга не найдена"
	msgServiceMismatch    = "услуга принадлежит другому профессионалу"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateDraftUseCase
	logger  Logger
}

func NewHandler(useCase CreateDraftUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/drafts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /drafts - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateDraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /drafts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createDraft.ErrServiceNotFound):
			h.logger.Warn("POST /drafts - Service not found: pro_id=%d, service_id=%d", req.ProfessionalID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createDraft.ErrServiceMismatch):
			h.logger.Warn("POST /drafts - Service mismatch: pro_id=%d, service_id=%d", req.ProfessionalID, req.ServiceID)
			handlers.RespondBadRequest(w, msgServiceMismatch)

		case errors.Is(err, createDraft.ErrAccessDenied):
			h.logger.Warn("POST /drafts - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createDraft.ErrInvalidInput):
			h.logger.Warn("POST /drafts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /drafts - Failed to create draft: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /drafts - Draft created: draft_id=%s, user_id=%d", result.Draft.DraftID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
