package get_booking_changes

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	"github.com/vlkhvnn/PCM-PricingService/internal/api/middleware"
	"github.com/vlkhvnn/PCM-PricingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgMissingDraftID   = "отсутствует параметр draftId"
	msgBookingNotFound  = "бронирование не найдено"
	msgDraftNotFound    = "черновик не найден"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
	msgPairMismatch     = "черновик и бронирование принадлежат разным парам"
)

// ChangesResponse ответ сравнения черновика с бронированием
type ChangesResponse struct {
	BookingID  int64  `json:"bookingId"`
	DraftID    string `json:"draftId"`
	HasChanges bool   `json:"hasChanges"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/changes?draftId=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/changes - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	draftID := r.URL.Query().Get("draftId")
	if draftID == "" {
		h.logger.Warn("GET /bookings/{id}/changes - Missing draftId: booking_id=%d", bookingID)
		handlers.RespondBadRequest(w, msgMissingDraftID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id}/changes - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	changed, err := h.service.HasChanges(r.Context(), bookingID, draftID, userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id}/changes - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrDraftNotFound):
			h.logger.Warn("GET /bookings/{id}/changes - Draft not found: draft_id=%s", draftID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/changes - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrPairMismatch):
			h.logger.Warn("GET /bookings/{id}/changes - Pair mismatch: booking_id=%d, draft_id=%s", bookingID, draftID)
			handlers.RespondBadRequest(w, msgPairMismatch)

		default:
			h.logger.Error("GET /bookings/{id}/changes - Failed to compare: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &ChangesResponse{
		BookingID:  bookingID,
		DraftID:    draftID,
		HasChanges: changed,
	})
}
