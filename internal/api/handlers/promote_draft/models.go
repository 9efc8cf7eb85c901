package promote_draft

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/api/handlers"
	promoteDraft "github.com/vlkhvnn/PCM-PricingService/internal/usecase/promote_draft"
)

// PromoteDraftRequest запрос на промоушен черновика
type PromoteDraftRequest struct {
	Version int64 `json:"version,omitempty"`
}

// PromoteDraftResponse ответ с созданным бронированием
type PromoteDraftResponse struct {
	Booking             *handlers.BookingJSON `json:"booking"`
	SupersededBookingID *int64                `json:"supersededBookingId,omitempty"`
	RequiresApproval    bool                  `json:"requiresApproval"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *promoteDraft.Response) *PromoteDraftResponse {
	return &PromoteDraftResponse{
		Booking:             handlers.FromDomainBooking(resp.Booking),
		SupersededBookingID: resp.SupersededBookingID,
		RequiresApproval:    resp.RequiresApproval,
	}
}
