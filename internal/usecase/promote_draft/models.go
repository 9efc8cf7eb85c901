package promote_draft

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// Request модель запроса на промоушен черновика
type Request struct {
	DraftID string
	UserID  int64
	Version int64 // 0 - без проверки версии
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking

	// SupersededBookingID прежнее активное бронирование пары,
	// отменённое в пользу нового
	SupersededBookingID *int64

	// RequiresApproval промоушен обнаружил изменения относительно прежнего
	// подтверждённого состояния, нужен цикл переподтверждения
	RequiresApproval bool
}
