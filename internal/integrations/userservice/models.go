package userservice

import "github.com/shopspring/decimal"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// FeeSchedule проценты комиссии платформы для пары (клиент, профессионал)
// Проценты зависят от тарифа подписки каждой из сторон
type FeeSchedule struct {
	ClientFeePercentage decimal.Decimal `json:"client_fee_percentage"`
	ProFeePercentage    decimal.Decimal `json:"pro_fee_percentage"`

	// ClientIsWaitlisted true для клиента, который записался в waitlist
	// и ещё не конвертировался: такой клиент комиссию платформы не платит
	ClientIsWaitlisted bool `json:"client_is_waitlisted"`

	ClientSubscriptionTier string `json:"client_subscription_tier"`
	ProSubscriptionTier    string `json:"pro_subscription_tier"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
