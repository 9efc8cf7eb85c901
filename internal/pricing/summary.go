package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// Summarize агрегирует стоимость occurrences в итоговую сводку бронирования.
//
// Subtotal - сумма calculated_cost всех occurrences. Комиссии платформы
// считаются от subtotal по процентам из FeeSchedule (проценты зависят от
// тарифа подписки; клиент из waitlist комиссию не платит - это зашито в
// FeeSchedule, разрешённом вызывающим кодом). Налог резолвится снаружи
// и передаётся готовой суммой.
//
// total_sitter_payout = subtotal - pro_platform_fee. Формула единственная
// во всём сервисе: вычитание уже округлённой комиссии не расходится с
// total_client_cost, в отличие от варианта subtotal * (1 - процент).
func Summarize(occurrences []domain.Occurrence, fees domain.FeeSchedule, taxes decimal.Decimal, taxState string) domain.CostSummary {
	subtotal := decimal.Zero
	for i := range occurrences {
		subtotal = subtotal.Add(occurrences[i].CalculatedCost)
	}
	subtotal = Cents(subtotal)

	clientFee := Cents(subtotal.Mul(fees.ClientFeePercentage))
	proFee := Cents(subtotal.Mul(fees.ProFeePercentage))
	taxes = Cents(taxes)

	return domain.CostSummary{
		Subtotal:          subtotal,
		ClientPlatformFee: clientFee,
		ProPlatformFee:    proFee,
		TotalPlatformFee:  clientFee.Add(proFee),
		Taxes:             taxes,
		TotalClientCost:   subtotal.Add(clientFee).Add(taxes),
		TotalSitterPayout: subtotal.Sub(proFee),

		TaxState:            taxState,
		ClientFeePercentage: fees.ClientFeePercentage,
		ProFeePercentage:    fees.ProFeePercentage,
	}
}
