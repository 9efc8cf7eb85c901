package summarize_cost

import (
	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// Request модель запроса на пересчёт сводки стоимости черновика
type Request struct {
	DraftID string
	UserID  int64
}

// Response модель ответа со свежей сводкой.
// Сводка считается заново от текущих occurrences и актуальных комиссий,
// черновик при этом не изменяется
type Response struct {
	DraftID string
	Summary *domain.CostSummary
}
