package costing

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
	"github.com/vlkhvnn/PCM-PricingService/internal/pricing"
)

// Service сервис расчёта итоговой сводки стоимости.
// Единственное место, где комиссии, налоги и адрес собираются вместе:
// все usecases пересчитывают сводку через него, формулы не расходятся
type Service struct {
	userClient UserServiceClient
	proClient  ProServiceClient
	taxClient  TaxServiceClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса расчёта стоимости
func NewService(
	userClient UserServiceClient,
	proClient ProServiceClient,
	taxClient TaxServiceClient,
	logger Logger,
) *Service {
	return &Service{
		userClient: userClient,
		proClient:  proClient,
		taxClient:  taxClient,
		logger:     logger,
	}
}

// SummarizeBooking считает сводку стоимости для набора occurrences.
//
// Проценты комиссии резолвятся по паре (клиент, профессионал) - тариф
// подписки и waitlist-статус клиента учитывает UserService. Штат для
// налога берётся из адреса обслуживания профессионала. Недоступность
// любого из сервисов - жёсткая ошибка: комиссии и налоги не имеют
// безопасного дефолта.
func (s *Service) SummarizeBooking(
	ctx context.Context,
	occurrences []domain.Occurrence,
	clientID *int64,
	professionalID int64,
) (*domain.CostSummary, error) {
	schedule, err := s.userClient.GetFeeSchedule(ctx, clientID, professionalID)
	if err != nil {
		s.logger.Error("SummarizeBooking: fee lookup failed for pro=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrFeeLookup, err)
	}

	address, err := s.proClient.GetServiceAddress(ctx, professionalID)
	if err != nil {
		s.logger.Error("SummarizeBooking: address lookup failed for pro=%d: %v", professionalID, err)
		return nil, fmt.Errorf("%w: %v", ErrAddressLookup, err)
	}

	fees := domain.FeeSchedule{
		ClientFeePercentage: schedule.ClientFeePercentage,
		ProFeePercentage:    schedule.ProFeePercentage,
	}

	// Сначала считаем subtotal и комиссии без налога: налоговый сервис
	// принимает их как входные параметры
	preliminary := pricing.Summarize(occurrences, fees, decimal.Zero, address.State)

	taxes, err := s.taxClient.GetBookingTax(ctx, address.State,
		preliminary.Subtotal, preliminary.ClientPlatformFee, preliminary.ProPlatformFee)
	if err != nil {
		s.logger.Error("SummarizeBooking: tax lookup failed for state=%s: %v", address.State, err)
		return nil, fmt.Errorf("%w: %v", ErrTaxLookup, err)
	}

	summary := pricing.Summarize(occurrences, fees, taxes, address.State)

	s.logger.Info("SummarizeBooking: pro=%d state=%s subtotal=%s client_total=%s payout=%s",
		professionalID, address.State,
		summary.Subtotal.StringFixed(2), summary.TotalClientCost.StringFixed(2), summary.TotalSitterPayout.StringFixed(2))

	return &summary, nil
}
