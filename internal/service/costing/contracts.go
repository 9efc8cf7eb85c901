package costing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vlkhvnn/PCM-PricingService/internal/integrations/proservice"
	"github.com/vlkhvnn/PCM-PricingService/internal/integrations/userservice"
)

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	GetFeeSchedule(ctx context.Context, clientID *int64, proID int64) (*userservice.FeeSchedule, error)
}

// ProServiceClient интерфейс клиента для ProService
type ProServiceClient interface {
	GetServiceAddress(ctx context.Context, proID int64) (*proservice.Address, error)
}

// TaxServiceClient интерфейс клиента для TaxService
type TaxServiceClient interface {
	GetBookingTax(ctx context.Context, state string, subtotal, clientFee, proFee decimal.Decimal) (decimal.Decimal, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
