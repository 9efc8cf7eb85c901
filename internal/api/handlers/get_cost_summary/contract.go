package get_cost_summary

import (
	"context"

	summarizeCost "github.com/vlkhvnn/PCM-PricingService/internal/usecase/summarize_cost"
)

type SummarizeCostUseCase interface {
	Execute(ctx context.Context, req *summarizeCost.Request) (*summarizeCost.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
