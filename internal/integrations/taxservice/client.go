package taxservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vlkhvnn/PCM-PricingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с TaxService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента TaxService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// taxRequest запрос расчёта налога
// Денежные значения передаются decimal-строками
type taxRequest struct {
	State             string `json:"state"`
	Subtotal          string `json:"subtotal"`
	ClientPlatformFee string `json:"client_platform_fee"`
	ProPlatformFee    string `json:"pro_platform_fee"`
}

// taxResponse ответ с суммой налога
type taxResponse struct {
	Taxes decimal.Decimal `json:"taxes"`
}

// GetBookingTax получает сумму налога на бронирование для штата.
//
// Штаты без налога (Колорадо) отрабатываются локально, без похода в сервис:
// это правило зафиксировано в домене и не должно зависеть от доступности
// TaxService. Для остальных штатов недоступность сервиса - жёсткая ошибка,
// молчаливый нулевой налог недопустим.
func (c *Client) GetBookingTax(ctx context.Context, state string, subtotal, clientFee, proFee decimal.Decimal) (decimal.Decimal, error) {
	if domain.IsZeroTaxState(state) {
		c.log.Info("GetBookingTax: state=%s is tax-exempt, skipping lookup", state)
		return decimal.Zero, nil
	}

	payload, err := json.Marshal(taxRequest{
		State:             state,
		Subtotal:          subtotal.StringFixed(2),
		ClientPlatformFee: clientFee.StringFixed(2),
		ProPlatformFee:    proFee.StringFixed(2),
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/taxes/booking", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return decimal.Zero, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result taxResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return result.Taxes, nil
}
