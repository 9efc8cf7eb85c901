package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Client клиент для работы с UserService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetFeeSchedule получает проценты комиссии платформы для пары
// (клиент, профессионал). clientID может быть nil, если черновик ещё
// не привязан к клиенту - тогда клиентская комиссия нулевая.
//
// Graceful degradation здесь намеренно НЕ применяется: молчаливый ноль
// вместо реальной комиссии - это финансовая ошибка, а не деградация.
// Недоступность сервиса комиссий - жёсткая ошибка для вызывающего кода.
func (c *Client) GetFeeSchedule(ctx context.Context, clientID *int64, proID int64) (*FeeSchedule, error) {
	url := fmt.Sprintf("%s/internal/fees?proId=%d", c.baseURL, proID)
	if clientID != nil {
		url = fmt.Sprintf("%s&clientId=%d", url, *clientID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var schedule FeeSchedule
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Клиент из waitlist комиссию платформы не платит - правило применяется
	// здесь, чтобы ни один вызывающий код не мог его пропустить
	if schedule.ClientIsWaitlisted || clientID == nil {
		schedule.ClientFeePercentage = decimal.Zero
	}

	c.log.Info("GetFeeSchedule: pro=%d client_pct=%s pro_pct=%s waitlisted=%t",
		proID, schedule.ClientFeePercentage.String(), schedule.ProFeePercentage.String(), schedule.ClientIsWaitlisted)

	return &schedule, nil
}
