package proservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с ProService (каталог услуг профессионалов)
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetService получает определение услуги профессионала
func (c *Client) GetService(ctx context.Context, proID, serviceID int64) (*Service, error) {
	url := fmt.Sprintf("%s/internal/professionals/%d/services/%d", c.baseURL, proID, serviceID)

	var service Service
	if err := c.getJSON(ctx, url, &service, ErrServiceNotFound); err != nil {
		return nil, err
	}

	return &service, nil
}

// GetServiceAddress получает адрес обслуживания профессионала
// Штат из адреса определяет налоговые правила бронирования
func (c *Client) GetServiceAddress(ctx context.Context, proID int64) (*Address, error) {
	url := fmt.Sprintf("%s/internal/professionals/%d/address", c.baseURL, proID)

	var address Address
	if err := c.getJSON(ctx, url, &address, ErrAddressNotFound); err != nil {
		return nil, err
	}

	return &address, nil
}

// getJSON выполняет GET запрос и декодирует JSON ответ
// notFound возвращается на 404 без обёртки
func (c *Client) getJSON(ctx context.Context, url string, dest interface{}, notFound error) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return notFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
