package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с API Mercado Pago
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	log         Logger
}

// NewClient создает новый экземпляр клиента Mercado Pago
func NewClient(baseURL string, accessToken string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:     baseURL,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreatePreference создает checkout preference и возвращает redirect URL
// Запрос несет X-Idempotency-Key, чтобы повтор при сетевой ошибке
// не создал второй preference
func (c *Client) CreatePreference(ctx context.Context, pref *PreferenceRequest) (*PreferenceResponse, error) {
	body, err := json.Marshal(pref)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal preference: %v", ErrUpstream, err)
	}

	url := c.baseURL + "/checkout/preferences"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUpstream, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("X-Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("CreatePreference: unexpected status %d: %s", resp.StatusCode, string(respBody))
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUpstream, resp.StatusCode)
	}

	var preference PreferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&preference); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if preference.ID == "" || preference.RedirectURL() == "" {
		return nil, fmt.Errorf("%w: empty preference id or init point", ErrInvalidResponse)
	}

	return &preference, nil
}

// GetPayment запрашивает у процессора состояние платежа по его ID
// Используется webhook-обработчиком для верификации входящего сигнала
func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.baseURL, paymentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrUpstream, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrPaymentNotFound
	default:
		respBody, _ := io.ReadAll(resp.Body)
		c.log.Error("GetPayment: unexpected status %d for payment=%s: %s", resp.StatusCode, paymentID, string(respBody))
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrUpstream, resp.StatusCode)
	}

	var payment Payment
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &payment, nil
}
