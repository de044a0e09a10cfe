package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного провайдера (Stripe REST API).
// Вызовы не ретраятся: неуспех любого вызова означает отклоненную
// операцию, решение о повторе принимает вызывающая сторона.
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного провайдера
func NewClient(baseURL, secretKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCheckoutSession создает сессию оплаты картой на полную сумму
func (c *Client) CreateCheckoutSession(ctx context.Context, params CheckoutParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("customer_email", params.CustomerEmail)
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", "usd")
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(params.AmountCents, 10))
	form.Set("line_items[0][price_data][product_data][name]", params.Description)
	form.Set("metadata[booking_reference]", params.Reference)

	var session CheckoutSession
	if err := c.post(ctx, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}

	c.log.Info("CreateCheckoutSession: created session=%s amount=%d reference=%s",
		session.ID, params.AmountCents, params.Reference)
	return &session, nil
}

// CreateSetupSession создает сессию сохранения карты без списания.
// Используется для наличных бронирований: карта остается на файле
// для возможного штрафа за неявку.
func (c *Client) CreateSetupSession(ctx context.Context, params SetupParams) (*CheckoutSession, error) {
	form := url.Values{}
	form.Set("mode", "setup")
	form.Set("success_url", params.SuccessURL)
	form.Set("cancel_url", params.CancelURL)
	form.Set("customer_email", params.CustomerEmail)
	form.Set("customer_creation", "always")
	form.Set("metadata[booking_reference]", params.Reference)

	var session CheckoutSession
	if err := c.post(ctx, "/v1/checkout/sessions", form, &session); err != nil {
		return nil, err
	}

	c.log.Info("CreateSetupSession: created session=%s reference=%s", session.ID, params.Reference)
	return &session, nil
}

// GetSetupIntent получает setup intent по идентификатору.
// Нужен после вебхука, чтобы узнать сохраненный платежный метод.
func (c *Client) GetSetupIntent(ctx context.Context, setupIntentID string) (*SetupIntent, error) {
	var intent SetupIntent
	if err := c.get(ctx, "/v1/setup_intents/"+setupIntentID, &intent); err != nil {
		return nil, err
	}
	return &intent, nil
}

// Refund возвращает средства по платежу
func (c *Client) Refund(ctx context.Context, paymentIntentID string, amountCents int64) (*Refund, error) {
	form := url.Values{}
	form.Set("payment_intent", paymentIntentID)
	form.Set("amount", strconv.FormatInt(amountCents, 10))

	var refund Refund
	if err := c.post(ctx, "/v1/refunds", form, &refund); err != nil {
		return nil, err
	}

	c.log.Info("Refund: created refund=%s payment_intent=%s amount=%d",
		refund.ID, paymentIntentID, amountCents)
	return &refund, nil
}

// ChargeStoredCard списывает сумму с сохраненной карты (off-session)
func (c *Client) ChargeStoredCard(ctx context.Context, customerID, paymentMethodID string, amountCents int64, description string) (*PaymentIntent, error) {
	form := url.Values{}
	form.Set("amount", strconv.FormatInt(amountCents, 10))
	form.Set("currency", "usd")
	form.Set("customer", customerID)
	form.Set("payment_method", paymentMethodID)
	form.Set("description", description)
	form.Set("confirm", "true")
	form.Set("off_session", "true")

	var intent PaymentIntent
	if err := c.post(ctx, "/v1/payment_intents", form, &intent); err != nil {
		return nil, err
	}

	c.log.Info("ChargeStoredCard: charged customer=%s amount=%d intent=%s",
		customerID, amountCents, intent.ID)
	return &intent, nil
}

func (c *Client) post(ctx context.Context, path string, form url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path,
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	// Ключ идемпотентности защищает от двойного списания при сетевых сбоях
	req.Header.Set("Idempotency-Key", uuid.NewString())

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	req.SetBasicAuth(c.secretKey, "")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusPaymentRequired:
		return ErrCardDeclined
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		var provErr errorResponse
		if json.Unmarshal(body, &provErr) == nil && provErr.Error.Code == "card_declined" {
			return ErrCardDeclined
		}
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
