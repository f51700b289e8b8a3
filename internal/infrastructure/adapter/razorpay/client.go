// Package razorpay is the HTTP client for the Razorpay orders API.
package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/gateway"
)

// DefaultBaseURL is the public API root
const DefaultBaseURL = "https://api.razorpay.com/v1"

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 1 << 20

// Config holds API credentials and transport settings
type Config struct {
	KeyID     string
	KeySecret string
	BaseURL   string
	Timeout   time.Duration
}

// Client talks to the orders and payments endpoints with basic auth
type Client struct {
	baseURL   string
	keyID     string
	keySecret string
	client    *http.Client
	logger    coreport.Logger
}

var _ gateway.PaymentGateway = (*Client)(nil)

// NewClient creates a client; a nil httpClient gets one with the configured timeout
func NewClient(cfg Config, httpClient *http.Client, logger coreport.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		client:    httpClient,
		logger:    logger,
	}
}

type createOrderRequest struct {
	Amount         int64             `json:"amount"`
	Currency       string            `json:"currency"`
	Receipt        string            `json:"receipt"`
	PaymentCapture int               `json:"payment_capture"`
	Notes          map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID         string `json:"id"`
	Entity     string `json:"entity"`
	Amount     int64  `json:"amount"`
	AmountPaid int64  `json:"amount_paid"`
	AmountDue  int64  `json:"amount_due"`
	Currency   string `json:"currency"`
	Receipt    string `json:"receipt"`
	Status     string `json:"status"`
	Attempts   int    `json:"attempts"`
	CreatedAt  int64  `json:"created_at"`
}

func (o orderResponse) toEntity() *entity.GatewayOrder {
	order := &entity.GatewayOrder{
		ID:         o.ID,
		Amount:     o.Amount,
		AmountPaid: o.AmountPaid,
		Currency:   o.Currency,
		Receipt:    o.Receipt,
		Status:     entity.OrderStatus(o.Status),
		Attempts:   o.Attempts,
	}
	if o.CreatedAt > 0 {
		order.CreatedAt = time.Unix(o.CreatedAt, 0).UTC()
	}
	return order
}

type paymentResponse struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
}

type paymentCollection struct {
	Count int               `json:"count"`
	Items []paymentResponse `json:"items"`
}

type errorEnvelope struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder opens an order for the amount in minor units
func (c *Client) CreateOrder(ctx context.Context, req entity.OrderRequest) (*entity.GatewayOrder, error) {
	body := createOrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	}
	if req.PaymentCapture {
		body.PaymentCapture = 1
	}

	var out orderResponse
	if err := c.do(ctx, "create_order", http.MethodPost, "/orders", body, &out); err != nil {
		return nil, err
	}

	c.logger.Debug("Gateway order created", map[string]any{
		"order_id": out.ID,
		"receipt":  out.Receipt,
		"amount":   out.Amount,
	})
	return out.toEntity(), nil
}

// FetchOrder returns the current state of an order
func (c *Client) FetchOrder(ctx context.Context, orderID string) (*entity.GatewayOrder, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: empty order id", errs.ErrMissingFields)
	}

	var out orderResponse
	if err := c.do(ctx, "fetch_order", http.MethodGet, "/orders/"+url.PathEscape(orderID), nil, &out); err != nil {
		return nil, err
	}
	return out.toEntity(), nil
}

// FetchOrderPayments lists the payment attempts made against an order
func (c *Client) FetchOrderPayments(ctx context.Context, orderID string) ([]entity.GatewayPayment, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: empty order id", errs.ErrMissingFields)
	}

	var out paymentCollection
	if err := c.do(ctx, "fetch_payments", http.MethodGet, "/orders/"+url.PathEscape(orderID)+"/payments", nil, &out); err != nil {
		return nil, err
	}

	payments := make([]entity.GatewayPayment, 0, len(out.Items))
	for _, p := range out.Items {
		payments = append(payments, entity.GatewayPayment{
			ID:      p.ID,
			OrderID: p.OrderID,
			Amount:  p.Amount,
			Status:  entity.PaymentStatus(p.Status),
		})
	}
	return payments, nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, in, out any) error {
	var reader io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return &errs.GatewayError{Operation: operation, Err: fmt.Errorf("failed to encode request: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &errs.GatewayError{Operation: operation, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return c.transportError(ctx, operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return c.transportError(ctx, operation, err)
	}

	if resp.StatusCode >= 300 {
		return c.statusError(operation, resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &errs.GatewayError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: malformed response: %w", errs.ErrGatewayUnavailable, err),
		}
	}
	return nil
}

func (c *Client) transportError(ctx context.Context, operation string, err error) error {
	c.logger.Warn("Gateway request failed", map[string]any{
		"operation": operation,
		"error":     err.Error(),
	})

	cause := errs.ErrGatewayUnavailable
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		cause = errs.ErrTimeout
	}
	return &errs.GatewayError{Operation: operation, Err: fmt.Errorf("%w: %w", cause, err)}
}

func (c *Client) statusError(operation string, status int, body []byte) error {
	var envelope errorEnvelope
	_ = json.Unmarshal(body, &envelope)

	gwErr := &errs.GatewayError{
		Operation:   operation,
		StatusCode:  status,
		GatewayCode: envelope.Error.Code,
		Description: envelope.Error.Description,
	}

	switch {
	case status >= 500 || status == http.StatusTooManyRequests:
		gwErr.Err = errs.ErrGatewayUnavailable
	case status == http.StatusNotFound:
		gwErr.Err = errs.ErrNotFound
	case status == http.StatusBadRequest && strings.Contains(strings.ToLower(envelope.Error.Description), "does not exist"):
		// Unknown ids come back as 400 BAD_REQUEST_ERROR rather than 404
		gwErr.Err = errs.ErrNotFound
	default:
		gwErr.Err = errs.ErrGatewayRejected
	}

	fields := gwErr.LogFields()
	c.logger.Warn("Gateway returned an error", fields)
	return gwErr
}
