package payment

import (
	"context"
	"fmt"
	"time"

	"ShaadiBiodata/internal/logger"
	"ShaadiBiodata/internal/models"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const requestTimeout = 30 * time.Second

type createOrderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type razorpayError struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// RazorpayClient talks to the Razorpay Orders API.
type RazorpayClient struct {
	http  *resty.Client
	keyID string
}

func NewRazorpayClient(baseURL, keyID, secret string) *RazorpayClient {
	return &RazorpayClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetBasicAuth(keyID, secret).
			SetHeader("Content-Type", "application/json").
			SetTimeout(requestTimeout),
		keyID: keyID,
	}
}

// KeyID is the publishable key handed to the checkout widget.
func (c *RazorpayClient) KeyID() string {
	return c.keyID
}

func (c *RazorpayClient) CreateOrder(ctx context.Context, amountMinor int64, currency string) (*models.Order, error) {
	var (
		order  models.Order
		apiErr razorpayError
	)
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createOrderRequest{
			Amount:   amountMinor,
			Currency: currency,
			Receipt:  "receipt_" + uuid.NewString(),
		}).
		SetResult(&order).
		SetError(&apiErr).
		Post("/orders")
	if err != nil {
		return nil, fmt.Errorf("CreateOrder(): request failed: %w", err)
	}
	if resp.IsError() {
		logger.Log.Warnw("CreateOrder(): gateway rejected order",
			"status", resp.StatusCode(), "code", apiErr.Error.Code, "description", apiErr.Error.Description)
		return nil, fmt.Errorf("CreateOrder(): gateway answered with status: %s", resp.Status())
	}
	return &order, nil
}
