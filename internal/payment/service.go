// Package payment creates checkout orders on the payment gateway.
package payment

import (
	"context"
	"math"

	"ShaadiBiodata/internal/apperr"
	"ShaadiBiodata/internal/logger"
	"ShaadiBiodata/internal/models"
)

const Currency = "INR"

// MaxAmount is the largest order, in rupees, that is sent to the gateway.
// Keeps the paise value well inside int64.
const MaxAmount = 1e12

var (
	ErrAmountRequired = apperr.New(apperr.KindValidation, "Amount is required to create payment order")
	ErrAmountTooLarge = apperr.New(apperr.KindValidation, "Amount is too large")
	ErrOrderFailed    = apperr.New(apperr.KindExternalService, "Failed to create Razorpay order")
)

// OrderCreator is the gateway side of order creation.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency string) (*models.Order, error)
}

// Checkout is what the client needs to open the gateway's payment widget.
type Checkout struct {
	OrderID  string
	Amount   int64
	Currency string
	Key      string
}

type Service struct {
	orders OrderCreator
	keyID  string
}

func NewService(orders OrderCreator, keyID string) *Service {
	return &Service{orders: orders, keyID: keyID}
}

// ToMinorUnits converts rupees to paise, rounding to the nearest paisa.
// Callers bound amount by MaxAmount first.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func (s *Service) CreateOrder(ctx context.Context, amount float64) (*Checkout, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return nil, ErrAmountRequired
	}
	if amount > MaxAmount {
		return nil, ErrAmountTooLarge
	}
	minor := ToMinorUnits(amount)
	if minor <= 0 {
		return nil, ErrAmountRequired
	}

	order, err := s.orders.CreateOrder(ctx, minor, Currency)
	if err != nil {
		logger.Log.Errorw("CreateOrder(): payment gateway failed", "amount", minor, "error", err)
		return nil, apperr.Wrap(ErrOrderFailed, err)
	}

	return &Checkout{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Key:      s.keyID,
	}, nil
}
