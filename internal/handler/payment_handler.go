package handler

import (
	"net/http"

	"ShaadiBiodata/internal/payment"

	"github.com/gin-gonic/gin"
)

type CreateOrderRequest struct {
	// rupees
	Amount *float64 `json:"amount" example:"150.00"`
}

type CreateOrderResponse struct {
	OrderID  string `json:"orderId" example:"order_NZ8dTTrUYQ3Q2u"`
	Amount   int64  `json:"amount" example:"15000"`
	Currency string `json:"currency" example:"INR"`
	Key      string `json:"key" example:"rzp_test_1DP5mmOlF5G5ag"`
}

// CreateOrder godoc
// @Summary      Create payment order
// @Description  Creates a Razorpay order. The response amount is in paise.
// @Tags         Payment
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.CreateOrderRequest true "amount in INR"
// @Success      200 {object} handler.CreateOrderResponse
// @Failure      400 {object} handler.ErrorResponse "missing or non-positive amount"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse "gateway failure"
// @Router       /api/payment/create-order [post]
func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	if req.Amount == nil {
		respondError(c, payment.ErrAmountRequired)
		return
	}

	checkout, err := h.payments.CreateOrder(c.Request.Context(), *req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, CreateOrderResponse{
		OrderID:  checkout.OrderID,
		Amount:   checkout.Amount,
		Currency: checkout.Currency,
		Key:      checkout.Key,
	})
}
