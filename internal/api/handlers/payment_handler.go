package handlers

import (
	"net/http"

	interfaces "technopedia-registration/internal/interfaces/infrastructure"
	serviceInterfaces "technopedia-registration/internal/interfaces/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaymentHandler handles the checkout callback endpoints and payment
// retries.
type PaymentHandler struct {
	paymentService serviceInterfaces.PaymentService
	checkout       interfaces.CheckoutProvider
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService serviceInterfaces.PaymentService, checkout interfaces.CheckoutProvider) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		checkout:       checkout,
	}
}

// Callback handles POST /api/v1/payments/:order_id/callback. The
// hosted checkout posts its success payload here; this resolves the
// registration request parked on the order.
func (h *PaymentHandler) Callback(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload interfaces.CheckoutPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}
	payload.OrderID = orderID

	if err := h.checkout.Complete(orderID, payload); err != nil {
		c.JSON(http.StatusNotFound, APIResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Payment callback accepted",
	})
}

// Dismiss handles POST /api/v1/payments/:order_id/dismiss, the
// user-closed-the-checkout signal.
func (h *PaymentHandler) Dismiss(c *gin.Context) {
	orderID := c.Param("order_id")

	if err := h.checkout.Dismiss(orderID); err != nil {
		c.JSON(http.StatusNotFound, APIResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Checkout dismissed",
	})
}

// Retry handles POST /api/v1/payments/retry. It blocks on a fresh
// checkout for the named game entry.
func (h *PaymentHandler) Retry(c *gin.Context) {
	type RetryRequest struct {
		GameEntryID uuid.UUID `json:"game_registration_id" binding:"required"`
	}

	var req RetryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "Invalid request format",
			Errors:  err.Error(),
		})
		return
	}

	attempt, err := h.paymentService.RetryPayment(c.Request.Context(), req.GameEntryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Message: "Payment successful",
		Data:    attempt,
	})
}
