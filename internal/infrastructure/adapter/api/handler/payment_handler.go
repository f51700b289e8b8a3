package handler

import (
	"net/http"

	coreport "github.com/Akilan7123/DreamPixel/internal/domain/port/core"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
	"github.com/Akilan7123/DreamPixel/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles plan listing, order creation and payment verification
type PaymentHandler struct {
	transactionUseCase usecase.TransactionUseCase
	logger             coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(transactionUseCase usecase.TransactionUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		transactionUseCase: transactionUseCase,
		logger:             logger,
	}
}

// Plans handles GET /api/plans
func (h *PaymentHandler) Plans(c *gin.Context) {
	plans := h.transactionUseCase.ListPlans()

	views := make([]dto.PlanView, 0, len(plans))
	for _, p := range plans {
		views = append(views, dto.PlanView{
			ID:      string(p.ID),
			Price:   p.Price,
			Credits: p.Credits,
			Desc:    p.Description,
		})
	}

	c.JSON(http.StatusOK, dto.PlansResponse{Success: true, Plans: views})
}

// CreateOrder handles POST /api/user/pay-razor
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	var req dto.CreateOrderRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	order, err := h.transactionUseCase.CreateOrder(c.Request.Context(), userID, req.PlanID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateOrderResponse{
		Success: true,
		Order: dto.OrderView{
			ID:       order.ID,
			Amount:   order.Amount,
			Currency: order.Currency,
			Receipt:  order.Receipt,
		},
	})
}

// VerifyPayment handles POST /api/user/verify-razor
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	userID, ok := currentUser(c, h.logger)
	if !ok {
		return
	}

	var req dto.VerifyPaymentRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.transactionUseCase.VerifyAndSettle(c.Request.Context(), usecase.PaymentCallback{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		CallerID:  userID,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Success: true,
		Message: result.Message,
	})
}
