package transaction

import (
	"strings"

	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// PaymentValidator provides validation for purchase requests and gateway callbacks
type PaymentValidator struct{}

// NewPaymentValidator creates a new PaymentValidator
func NewPaymentValidator() *PaymentValidator {
	return &PaymentValidator{}
}

// ValidateOrderRequest checks that both the buyer and the plan are present
func (v *PaymentValidator) ValidateOrderRequest(userID uuid.UUID, planID string) error {
	if userID == uuid.Nil || strings.TrimSpace(planID) == "" {
		return errs.ErrMissingFields
	}
	return nil
}

// ValidateCallback checks that the callback carries all three gateway fields
func (v *PaymentValidator) ValidateCallback(callback usecase.PaymentCallback) error {
	if strings.TrimSpace(callback.OrderID) == "" ||
		strings.TrimSpace(callback.PaymentID) == "" ||
		strings.TrimSpace(callback.Signature) == "" {
		return errs.ErrMissingFields
	}
	return nil
}
