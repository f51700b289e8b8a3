package transaction

import (
	"context"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// CreateOrder records an unsettled transaction for the plan and opens a gateway order for it.
// The user's balance is not touched here.
func (s *Service) CreateOrder(ctx context.Context, userID uuid.UUID, planID string) (*usecase.OrderResult, error) {
	if err := s.validator.ValidateOrderRequest(userID, planID); err != nil {
		return nil, err
	}

	user, err := s.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		s.logger.Warn("Order requested for unknown user", userField(userID))
		return nil, err
	}

	plan, err := entity.LookupPlan(planID)
	if err != nil {
		s.logger.Warn("Order requested for unknown plan", map[string]any{
			"user_id": userID.String(),
			"plan":    planID,
		})
		return nil, err
	}

	txn, err := entity.NewTransaction(user.ID, plan, s.config.Currency, s.timeProvider)
	if err != nil {
		return nil, err
	}
	amountMinor, err := txn.AmountMinor()
	if err != nil {
		return nil, err
	}

	txnRepo := s.uow.GetTransactionRepository(ctx)
	if err := txnRepo.Create(ctx, txn); err != nil {
		s.logger.Error("Failed to persist transaction", errs.Fields(err))
		return nil, err
	}

	gwCtx, cancel := s.gatewayContext(ctx)
	defer cancel()

	order, err := s.gateway.CreateOrder(gwCtx, entity.OrderRequest{
		Amount:         amountMinor,
		Currency:       txn.Currency,
		Receipt:        txn.Receipt(),
		PaymentCapture: true,
		Notes: map[string]string{
			"plan": string(plan.ID),
		},
	})
	if err != nil {
		paymentErr := errs.NewPaymentError("create_order", txn.Receipt(), "", err)
		paymentErr.UserID = userID.String()
		paymentErr.Plan = string(plan.ID)
		s.logger.Error("Failed to create gateway order", paymentErr.LogFields())
		return nil, paymentErr
	}

	// The receipt is enough to settle later, so a failed attach only loses the reconciler hint.
	if err := txnRepo.AttachGatewayOrder(ctx, txn.ID, order.ID); err != nil {
		fields := transactionFields(txn)
		fields["order_id"] = order.ID
		fields["error"] = err.Error()
		s.logger.Warn("Failed to record gateway order on transaction", fields)
	}

	fields := transactionFields(txn)
	fields["order_id"] = order.ID
	fields["amount"] = entity.FormatPrice(order.Amount, order.Currency)
	s.logger.Info("Gateway order created", fields)

	return &usecase.OrderResult{
		ID:            order.ID,
		Amount:        order.Amount,
		Currency:      order.Currency,
		Receipt:       order.Receipt,
		TransactionID: txn.ID.String(),
	}, nil
}
