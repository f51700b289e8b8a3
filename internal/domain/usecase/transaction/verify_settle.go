package transaction

import (
	"context"
	"fmt"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
	"github.com/google/uuid"
)

// VerifyAndSettle authenticates a gateway callback and applies the plan's credits exactly once.
// Re-delivery of an already settled callback succeeds without crediting again.
func (s *Service) VerifyAndSettle(ctx context.Context, callback usecase.PaymentCallback) (*usecase.SettlementResult, error) {
	if err := s.validator.ValidateCallback(callback); err != nil {
		return nil, err
	}

	// Nothing is read from the store or the gateway until the callback is authentic.
	if !VerifySignature(callback.OrderID, callback.PaymentID, s.config.KeySecret, callback.Signature) {
		s.logger.Warn("Rejected payment callback with invalid signature", map[string]any{
			"order_id":   callback.OrderID,
			"payment_id": callback.PaymentID,
		})
		return nil, errs.NewPaymentError("verify_signature", "", callback.OrderID, errs.ErrInvalidSignature)
	}

	gwCtx, cancel := s.gatewayContext(ctx)
	order, err := s.gateway.FetchOrder(gwCtx, callback.OrderID)
	cancel()
	if err != nil {
		paymentErr := errs.NewPaymentError("fetch_order", "", callback.OrderID, err)
		paymentErr.PaymentID = callback.PaymentID
		s.logger.Error("Failed to fetch gateway order", paymentErr.LogFields())
		return nil, paymentErr
	}

	if !order.IsPaid() {
		s.logger.Info("Payment callback for unpaid order", map[string]any{
			"order_id": order.ID,
			"status":   string(order.Status),
		})
		return nil, errs.NewPaymentError("verify_status", order.Receipt, order.ID,
			fmt.Errorf("%w: order status %s", errs.ErrPaymentNotCompleted, order.Status))
	}

	txnID, err := entity.ParseReceipt(order.Receipt)
	if err != nil {
		return nil, errs.NewPaymentError("resolve_receipt", order.Receipt, order.ID, err)
	}

	txn, settled, err := s.idempotencyHandler.CheckSettled(ctx, txnID)
	if err != nil {
		return nil, errs.NewPaymentError("load_transaction", order.Receipt, order.ID, err)
	}

	// Credits always go to the buyer; a different submitter is only recorded.
	if callback.CallerID != uuid.Nil && callback.CallerID != txn.UserID {
		fields := transactionFields(txn)
		fields["caller_id"] = callback.CallerID.String()
		fields["order_id"] = order.ID
		s.logger.Warn("Payment callback submitted by a user other than the buyer", fields)
	}

	if err := checkOrderAmount(txn, order); err != nil {
		fields := transactionFields(txn)
		fields["order_id"] = order.ID
		fields["order_amount"] = order.Amount
		s.logger.Error("Paid amount does not match transaction", fields)
		return nil, errs.NewPaymentError("verify_amount", txn.Receipt(), order.ID, err)
	}

	if settled {
		return &usecase.SettlementResult{
			TransactionID:  txn.ID,
			AlreadySettled: true,
			Message:        MessageAlreadyCredits,
		}, nil
	}

	credited, balance, err := s.settle(ctx, txn, callback.PaymentID)
	if err != nil {
		paymentErr := errs.NewPaymentError("settle", txn.Receipt(), order.ID, err)
		paymentErr.UserID = txn.UserID.String()
		paymentErr.PaymentID = callback.PaymentID
		s.logger.Error("Failed to settle transaction", paymentErr.LogFields())
		return nil, paymentErr
	}

	if !credited {
		// A concurrent delivery won the conditional update.
		return &usecase.SettlementResult{
			TransactionID:  txn.ID,
			AlreadySettled: true,
			Message:        MessageAlreadyCredits,
		}, nil
	}

	fields := transactionFields(txn)
	fields["order_id"] = order.ID
	fields["payment_id"] = callback.PaymentID
	fields["credit_balance"] = balance
	s.logger.Info("Credits added", fields)

	return &usecase.SettlementResult{
		TransactionID: txn.ID,
		CreditsAdded:  txn.Credits,
		Message:       MessageCreditsAdded,
	}, nil
}

func checkOrderAmount(txn *entity.Transaction, order *entity.GatewayOrder) error {
	expected, err := txn.AmountMinor()
	if err != nil {
		return err
	}
	if order.Amount != expected {
		return fmt.Errorf("%w: expected %d, got %d", errs.ErrAmountMismatch, expected, order.Amount)
	}
	return nil
}
