package transaction

import (
	"context"
	"fmt"
	"sync"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
	errs "github.com/Akilan7123/DreamPixel/internal/domain/error"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/persistence"
	"github.com/Akilan7123/DreamPixel/internal/domain/port/usecase"
)

type reconcileOutcome int

const (
	outcomeSkipped reconcileOutcome = iota
	outcomeSettled
	outcomeFailed
)

// ReconcilePending asks the gateway about unsettled orders and settles the ones it reports as paid.
// Data comes straight from the gateway API, so no callback signature is involved.
func (s *Service) ReconcilePending(ctx context.Context) (*usecase.ReconcileReport, error) {
	now := s.timeProvider.Now()
	filter := persistence.UnsettledFilter{
		CreatedBefore: now.Add(-s.config.Reconcile.MinAge),
		CreatedAfter:  now.Add(-s.config.Reconcile.MaxAge),
		Limit:         s.config.Reconcile.BatchSize,
	}

	pending, err := s.uow.GetTransactionRepository(ctx).ListUnsettled(ctx, filter)
	if err != nil {
		s.logger.Error("Failed to list unsettled transactions", errs.Fields(err))
		return nil, err
	}

	report := &usecase.ReconcileReport{Checked: len(pending)}
	if len(pending) == 0 {
		return report, nil
	}

	queue := make(chan *entity.Transaction)
	var mu sync.Mutex
	var wg sync.WaitGroup

	workers := min(s.config.Reconcile.Workers, len(pending))
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for txn := range queue {
				outcome, err := s.reconcileOne(ctx, txn)
				if err != nil {
					fields := transactionFields(txn)
					for k, v := range errs.Fields(err) {
						fields[k] = v
					}
					s.logger.Warn("Failed to reconcile transaction", fields)
				}

				mu.Lock()
				switch outcome {
				case outcomeSettled:
					report.Settled++
				case outcomeFailed:
					report.Failed++
				default:
					report.Skipped++
				}
				mu.Unlock()
			}
		}()
	}

	for _, txn := range pending {
		if ctx.Err() != nil {
			break
		}
		queue <- txn
	}
	close(queue)
	wg.Wait()

	// Items never dispatched because of cancellation count as skipped.
	report.Skipped = report.Checked - report.Settled - report.Failed

	s.logger.Info("Reconciliation sweep finished", map[string]any{
		"checked": report.Checked,
		"settled": report.Settled,
		"skipped": report.Skipped,
		"failed":  report.Failed,
	})

	return report, ctx.Err()
}

func (s *Service) reconcileOne(ctx context.Context, txn *entity.Transaction) (reconcileOutcome, error) {
	gwCtx, cancel := s.gatewayContext(ctx)
	defer cancel()

	order, err := s.gateway.FetchOrder(gwCtx, txn.GatewayOrderID)
	if err != nil {
		return outcomeFailed, err
	}
	if !order.IsPaid() {
		return outcomeSkipped, nil
	}
	if order.Receipt != txn.Receipt() {
		return outcomeFailed, fmt.Errorf("%w: order %s carries receipt %s", errs.ErrDuplicateOrder, order.ID, order.Receipt)
	}
	if err := checkOrderAmount(txn, order); err != nil {
		return outcomeFailed, err
	}

	payments, err := s.gateway.FetchOrderPayments(gwCtx, order.ID)
	if err != nil {
		return outcomeFailed, err
	}
	payment, ok := entity.SettledPayment(payments)
	if !ok {
		return outcomeSkipped, nil
	}

	credited, _, err := s.settle(ctx, txn, payment.ID)
	if err != nil {
		return outcomeFailed, err
	}
	if !credited {
		return outcomeSkipped, nil
	}

	fields := transactionFields(txn)
	fields["order_id"] = order.ID
	fields["payment_id"] = payment.ID
	s.logger.Info("Reconciled paid order", fields)
	return outcomeSettled, nil
}
