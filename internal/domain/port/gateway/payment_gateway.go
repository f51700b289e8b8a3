package gateway

import (
	"context"

	"github.com/Akilan7123/DreamPixel/internal/domain/entity"
)

// PaymentGateway is the remote order/payment provider.
//
// Errors wrap ErrGatewayUnavailable for network failures, timeouts and 5xx responses,
// ErrGatewayRejected for 4xx responses, and ErrNotFound for unknown orders.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req entity.OrderRequest) (*entity.GatewayOrder, error)
	FetchOrder(ctx context.Context, orderID string) (*entity.GatewayOrder, error)
	FetchOrderPayments(ctx context.Context, orderID string) ([]entity.GatewayPayment, error)
}
