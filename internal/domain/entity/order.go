package entity

import "time"

// OrderStatus is the gateway-side state of an order
type OrderStatus string

// Order statuses reported by the gateway
const (
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusAttempted OrderStatus = "attempted"
	OrderStatusPaid      OrderStatus = "paid"
)

// PaymentStatus is the gateway-side state of a single payment attempt
type PaymentStatus string

// Payment statuses reported by the gateway
const (
	PaymentStatusCreated    PaymentStatus = "created"
	PaymentStatusAuthorized PaymentStatus = "authorized"
	PaymentStatusCaptured   PaymentStatus = "captured"
	PaymentStatusRefunded   PaymentStatus = "refunded"
	PaymentStatusFailed     PaymentStatus = "failed"
)

// OrderRequest is what we ask the gateway to create
type OrderRequest struct {
	Amount         int64 // minor units
	Currency       string
	Receipt        string
	PaymentCapture bool
	Notes          map[string]string
}

// GatewayOrder is an order as known to the payment gateway
type GatewayOrder struct {
	ID         string
	Amount     int64 // minor units
	AmountPaid int64
	Currency   string
	Receipt    string
	Status     OrderStatus
	Attempts   int
	CreatedAt  time.Time
}

// IsPaid reports whether the gateway considers the order fully paid
func (o *GatewayOrder) IsPaid() bool {
	return o.Status == OrderStatusPaid
}

// GatewayPayment is one payment attempt against an order
type GatewayPayment struct {
	ID      string
	OrderID string
	Amount  int64
	Status  PaymentStatus
}

// SettledPayment picks the payment that completed an order: captured first, then authorized.
func SettledPayment(payments []GatewayPayment) (GatewayPayment, bool) {
	for _, p := range payments {
		if p.Status == PaymentStatusCaptured {
			return p, true
		}
	}
	for _, p := range payments {
		if p.Status == PaymentStatusAuthorized {
			return p, true
		}
	}
	return GatewayPayment{}, false
}
