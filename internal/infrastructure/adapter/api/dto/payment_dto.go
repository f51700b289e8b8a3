package dto

// CreateOrderRequest is the body of POST /api/user/pay-razor
type CreateOrderRequest struct {
	PlanID string `json:"planId"`
}

// OrderView carries what the checkout widget needs
type OrderView struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrderResponse is returned after a gateway order is opened
type CreateOrderResponse struct {
	Success bool      `json:"success"`
	Order   OrderView `json:"order"`
}

// VerifyPaymentRequest is the checkout callback forwarded by the client
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPaymentResponse is returned for a verified payment
type VerifyPaymentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PlanView is one entry of the plan catalog
type PlanView struct {
	ID      string `json:"id"`
	Price   int64  `json:"price"`
	Credits int64  `json:"credits"`
	Desc    string `json:"desc"`
}

// PlansResponse lists the purchasable plans
type PlansResponse struct {
	Success bool       `json:"success"`
	Plans   []PlanView `json:"plans"`
}

// HealthResponse reports liveness and store reachability
type HealthResponse struct {
	Status   string    `json:"status"`
	Database string    `json:"database,omitempty"`
	Pool     *PoolView `json:"pool,omitempty"`
}

// PoolView is the last sampled connection pool state
type PoolView struct {
	Open      int   `json:"open"`
	InUse     int   `json:"inUse"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"maxOpen"`
	WaitCount int64 `json:"waitCount"`
}
