package transaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignature(t *testing.T) {
	assert.Equal(t,
		"a23a35a9cc17304682813499f610ed21e20e5e98e04bc2fbe9a198a68b058546",
		ComputeSignature("o1", "p1", "s"))
}

func TestVerifySignature(t *testing.T) {
	valid := ComputeSignature("order_1", "pay_1", "test_secret")

	testCases := []struct {
		name      string
		orderID   string
		paymentID string
		secret    string
		signature string
		expected  bool
	}{
		{"valid", "order_1", "pay_1", "test_secret", valid, true},
		{"known vector", "order_1", "pay_1", "test_secret", "444ab3353f39d9a6cd042ce01e598f3a2819f46159b58f0ff40d4eed15d8e158", true},
		{"wrong secret", "order_1", "pay_1", "other", valid, false},
		{"swapped ids", "pay_1", "order_1", "test_secret", valid, false},
		{"tampered payment id", "order_1", "pay_2", "test_secret", valid, false},
		{"truncated signature", "order_1", "pay_1", "test_secret", valid[:10], false},
		{"empty signature", "order_1", "pay_1", "test_secret", "", false},
		{"empty secret", "order_1", "pay_1", "", ComputeSignature("order_1", "pay_1", ""), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, VerifySignature(tc.orderID, tc.paymentID, tc.secret, tc.signature))
		})
	}
}
