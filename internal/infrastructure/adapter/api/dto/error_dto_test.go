package dto

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	domainerr "github.com/Akilan7123/DreamPixel/internal/domain/error"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{domainerr.ErrMissingFields, http.StatusBadRequest},
		{domainerr.ErrInvalidPlan, http.StatusBadRequest},
		{domainerr.ErrInvalidSignature, http.StatusUnauthorized},
		{domainerr.ErrUnauthorized, http.StatusUnauthorized},
		{domainerr.ErrUserNotFound, http.StatusNotFound},
		{domainerr.ErrDuplicateUser, http.StatusConflict},
		{domainerr.ErrPaymentNotCompleted, http.StatusPaymentRequired},
		{domainerr.ErrAmountMismatch, http.StatusPaymentRequired},
		{domainerr.ErrGatewayUnavailable, http.StatusServiceUnavailable},
		{context.DeadlineExceeded, http.StatusServiceUnavailable},
		{domainerr.ErrGatewayRejected, http.StatusInternalServerError},
		{errors.New("unclassified"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}

func TestNewErrorResponse(t *testing.T) {
	err := domainerr.NewPaymentError("fetch_order", "", "order_1",
		fmt.Errorf("%w: dial tcp: i/o timeout", domainerr.ErrGatewayUnavailable))

	status, body := NewErrorResponse(err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.False(t, body.Success)
	assert.Equal(t, domainerr.CodeGatewayUnavailable, body.Code)
	assert.Equal(t, "GATEWAY_UNAVAILABLE", body.Reason)
	assert.Equal(t, "payment gateway unavailable", body.Message)
	assert.True(t, body.Retryable)
}
