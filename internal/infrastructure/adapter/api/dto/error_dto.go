package dto

import (
	"net/http"

	domainerr "github.com/Akilan7123/DreamPixel/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Code      int    `json:"code"`
	Reason    string `json:"reason"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// StatusFor maps an error kind to its HTTP status
func StatusFor(err error) int {
	switch domainerr.KindOf(err) {
	case domainerr.KindInvalidArgument:
		return http.StatusBadRequest
	case domainerr.KindUnauthorized:
		return http.StatusUnauthorized
	case domainerr.KindNotFound:
		return http.StatusNotFound
	case domainerr.KindConflict:
		return http.StatusConflict
	case domainerr.KindFailedPrecondition:
		return http.StatusPaymentRequired
	case domainerr.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewErrorResponse builds the status and body for err
func NewErrorResponse(err error) (int, ErrorResponse) {
	return StatusFor(err), ErrorResponse{
		Success:   false,
		Code:      domainerr.ErrorCode(err),
		Reason:    domainerr.Reason(err),
		Message:   domainerr.Message(err),
		Retryable: domainerr.IsRetryable(err),
	}
}
