package transaction

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ComputeSignature returns hex(HMAC-SHA256(orderID + "|" + paymentID, secret)),
// the signature the gateway attaches to a checkout callback.
func ComputeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks a supplied callback signature in constant time.
// An empty secret or signature never verifies.
func VerifySignature(orderID, paymentID, secret, supplied string) bool {
	if secret == "" || supplied == "" {
		return false
	}
	expected := ComputeSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(supplied))
}
