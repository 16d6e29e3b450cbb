package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"dermref-service/internal/pkg/constvars"
)

// ComputeSignature reproduces the gateway's callback signature: HMAC-SHA256
// over "orderID|paymentID" keyed with the secret, hex encoded.
func ComputeSignature(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + constvars.PaymentSignatureSeparator + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature compares in constant time.
func VerifySignature(orderID, paymentID, secret, signature string) bool {
	expected := ComputeSignature(orderID, paymentID, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}
