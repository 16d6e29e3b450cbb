package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeSignature(t *testing.T) {
	signature := ComputeSignature("order_abc", "pay_def", "secret")

	assert.Len(t, signature, 64, "HMAC-SHA256 hex digest should be 64 chars")
	assert.Equal(t, signature, ComputeSignature("order_abc", "pay_def", "secret"), "signature should be deterministic")
	assert.NotEqual(t, signature, ComputeSignature("order_abc", "pay_def", "other-secret"))
	assert.NotEqual(t, signature, ComputeSignature("order_abd", "pay_def", "secret"))
}

func TestVerifySignature(t *testing.T) {
	signature := ComputeSignature("order_abc", "pay_def", "secret")

	tampered := []byte(signature)
	if tampered[0] == '0' {
		tampered[0] = '1'
	} else {
		tampered[0] = '0'
	}

	assert.True(t, VerifySignature("order_abc", "pay_def", "secret", signature))
	assert.False(t, VerifySignature("order_abc", "pay_def", "secret", string(tampered)),
		"single character flip should fail verification")
	assert.False(t, VerifySignature("order_abc", "pay_other", "secret", signature))
	assert.False(t, VerifySignature("order_abc", "pay_def", "secret", ""))
}
