package razorpay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"roam/infras/razorpay"
)

func TestExpectedSignature(t *testing.T) {
	tests := []struct {
		name      string
		keySecret string
		orderID   string
		paymentID string
		expected  string
	}{
		{
			name:      "known vector",
			keySecret: "test_secret",
			orderID:   "order_O1",
			paymentID: "pay_P1",
			expected:  "bc285df86e347adec8e7e979b303f1badd35daf0f848033304dd6fc9c269d413",
		},
		{
			name:      "gateway style identifiers",
			keySecret: "rzp_test_secret_key",
			orderID:   "order_MkxYz1234567890",
			paymentID: "pay_MkxAb0987654321",
			expected:  "722cedc1769cbc9b1818938cddd6ef9bfcf92ad8866ab30c9fefbd935f1fc289",
		},
		{
			name:      "short secret",
			keySecret: "secret",
			orderID:   "order_IluGWxBm9U8zJ8",
			paymentID: "pay_IluGWxBm9U8zJ9",
			expected:  "3424e6d7fe0e09af5ff572033d86713cd048344d6c3270c5de4087e6efef6471",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := razorpay.ExpectedSignature(tt.keySecret, tt.orderID, tt.paymentID)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVerifyPaymentSignature(t *testing.T) {
	const (
		keySecret = "test_secret"
		orderID   = "order_O1"
		paymentID = "pay_P1"
		valid     = "bc285df86e347adec8e7e979b303f1badd35daf0f848033304dd6fc9c269d413"
	)

	tests := []struct {
		name      string
		signature string
		want      bool
	}{
		{
			name:      "valid signature",
			signature: valid,
			want:      true,
		},
		{
			name:      "tampered signature",
			signature: "bc285df86e347adec8e7e979b303f1badd35daf0f848033304dd6fc9c269d414",
			want:      false,
		},
		{
			name:      "uppercase hex rejected",
			signature: "BC285DF86E347ADEC8E7E979B303F1BADD35DAF0F848033304DD6FC9C269D413",
			want:      false,
		},
		{
			name:      "empty signature",
			signature: "",
			want:      false,
		},
		{
			name:      "truncated signature",
			signature: valid[:32],
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := razorpay.VerifyPaymentSignature(keySecret, orderID, paymentID, tt.signature)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyPaymentSignatureSwappedIdentifiers(t *testing.T) {
	sig := razorpay.ExpectedSignature("test_secret", "order_O1", "pay_P1")

	// The payload is ordered orderID|paymentID, so swapping them must fail.
	assert.False(t, razorpay.VerifyPaymentSignature("test_secret", "pay_P1", "order_O1", sig))
}
