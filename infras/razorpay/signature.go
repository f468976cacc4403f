package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ExpectedSignature computes the lowercase hex HMAC-SHA256 of
// "<orderID>|<paymentID>" keyed with the gateway key secret. This is the
// signature the gateway attaches to a successful checkout.
func ExpectedSignature(keySecret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))

	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyPaymentSignature reports whether the supplied signature matches the
// expected one. The comparison is constant time.
func VerifyPaymentSignature(keySecret, orderID, paymentID, signature string) bool {
	expected := ExpectedSignature(keySecret, orderID, paymentID)

	return hmac.Equal([]byte(expected), []byte(signature))
}
