package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
)

// ValidSignature reports whether signature is the hex-encoded HMAC-SHA512 of
// body under secret. The comparison is constant-time. The body must be the
// raw bytes as transmitted; any re-serialization breaks the digest.
func ValidSignature(body []byte, secret, signature string) bool {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	computed := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(computed), []byte(signature))
}
