package paystack

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"
)

func sign(body []byte, secret string) string {
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestValidSignature(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"R1"}}`)
	secret := "sk_test_secret"

	if !ValidSignature(body, secret, sign(body, secret)) {
		t.Fatal("expected matching signature to be accepted")
	}
}

func TestValidSignature_WrongSecret(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)

	if ValidSignature(body, "sk_test_secret", sign(body, "sk_other_secret")) {
		t.Fatal("expected signature under different secret to be rejected")
	}
}

func TestValidSignature_MutatedBody(t *testing.T) {
	body := []byte(`{"event":"charge.success","data":{"reference":"R1"}}`)
	secret := "sk_test_secret"
	signature := sign(body, secret)

	for i := range body {
		mutated := append([]byte(nil), body...)
		mutated[i] ^= 0x01
		if ValidSignature(mutated, secret, signature) {
			t.Fatalf("expected rejection after mutating body byte %d", i)
		}
	}
}

func TestValidSignature_MutatedSignature(t *testing.T) {
	body := []byte(`{"event":"charge.success"}`)
	secret := "sk_test_secret"
	signature := sign(body, secret)

	for i := range signature {
		mutated := []byte(signature)
		if mutated[i] == 'f' {
			mutated[i] = '0'
		} else {
			mutated[i] = 'f'
		}
		if string(mutated) == signature {
			continue
		}
		if ValidSignature(body, secret, string(mutated)) {
			t.Fatalf("expected rejection after mutating signature byte %d", i)
		}
	}
}

func TestValidSignature_Empty(t *testing.T) {
	if ValidSignature([]byte("body"), "secret", "") {
		t.Fatal("expected empty signature to be rejected")
	}
}
