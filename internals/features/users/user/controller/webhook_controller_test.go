package controller

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"
)

func signBody(t *testing.T, body []byte, secret string) string {
	t.Helper()
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyWebhookSignature(t *testing.T) {
	body := []byte(`{"type":"user.updated","data":{"sub":"ext-1"}}`)
	secret := "whsec_test"
	sig := signBody(t, body, secret)

	if !verifyWebhookSignature(body, sig, secret) {
		t.Fatalf("valid signature rejected")
	}
	if !verifyWebhookSignature(body, "sha256="+sig, secret) {
		t.Fatalf("sha256= prefixed signature rejected")
	}
}

func TestVerifyWebhookSignatureRejects(t *testing.T) {
	body := []byte(`{"type":"user.deleted","data":{"sub":"ext-2"}}`)
	secret := "whsec_test"

	if verifyWebhookSignature(body, "", secret) {
		t.Fatalf("empty signature accepted")
	}
	if verifyWebhookSignature(body, signBody(t, body, "other-secret"), secret) {
		t.Fatalf("signature from wrong secret accepted")
	}
	tampered := append([]byte{}, body...)
	tampered[0] = '['
	if verifyWebhookSignature(tampered, signBody(t, body, secret), secret) {
		t.Fatalf("signature over different body accepted")
	}
}
