package service

import "testing"

func TestAccessCodeRoundTrip(t *testing.T) {
	hash, err := HashAccessCode("  UPSC-2026  ")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	if !VerifyAccessCode(hash, "UPSC-2026") {
		t.Fatalf("right code rejected")
	}
	if !VerifyAccessCode(hash, "  UPSC-2026 ") {
		t.Fatalf("whitespace around the code should not matter")
	}
	if VerifyAccessCode(hash, "upsc-2026") {
		t.Fatalf("codes are case sensitive")
	}
	if VerifyAccessCode(hash, "") {
		t.Fatalf("empty code accepted")
	}
}

func TestVerifyAccessCodeFailsClosed(t *testing.T) {
	if VerifyAccessCode(nil, "anything") {
		t.Fatalf("nil hash accepted")
	}
	if VerifyAccessCode([]byte("plaintext-not-a-hash"), "plaintext-not-a-hash") {
		t.Fatalf("non-bcrypt stored value accepted")
	}
}
