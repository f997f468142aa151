package pass

import "testing"

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "correct horse" {
		t.Fatalf("hash must not equal the plain password")
	}

	if !VerifyPassword(hash, "correct horse") {
		t.Fatalf("expected password to verify against its own hash")
	}
	if VerifyPassword(hash, "battery staple") {
		t.Fatalf("expected wrong password to fail verification")
	}
}

func TestVerify_InvalidHash(t *testing.T) {
	t.Parallel()

	if VerifyPassword("not-a-bcrypt-hash", "whatever") {
		t.Fatalf("expected verification to fail for a non-bcrypt hash")
	}
}
