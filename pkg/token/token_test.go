package token

import (
	"testing"
	"time"

	"student_portal_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

func TestSignAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := Sign("user-123", "student@example.com", secret, time.Hour)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	claims := Verify(tok, secret)
	if claims == nil {
		t.Fatalf("Verify returned nil for a freshly signed token")
	}
	if claims.UserID != "user-123" {
		t.Fatalf("UserID mismatch: got %q want %q", claims.UserID, "user-123")
	}
	if claims.Email != "student@example.com" {
		t.Fatalf("Email mismatch: got %q want %q", claims.Email, "student@example.com")
	}
}

func TestVerify_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := Sign("u1", "u1@example.com", []byte("right-secret"), time.Hour)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if claims := Verify(tok, []byte("wrong-secret")); claims != nil {
		t.Fatalf("expected nil for wrong secret, got %+v", claims)
	}
}

func TestVerify_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := Sign("u1", "u1@example.com", secret, -1*time.Second)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	if claims := Verify(tok, secret); claims != nil {
		t.Fatalf("expected nil for expired token, got %+v", claims)
	}
}

func TestVerify_MalformedAndEmpty(t *testing.T) {
	t.Parallel()

	if claims := Verify("not.a.jwt", []byte("k")); claims != nil {
		t.Fatalf("expected nil for malformed token, got %+v", claims)
	}
	if claims := Verify("", []byte("k")); claims != nil {
		t.Fatalf("expected nil for empty token, got %+v", claims)
	}
}

func TestVerify_WrongIssuerAndAudience(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	// Token signed with the right secret but foreign issuer/audience.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, model.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Audience:  jwt.ClaimStrings{"their-users"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: "u1",
		Email:  "u1@example.com",
	})
	tok, err := foreign.SignedString(secret)
	if err != nil {
		t.Fatalf("SignedString error: %v", err)
	}

	if claims := Verify(tok, secret); claims != nil {
		t.Fatalf("expected nil for wrong issuer/audience, got %+v", claims)
	}
}

func TestSign_MissingSecret(t *testing.T) {
	t.Parallel()

	_, err := Sign("u1", "u1@example.com", nil, time.Hour)
	if err != model.ErrMissingSecret {
		t.Fatalf("expected ErrMissingSecret, got %v", err)
	}
}

func TestSign_MissingClaims(t *testing.T) {
	t.Parallel()

	if _, err := Sign("", "u1@example.com", []byte("k"), time.Hour); err != model.ErrMissingClaims {
		t.Fatalf("expected ErrMissingClaims for empty user id, got %v", err)
	}
	if _, err := Sign("u1", "", []byte("k"), time.Hour); err != model.ErrMissingClaims {
		t.Fatalf("expected ErrMissingClaims for empty email, got %v", err)
	}
}

func TestDecode_SkipsSignatureCheck(t *testing.T) {
	t.Parallel()

	tok, err := Sign("u1", "u1@example.com", []byte("secret"), time.Hour)
	if err != nil {
		t.Fatalf("Sign error: %v", err)
	}

	// Decode never sees the secret, yet must still read the claims.
	claims := Decode(tok)
	if claims == nil {
		t.Fatalf("Decode returned nil for a well-formed token")
	}
	if claims.UserID != "u1" || claims.Email != "u1@example.com" {
		t.Fatalf("Decode claims mismatch: %+v", claims)
	}

	if claims := Decode("garbage"); claims != nil {
		t.Fatalf("expected nil for garbage input, got %+v", claims)
	}
}
