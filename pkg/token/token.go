package token

import (
	"errors"
	"log"
	"time"

	"student_portal_backend/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer   = "student-portal"
	audience = "student-portal-users"
)

// Sign - issues a signed session token for the given identity.
// Issuer, audience and expiry are fixed at signing time.
func Sign(userID, email string, secretKey []byte, ttl time.Duration) (string, error) {
	if len(secretKey) == 0 {
		return "", model.ErrMissingSecret
	}
	if userID == "" || email == "" {
		return "", model.ErrMissingClaims
	}

	now := time.Now()
	claims := model.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(secretKey)
}

// Verify - parses and validates a session token.
// Returns nil for any invalid token: malformed, bad signature, expired,
// wrong issuer or audience. Failures are logged, never returned.
func Verify(tokenStr string, secretKey []byte) *model.Claims {
	if tokenStr == "" {
		return nil
	}

	token, err := jwt.ParseWithClaims(tokenStr, &model.Claims{}, func(t *jwt.Token) (interface{}, error) {
		_, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, errors.New("unexpected token signing method")
		}

		return secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(audience))
	if err != nil {
		log.Printf("token verification failed: %v", err)
		return nil
	}

	claims, ok := token.Claims.(*model.Claims)
	if !ok {
		log.Printf("token verification failed: unexpected claims type")
		return nil
	}

	return claims
}

// Decode - parses a token without checking the signature.
// For diagnostics only; must never gate access decisions.
func Decode(tokenStr string) *model.Claims {
	if tokenStr == "" {
		return nil
	}

	claims := &model.Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims)
	if err != nil {
		log.Printf("token decode failed: %v", err)
		return nil
	}

	return claims
}
