package env

import (
	"fmt"
	"os"
	"time"

	"student_portal_backend/internal/config"
)

const (
	sessionSecretEnvName   = "SESSION_SECRET"
	sessionDurationEnvName = "SESSION_DURATION"
)

// Sessions live 7 days unless overridden.
const defaultSessionDuration = 7 * 24 * time.Hour

type jwtConfig struct {
	secretKey     string
	tokenDuration time.Duration
}

func NewJWTConfig() (config.JWTConfig, error) {
	secretKey := os.Getenv(sessionSecretEnvName)
	if len(secretKey) == 0 {
		return nil, fmt.Errorf("session secret key not found")
	}

	tokenDuration := defaultSessionDuration
	if raw := os.Getenv(sessionDurationEnvName); len(raw) != 0 {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid session duration: %w", err)
		}
		tokenDuration = parsed
	}

	return &jwtConfig{
		secretKey:     secretKey,
		tokenDuration: tokenDuration,
	}, nil
}

func (j *jwtConfig) SecretKey() []byte {
	return []byte(j.secretKey)
}

func (j *jwtConfig) TokenDuration() time.Duration {
	return j.tokenDuration
}
