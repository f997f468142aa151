package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	t.Setenv(sessionSecretEnvName, "")

	_, err := NewJWTConfig()
	require.Error(t, err)
}

func TestNewJWTConfig_DefaultDuration(t *testing.T) {
	t.Setenv(sessionSecretEnvName, "secret")
	t.Setenv(sessionDurationEnvName, "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.Equal(t, []byte("secret"), cfg.SecretKey())
	require.Equal(t, 7*24*time.Hour, cfg.TokenDuration())
}

func TestNewJWTConfig_CustomDuration(t *testing.T) {
	t.Setenv(sessionSecretEnvName, "secret")
	t.Setenv(sessionDurationEnvName, "24h")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	require.Equal(t, 24*time.Hour, cfg.TokenDuration())
}

func TestNewJWTConfig_InvalidDuration(t *testing.T) {
	t.Setenv(sessionSecretEnvName, "secret")
	t.Setenv(sessionDurationEnvName, "one week")

	_, err := NewJWTConfig()
	require.Error(t, err)
}
