package config

import (
	"time"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type JWTConfig interface {
	SecretKey() []byte
	TokenDuration() time.Duration
}

type AppConfig interface {
	IsProduction() bool
}

// GateConfig - path sets for the session gate. Everything not skipped
// and not public requires a valid session token.
type GateConfig interface {
	PublicPaths() []string
	SkipPrefixes() []string
	SkipSuffixes() []string
}
