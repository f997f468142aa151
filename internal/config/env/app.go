package env

import (
	"os"

	"student_portal_backend/internal/config"
)

const appEnvName = "APP_ENV"

type appConfig struct {
	env string
}

func NewAppConfig() (config.AppConfig, error) {
	return &appConfig{
		env: os.Getenv(appEnvName),
	}, nil
}

// IsProduction - controls the Secure flag on the session cookie.
func (cfg *appConfig) IsProduction() bool {
	return cfg.env == "production"
}
