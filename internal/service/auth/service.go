package auth

import (
	"student_portal_backend/internal/config"
	"student_portal_backend/internal/repository"
	"student_portal_backend/internal/service"

	"github.com/avito-tech/go-transaction-manager/trm/v2"
)

type serv struct {
	txManager   trm.Manager
	studentRepo repository.StudentRepository
	jwtConfig   config.JWTConfig
}

func NewAuthService(txManager trm.Manager, studentRepo repository.StudentRepository, jwtConfig config.JWTConfig) service.AuthService {
	return &serv{
		txManager:   txManager,
		studentRepo: studentRepo,
		jwtConfig:   jwtConfig,
	}
}
