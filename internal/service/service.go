package service

import (
	"context"

	"student_portal_backend/internal/model"
)

type AuthService interface {
	Register(ctx context.Context, reg *model.Registration) (student *model.Student, sessionToken string, err error)
	Login(ctx context.Context, email, password string) (student *model.Student, sessionToken string, err error)
}

type DashboardService interface {
	Overview(ctx context.Context, email string) (*model.Dashboard, error)
}
