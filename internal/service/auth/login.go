package auth

import (
	"context"
	"errors"
	"strings"

	"student_portal_backend/internal/model"
	"student_portal_backend/pkg/pass"
	"student_portal_backend/pkg/token"
)

func (s *serv) Login(ctx context.Context, email, password string) (*model.Student, string, error) {
	normalized := strings.ToLower(strings.TrimSpace(email))

	student, err := s.studentRepo.GetStudentByEmail(ctx, normalized)
	if err != nil {
		// Unknown email and wrong password answer the same way.
		if errors.Is(err, model.ErrStudentNotFound) {
			return nil, "", model.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !pass.VerifyPassword(student.PasswordHash, password) {
		return nil, "", model.ErrInvalidCredentials
	}

	sessionToken, err := token.Sign(student.ID.String(), student.Email, s.jwtConfig.SecretKey(), s.jwtConfig.TokenDuration())
	if err != nil {
		return nil, "", err
	}

	return student, sessionToken, nil
}
