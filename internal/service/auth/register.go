package auth

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"student_portal_backend/internal/model"
	"student_portal_backend/pkg/pass"
	"student_portal_backend/pkg/token"

	"github.com/google/uuid"
)

var emailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const (
	minPasswordLength = 6
	minYearOfStudy    = 1
	maxYearOfStudy    = 10
)

func (s *serv) Register(ctx context.Context, reg *model.Registration) (*model.Student, string, error) {
	// Validation order is fixed: the first failing check wins.
	if reg.FirstName == "" || reg.LastName == "" || reg.Email == "" || reg.Program == "" || reg.Password == "" {
		return nil, "", model.ErrMissingFields
	}

	email := strings.ToLower(strings.TrimSpace(reg.Email))
	if !emailRegexp.MatchString(email) {
		return nil, "", model.ErrInvalidEmail
	}

	if len(reg.Password) < minPasswordLength {
		return nil, "", model.ErrWeakPassword
	}

	if reg.YearOfStudy < minYearOfStudy || reg.YearOfStudy > maxYearOfStudy {
		return nil, "", model.ErrInvalidYear
	}

	passwordHash, err := pass.HashPassword(reg.Password)
	if err != nil {
		return nil, "", err
	}

	student := &model.Student{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(reg.FirstName),
		LastName:     strings.TrimSpace(reg.LastName),
		Email:        email,
		Program:      strings.TrimSpace(reg.Program),
		YearOfStudy:  reg.YearOfStudy,
		PasswordHash: passwordHash,
	}

	// Duplicate check and insert share one transaction so a concurrent
	// registration with the same email cannot slip between them.
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.studentRepo.GetStudentByEmail(ctx, email)
		if err == nil {
			return model.ErrDuplicateEmail
		}
		if !errors.Is(err, model.ErrStudentNotFound) {
			return err
		}

		return s.studentRepo.CreateStudent(ctx, student)
	})
	if err != nil {
		return nil, "", err
	}

	sessionToken, err := token.Sign(student.ID.String(), student.Email, s.jwtConfig.SecretKey(), s.jwtConfig.TokenDuration())
	if err != nil {
		return nil, "", err
	}

	return student, sessionToken, nil
}
