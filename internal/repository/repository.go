package repository

import (
	"context"

	"student_portal_backend/internal/model"

	"github.com/google/uuid"
)

type StudentRepository interface {
	CreateStudent(ctx context.Context, student *model.Student) error
	GetStudentByEmail(ctx context.Context, email string) (*model.Student, error)
}

type FeeRepository interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Fee, error)
}

type EnrollmentRepository interface {
	ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Enrollment, error)
}

type AssignmentRepository interface {
	ListLecturerCourses(ctx context.Context) ([]model.LecturerCourse, error)
	ListLecturerTAs(ctx context.Context) ([]model.LecturerTA, error)
}
