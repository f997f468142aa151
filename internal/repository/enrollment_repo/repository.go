package enrollment_repo

import (
	"context"

	"student_portal_backend/internal/model"
	"student_portal_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "enrollments"
	coursesTable = "courses"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewEnrollmentRepository(dbc *pgxpool.Pool) repository.EnrollmentRepository {
	return &repo{
		dbc: dbc,
	}
}

// ListByStudent - enrollments joined with their course, newest first.
func (r *repo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Enrollment, error) {
	query := sq.Select(
		"e.id", "e.student_id",
		"c.code", "c.name", "c.credits",
		"e.semester", "e.academic_year", "e.grade", "e.enrollment_date").
		From(table + " e").
		Join(coursesTable + " c ON e.course_id = c.id").
		Where(sq.Eq{"e.student_id": studentID}).
		OrderBy("e.enrollment_date DESC").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.dbc.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	enrollments := make([]model.Enrollment, 0)
	for rows.Next() {
		var enrollment model.Enrollment
		var grade *string // grade is null until the course is graded
		err = rows.Scan(
			&enrollment.ID, &enrollment.StudentID,
			&enrollment.CourseCode, &enrollment.CourseName, &enrollment.Credits,
			&enrollment.Semester, &enrollment.AcademicYear, &grade, &enrollment.EnrollmentDate)
		if err != nil {
			return nil, err
		}
		if grade != nil {
			enrollment.Grade = *grade
		}
		enrollments = append(enrollments, enrollment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return enrollments, nil
}
