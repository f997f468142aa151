package assignment_repo

import (
	"context"

	"student_portal_backend/internal/model"
	"student_portal_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	lecturerCoursesTable = "lecturer_courses"
	lecturerTAsTable     = "lecturer_tas"
	lecturersTable       = "lecturers"
	coursesTable         = "courses"
	tasTable             = "teaching_assistants"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewAssignmentRepository(dbc *pgxpool.Pool) repository.AssignmentRepository {
	return &repo{
		dbc: dbc,
	}
}

// ListLecturerCourses - all lecturer-course assignments joined with
// lecturer and course, newest academic year first.
func (r *repo) ListLecturerCourses(ctx context.Context) ([]model.LecturerCourse, error) {
	query := sq.Select(
		"lc.id",
		"l.first_name", "l.last_name", "l.title",
		"c.code", "c.name",
		"lc.semester", "lc.academic_year").
		From(lecturerCoursesTable + " lc").
		Join(lecturersTable + " l ON lc.lecturer_id = l.id").
		Join(coursesTable + " c ON lc.course_id = c.id").
		OrderBy("lc.academic_year DESC").
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

	assignments := make([]model.LecturerCourse, 0)
	for rows.Next() {
		var assignment model.LecturerCourse
		err = rows.Scan(
			&assignment.ID,
			&assignment.LecturerFirstName, &assignment.LecturerLastName, &assignment.LecturerTitle,
			&assignment.CourseCode, &assignment.CourseName,
			&assignment.Semester, &assignment.AcademicYear)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

// ListLecturerTAs - all lecturer-TA assignments joined with lecturer
// and teaching assistant, newest academic year first.
func (r *repo) ListLecturerTAs(ctx context.Context) ([]model.LecturerTA, error) {
	query := sq.Select(
		"lt.id",
		"l.first_name", "l.last_name",
		"ta.first_name", "ta.last_name", "ta.department",
		"lt.semester", "lt.academic_year").
		From(lecturerTAsTable + " lt").
		Join(lecturersTable + " l ON lt.lecturer_id = l.id").
		Join(tasTable + " ta ON lt.teaching_assistant_id = ta.id").
		OrderBy("lt.academic_year DESC").
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

	assignments := make([]model.LecturerTA, 0)
	for rows.Next() {
		var assignment model.LecturerTA
		err = rows.Scan(
			&assignment.ID,
			&assignment.LecturerFirstName, &assignment.LecturerLastName,
			&assignment.TAFirstName, &assignment.TALastName, &assignment.TADepartment,
			&assignment.Semester, &assignment.AcademicYear)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, assignment)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}
