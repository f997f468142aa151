package student_repo

import (
	"context"
	"errors"

	"student_portal_backend/internal/model"
	"student_portal_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "students"
	colID           = "id"
	colFirstName    = "first_name"
	colLastName     = "last_name"
	colEmail        = "email"
	colProgram      = "program"
	colYearOfStudy  = "year_of_study"
	colPasswordHash = "password_hash"
)

type repo struct {
	dbc    *pgxpool.Pool
	getter *trmpgx.CtxGetter
}

func NewStudentRepository(dbc *pgxpool.Pool) repository.StudentRepository {
	return &repo{
		dbc:    dbc,
		getter: trmpgx.DefaultCtxGetter,
	}
}

// CreateStudent - inserts a new student row.
// Runs inside the ambient transaction when one is present in the context.
func (r *repo) CreateStudent(ctx context.Context, student *model.Student) error {
	query := sq.Insert(table).
		Columns(colID, colFirstName, colLastName, colEmail, colProgram, colYearOfStudy, colPasswordHash).
		Values(student.ID, student.FirstName, student.LastName, student.Email, student.Program, student.YearOfStudy, student.PasswordHash).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	return nil
}

// GetStudentByEmail - returns a student by email.
// Returns model.ErrStudentNotFound when no row matches.
func (r *repo) GetStudentByEmail(ctx context.Context, email string) (*model.Student, error) {
	query := sq.Select(colID, colFirstName, colLastName, colEmail, colProgram, colYearOfStudy, colPasswordHash).
		From(table).
		Where(sq.Eq{colEmail: email}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var student model.Student
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).
		Scan(&student.ID, &student.FirstName, &student.LastName, &student.Email, &student.Program, &student.YearOfStudy, &student.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrStudentNotFound
		}
		return nil, err
	}

	return &student, nil
}
