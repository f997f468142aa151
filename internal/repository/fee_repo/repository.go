package fee_repo

import (
	"context"

	"student_portal_backend/internal/model"
	"student_portal_backend/internal/repository"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table           = "fees"
	colID           = "id"
	colStudentID    = "student_id"
	colAmount       = "amount"
	colPaymentDate  = "payment_date"
	colSemester     = "semester"
	colAcademicYear = "academic_year"
	colStatus       = "status"
)

type repo struct {
	dbc *pgxpool.Pool
}

func NewFeeRepository(dbc *pgxpool.Pool) repository.FeeRepository {
	return &repo{
		dbc: dbc,
	}
}

// ListByStudent - fee records for a student, newest payment first.
func (r *repo) ListByStudent(ctx context.Context, studentID uuid.UUID) ([]model.Fee, error) {
	query := sq.Select(colID, colStudentID, colAmount, colPaymentDate, colSemester, colAcademicYear, colStatus).
		From(table).
		Where(sq.Eq{colStudentID: studentID}).
		OrderBy(colPaymentDate + " DESC").
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

	fees := make([]model.Fee, 0)
	for rows.Next() {
		var fee model.Fee
		err = rows.Scan(&fee.ID, &fee.StudentID, &fee.Amount, &fee.PaymentDate, &fee.Semester, &fee.AcademicYear, &fee.Status)
		if err != nil {
			return nil, err
		}
		fees = append(fees, fee)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fees, nil
}
