package dashboard

import (
	"context"
	"log"

	"student_portal_backend/internal/model"
)

// Overview - assembles the dashboard view model for a student.
// The student lookup is the only fatal step. Each of the four record
// fetches degrades to an empty slice when its table is unavailable,
// so a partially provisioned database still renders a page.
func (s *serv) Overview(ctx context.Context, email string) (*model.Dashboard, error) {
	student, err := s.studentRepo.GetStudentByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	dashboard := &model.Dashboard{
		Student:         *student,
		Fees:            []model.Fee{},
		Enrollments:     []model.Enrollment{},
		LecturerCourses: []model.LecturerCourse{},
		LecturerTAs:     []model.LecturerTA{},
	}

	fees, err := s.feeRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		log.Printf("dashboard: fee lookup failed: %v", err)
	} else {
		dashboard.Fees = fees
	}

	enrollments, err := s.enrollmentRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		log.Printf("dashboard: enrollment lookup failed: %v", err)
	} else {
		dashboard.Enrollments = enrollments
	}

	lecturerCourses, err := s.assignmentRepo.ListLecturerCourses(ctx)
	if err != nil {
		log.Printf("dashboard: lecturer-course lookup failed: %v", err)
	} else {
		dashboard.LecturerCourses = lecturerCourses
	}

	lecturerTAs, err := s.assignmentRepo.ListLecturerTAs(ctx)
	if err != nil {
		log.Printf("dashboard: lecturer-TA lookup failed: %v", err)
	} else {
		dashboard.LecturerTAs = lecturerTAs
	}

	return dashboard, nil
}
