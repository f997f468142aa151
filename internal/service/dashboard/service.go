package dashboard

import (
	"student_portal_backend/internal/repository"
	"student_portal_backend/internal/service"
)

type serv struct {
	studentRepo    repository.StudentRepository
	feeRepo        repository.FeeRepository
	enrollmentRepo repository.EnrollmentRepository
	assignmentRepo repository.AssignmentRepository
}

func NewDashboardService(
	studentRepo repository.StudentRepository,
	feeRepo repository.FeeRepository,
	enrollmentRepo repository.EnrollmentRepository,
	assignmentRepo repository.AssignmentRepository,
) service.DashboardService {
	return &serv{
		studentRepo:    studentRepo,
		feeRepo:        feeRepo,
		enrollmentRepo: enrollmentRepo,
		assignmentRepo: assignmentRepo,
	}
}
