package converter

import (
	"time"

	dashboard "student_portal_backend/internal/api/dto/dashboard"
	"student_portal_backend/internal/model"
)

const dateLayout = time.RFC3339

func ToOverviewResponse(d *model.Dashboard) dashboard.OverviewResponse {
	return dashboard.OverviewResponse{
		User:            ToUserResponse(d.Student),
		Fees:            toFeeRows(d.Fees),
		Enrollments:     toEnrollmentRows(d.Enrollments),
		LecturerCourses: toLecturerCourseRows(d.LecturerCourses),
		LecturerTAs:     toLecturerTARows(d.LecturerTAs),
	}
}

func toFeeRows(fees []model.Fee) []dashboard.FeeRow {
	result := make([]dashboard.FeeRow, len(fees))
	for i, f := range fees {
		result[i] = dashboard.FeeRow{
			ID:           f.ID,
			Amount:       f.Amount,
			PaymentDate:  f.PaymentDate.Format(dateLayout),
			Semester:     f.Semester,
			AcademicYear: f.AcademicYear,
			Status:       f.Status,
		}
	}
	return result
}

func toEnrollmentRows(enrollments []model.Enrollment) []dashboard.EnrollmentRow {
	result := make([]dashboard.EnrollmentRow, len(enrollments))
	for i, e := range enrollments {
		result[i] = dashboard.EnrollmentRow{
			ID:             e.ID,
			CourseCode:     e.CourseCode,
			CourseName:     e.CourseName,
			Credits:        e.Credits,
			Semester:       e.Semester,
			AcademicYear:   e.AcademicYear,
			Grade:          e.Grade,
			EnrollmentDate: e.EnrollmentDate.Format(dateLayout),
		}
	}
	return result
}

func toLecturerCourseRows(assignments []model.LecturerCourse) []dashboard.LecturerCourseRow {
	result := make([]dashboard.LecturerCourseRow, len(assignments))
	for i, a := range assignments {
		result[i] = dashboard.LecturerCourseRow{
			ID:                a.ID,
			LecturerFirstName: a.LecturerFirstName,
			LecturerLastName:  a.LecturerLastName,
			LecturerTitle:     a.LecturerTitle,
			CourseCode:        a.CourseCode,
			CourseName:        a.CourseName,
			Semester:          a.Semester,
			AcademicYear:      a.AcademicYear,
		}
	}
	return result
}

func toLecturerTARows(assignments []model.LecturerTA) []dashboard.LecturerTARow {
	result := make([]dashboard.LecturerTARow, len(assignments))
	for i, a := range assignments {
		result[i] = dashboard.LecturerTARow{
			ID:                a.ID,
			LecturerFirstName: a.LecturerFirstName,
			LecturerLastName:  a.LecturerLastName,
			TAFirstName:       a.TAFirstName,
			TALastName:        a.TALastName,
			TADepartment:      a.TADepartment,
			Semester:          a.Semester,
			AcademicYear:      a.AcademicYear,
		}
	}
	return result
}
