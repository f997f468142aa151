package dashboard

import auth "student_portal_backend/internal/api/dto/auth"

type FeeRow struct {
	ID           int     `json:"id"`
	Amount       float64 `json:"amount"`
	PaymentDate  string  `json:"payment_date"`
	Semester     string  `json:"semester"`
	AcademicYear string  `json:"academic_year"`
	Status       string  `json:"status"`
}

type EnrollmentRow struct {
	ID             int    `json:"id"`
	CourseCode     string `json:"course_code"`
	CourseName     string `json:"course_name"`
	Credits        int    `json:"credits"`
	Semester       string `json:"semester"`
	AcademicYear   string `json:"academic_year"`
	Grade          string `json:"grade"`
	EnrollmentDate string `json:"enrollment_date"`
}

type LecturerCourseRow struct {
	ID                int    `json:"id"`
	LecturerFirstName string `json:"lecturer_first_name"`
	LecturerLastName  string `json:"lecturer_last_name"`
	LecturerTitle     string `json:"lecturer_title"`
	CourseCode        string `json:"course_code"`
	CourseName        string `json:"course_name"`
	Semester          string `json:"semester"`
	AcademicYear      string `json:"academic_year"`
}

type LecturerTARow struct {
	ID                int    `json:"id"`
	LecturerFirstName string `json:"lecturer_first_name"`
	LecturerLastName  string `json:"lecturer_last_name"`
	TAFirstName       string `json:"ta_first_name"`
	TALastName        string `json:"ta_last_name"`
	TADepartment      string `json:"ta_department"`
	Semester          string `json:"semester"`
	AcademicYear      string `json:"academic_year"`
}

type OverviewResponse struct {
	User            auth.UserResponse   `json:"user"`
	Fees            []FeeRow            `json:"fees"`
	Enrollments     []EnrollmentRow     `json:"enrollments"`
	LecturerCourses []LecturerCourseRow `json:"lecturer_courses"`
	LecturerTAs     []LecturerTARow     `json:"lecturer_tas"`
}
