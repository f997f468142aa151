package model

// Dashboard - read-only view model for the student dashboard page.
// The four record slices are independently fetched and may be empty
// when the underlying table is not provisioned yet.
type Dashboard struct {
	Student         Student
	Fees            []Fee
	Enrollments     []Enrollment
	LecturerCourses []LecturerCourse
	LecturerTAs     []LecturerTA
}
