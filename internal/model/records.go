package model

import (
	"time"

	"github.com/google/uuid"
)

type Fee struct {
	ID           int
	StudentID    uuid.UUID
	Amount       float64
	PaymentDate  time.Time
	Semester     string
	AcademicYear string
	Status       string
}

// Enrollment - a course enrollment row joined with its course.
type Enrollment struct {
	ID             int
	StudentID      uuid.UUID
	CourseCode     string
	CourseName     string
	Credits        int
	Semester       string
	AcademicYear   string
	Grade          string
	EnrollmentDate time.Time
}

// LecturerCourse - a lecturer-course assignment joined with lecturer and course.
type LecturerCourse struct {
	ID                int
	LecturerFirstName string
	LecturerLastName  string
	LecturerTitle     string
	CourseCode        string
	CourseName        string
	Semester          string
	AcademicYear      string
}

// LecturerTA - a lecturer-TA assignment joined with lecturer and teaching assistant.
type LecturerTA struct {
	ID                int
	LecturerFirstName string
	LecturerLastName  string
	TAFirstName       string
	TALastName        string
	TADepartment      string
	Semester          string
	AcademicYear      string
}
