package converter

import (
	auth "student_portal_backend/internal/api/dto/auth"
	"student_portal_backend/internal/model"
)

func RegisterRequestToRegistration(req *auth.RegisterRequest) *model.Registration {
	return &model.Registration{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Program:     req.Program,
		YearOfStudy: req.YearOfStudy,
		Password:    req.Password,
	}
}

func ToUserResponse(student model.Student) auth.UserResponse {
	return auth.UserResponse{
		ID:          student.ID.String(),
		FirstName:   student.FirstName,
		LastName:    student.LastName,
		Email:       student.Email,
		Program:     student.Program,
		YearOfStudy: student.YearOfStudy,
	}
}
