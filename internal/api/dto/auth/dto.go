package auth

type RegisterRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Program     string `json:"program"`
	YearOfStudy int    `json:"year_of_study"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse - the account as returned to the client. No password hash.
type UserResponse struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Program     string `json:"program"`
	YearOfStudy int    `json:"year_of_study"`
}

type RegisterResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
