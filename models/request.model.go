package models

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// RegisterRequest is the admin payload for creating a learner account
type RegisterRequest struct {
	EmployeeID      string `json:"employeeId" validate:"required"`
	Name            string `json:"name" validate:"required,min=2"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	Role            string `json:"role"`
	Department      string `json:"department"`
	ExperienceLevel string `json:"experienceLevel" validate:"omitempty,oneof=beginner intermediate advanced"`
}
