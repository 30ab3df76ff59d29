package authapimodels

import (
	"net/mail"

	"github.com/pkg/errors"

	"workorbit-backend/models"
	employeeapimodels "workorbit-backend/models/api/employee"
)

type RegisterRequest struct {
	Email      string          `json:"email"`
	Password   string          `json:"password"`
	Role       models.UserRole `json:"role"`
	EmployeeID *string         `json:"employee_id,omitempty"`
}

func (r RegisterRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has invalid format")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	if !r.Role.IsValid() {
		return errors.New("unknown role")
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has invalid format")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type UserView struct {
	ID         string          `json:"id"`
	Email      string          `json:"email"`
	Role       models.UserRole `json:"role"`
	EmployeeID *string         `json:"employee_id,omitempty"`
	// linked employee profile, populated on the profile endpoint
	Employee *employeeapimodels.EmployeeView `json:"employee,omitempty"`
}

type JWTResponse struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

type SeedAdminResponse struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
