package employeeapimodels

import (
	"net/mail"
	"time"

	"github.com/pkg/errors"

	"workorbit-backend/models"
)

type EmployeeData struct {
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Email      string            `json:"email"`
	Department models.Department `json:"department,omitempty"`
	JobTitle   string            `json:"job_title,omitempty"`
	Location   string            `json:"location,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	ManagerID  *string           `json:"manager_id,omitempty"`
	Bio        string            `json:"bio,omitempty"`
}

func (r EmployeeData) Validate() error {
	if r.FirstName == "" || r.LastName == "" || r.Email == "" {
		return errors.New("missing required fields")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email has invalid format")
	}
	if r.Department != "" && !r.Department.IsValid() {
		return errors.New("invalid department")
	}
	return nil
}

type ManagerView struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type DocumentView struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type EmployeeView struct {
	ID         string            `json:"id"`
	FirstName  string            `json:"first_name"`
	LastName   string            `json:"last_name"`
	Email      string            `json:"email"`
	Department models.Department `json:"department,omitempty"`
	JobTitle   string            `json:"job_title,omitempty"`
	Location   string            `json:"location,omitempty"`
	Skills     []string          `json:"skills,omitempty"`
	ManagerID  *string           `json:"manager_id,omitempty"`
	Manager    *ManagerView      `json:"manager,omitempty"`
	Bio        string            `json:"bio,omitempty"`
	Documents  []DocumentView    `json:"documents,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}
