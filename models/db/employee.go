package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"workorbit-backend/models"
	employeeapimodels "workorbit-backend/models/api/employee"
)

type SkillList []string

func (j SkillList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *SkillList) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type Employee struct {
	BaseModel
	FirstName  string            `gorm:"type:varchar(150)"`
	LastName   string            `gorm:"type:varchar(150)"`
	Email      string            `gorm:"type:varchar(255);uniqueIndex"`
	Department models.Department `gorm:"type:varchar(100);index"`
	JobTitle   string            `gorm:"type:varchar(255)"`
	Location   string            `gorm:"type:varchar(255)"`
	Skills     SkillList         `gorm:"type:jsonb"`
	ManagerID  *string           `gorm:"type:varchar(36);index"`
	Manager    *Employee         `gorm:"foreignKey:ManagerID"`
	Bio        string            `gorm:"type:text"`
	Documents  []FileStorage     `gorm:"foreignKey:EmployeeID"`
}

func (r Employee) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

func (r Employee) ToModel() employeeapimodels.EmployeeView {
	view := employeeapimodels.EmployeeView{
		ID:         r.ID,
		FirstName:  r.FirstName,
		LastName:   r.LastName,
		Email:      r.Email,
		Department: r.Department,
		JobTitle:   r.JobTitle,
		Location:   r.Location,
		Skills:     r.Skills,
		ManagerID:  r.ManagerID,
		Bio:        r.Bio,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.Manager != nil {
		view.Manager = &employeeapimodels.ManagerView{
			ID:        r.Manager.ID,
			FirstName: r.Manager.FirstName,
			LastName:  r.Manager.LastName,
			Email:     r.Manager.Email,
		}
	}
	for _, doc := range r.Documents {
		view.Documents = append(view.Documents, doc.ToModel())
	}
	return view
}
