package dbmodels

import (
	"workorbit-backend/models"
	authapimodels "workorbit-backend/models/api/auth"
)

type User struct {
	BaseModel
	Email        string          `gorm:"type:varchar(255);uniqueIndex"`
	PasswordHash string          `gorm:"type:varchar(128)"`
	Role         models.UserRole `gorm:"type:varchar(50);index"`
	EmployeeID   *string         `gorm:"type:varchar(36);index"`
}

func (r User) ToModel() authapimodels.UserView {
	return authapimodels.UserView{
		ID:         r.ID,
		Email:      r.Email,
		Role:       r.Role,
		EmployeeID: r.EmployeeID,
	}
}
