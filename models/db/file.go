package dbmodels

import (
	employeeapimodels "workorbit-backend/models/api/employee"
)

type FileStorage struct {
	BaseModel
	EmployeeID  string `gorm:"type:varchar(36);index"`
	FileName    string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(150)"`
	ObjectKey   string `gorm:"type:varchar(255)"`
	UploadedBy  string `gorm:"type:varchar(36)"`
}

func (r FileStorage) ToModel() employeeapimodels.DocumentView {
	return employeeapimodels.DocumentView{
		ID:          r.ID,
		FileName:    r.FileName,
		ContentType: r.ContentType,
		UploadedAt:  r.CreatedAt,
	}
}
