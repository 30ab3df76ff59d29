package dbmodels

import (
	"database/sql/driver"
	"encoding/json"

	checklistapimodels "workorbit-backend/models/api/checklist"
)

type ChecklistItem struct {
	Key              string `json:"key"`
	Title            string `json:"title"`
	RequiresApproval bool   `json:"requires_approval"`
}

type ChecklistItemList []ChecklistItem

func (j ChecklistItemList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *ChecklistItemList) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

type Checklist struct {
	BaseModel
	Title       string            `gorm:"type:varchar(255)"`
	Description string            `gorm:"type:text"`
	Items       ChecklistItemList `gorm:"type:jsonb"`
	CreatedBy   string            `gorm:"type:varchar(36)"`
}

func (r Checklist) ToModel() checklistapimodels.ChecklistView {
	items := make([]checklistapimodels.ChecklistItemData, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, checklistapimodels.ChecklistItemData{
			Key:              item.Key,
			Title:            item.Title,
			RequiresApproval: item.RequiresApproval,
		})
	}
	return checklistapimodels.ChecklistView{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Items:       items,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}
