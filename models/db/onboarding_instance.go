package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"workorbit-backend/models"
	onboardingapimodels "workorbit-backend/models/api/onboarding"
)

type OnboardingItem struct {
	Key       string                      `json:"key"`
	Title     string                      `json:"title"`
	Status    models.OnboardingItemStatus `json:"status"`
	UpdatedBy string                      `json:"updated_by,omitempty"`
	UpdatedAt *time.Time                  `json:"updated_at,omitempty"`
	Comment   string                      `json:"comment,omitempty"`
}

type OnboardingItemList []OnboardingItem

func (j OnboardingItemList) Value() (driver.Value, error) {
	valueString, err := json.Marshal(j)
	return string(valueString), err
}

func (j *OnboardingItemList) Scan(value interface{}) error {
	if err := json.Unmarshal(value.([]byte), &j); err != nil {
		return err
	}
	return nil
}

func (j OnboardingItemList) HasKey(key string) bool {
	for _, item := range j {
		if item.Key == key {
			return true
		}
	}
	return false
}

// OnboardingInstance is an employee's point-in-time copy of a checklist;
// the snapshot never changes when the source template is edited.
type OnboardingInstance struct {
	BaseModel
	EmployeeID  string             `gorm:"type:varchar(36);index;uniqueIndex:idx_onboarding_pair"`
	ChecklistID string             `gorm:"type:varchar(36);uniqueIndex:idx_onboarding_pair"`
	Checklist   *Checklist         `gorm:"foreignKey:ChecklistID"`
	ItemsStatus OnboardingItemList `gorm:"type:jsonb"`
}

func (r OnboardingInstance) ToModel() onboardingapimodels.InstanceView {
	view := onboardingapimodels.InstanceView{
		ID:          r.ID,
		EmployeeID:  r.EmployeeID,
		ChecklistID: r.ChecklistID,
		ItemsStatus: make([]onboardingapimodels.ItemStatusView, 0, len(r.ItemsStatus)),
		CreatedAt:   r.CreatedAt,
	}
	if r.Checklist != nil {
		view.ChecklistTitle = r.Checklist.Title
	}
	for _, item := range r.ItemsStatus {
		view.ItemsStatus = append(view.ItemsStatus, ItemToModel(item))
	}
	return view
}

func ItemToModel(item OnboardingItem) onboardingapimodels.ItemStatusView {
	return onboardingapimodels.ItemStatusView{
		Key:       item.Key,
		Title:     item.Title,
		Status:    item.Status,
		UpdatedBy: item.UpdatedBy,
		UpdatedAt: item.UpdatedAt,
		Comment:   item.Comment,
	}
}
