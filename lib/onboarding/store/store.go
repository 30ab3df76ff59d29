package onboardingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "workorbit-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.OnboardingInstance) (string, error)
	GetByPair(employeeID, checklistID string) (rec *dbmodels.OnboardingInstance, err error)
	GetListByEmployee(employeeID string) (list []dbmodels.OnboardingInstance, err error)
	SetItems(instanceID string, items dbmodels.OnboardingItemList) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OnboardingInstance) (string, error) {
	err := i.db.
		Create(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByPair(employeeID, checklistID string) (rec *dbmodels.OnboardingInstance, err error) {
	err = i.db.Model(dbmodels.OnboardingInstance{}).
		Where("employee_id = ? AND checklist_id = ?", employeeID, checklistID).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec, nil
}

func (i impl) GetListByEmployee(employeeID string) (list []dbmodels.OnboardingInstance, err error) {
	err = i.db.Model(dbmodels.OnboardingInstance{}).
		Where("employee_id = ?", employeeID).
		Preload("Checklist").
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) SetItems(instanceID string, items dbmodels.OnboardingItemList) error {
	return i.db.
		Model(&dbmodels.OnboardingInstance{}).
		Where("id = ?", instanceID).
		Update("items_status", items).
		Error
}
