package checkliststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	dbmodels "workorbit-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Checklist) (string, error)
	Update(checklistID string, updMap map[string]interface{}) error
	Delete(checklistID string) error
	GetList() (list []dbmodels.Checklist, err error)
	GetByID(checklistID string) (rec *dbmodels.Checklist, err error)
	SetItems(checklistID string, items dbmodels.ChecklistItemList) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Checklist) (string, error) {
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(checklistID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Checklist{}).
		Where("id = ?", checklistID).
		Updates(updMap).
		Error
}

func (i impl) Delete(checklistID string) error {
	return i.db.
		Where("id = ?", checklistID).
		Delete(&dbmodels.Checklist{}).
		Error
}

func (i impl) GetList() (list []dbmodels.Checklist, err error) {
	err = i.db.Model(dbmodels.Checklist{}).
		Order("created_at desc").
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

func (i impl) GetByID(checklistID string) (rec *dbmodels.Checklist, err error) {
	err = i.db.Model(dbmodels.Checklist{}).
		Where("id = ?", checklistID).
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

func (i impl) SetItems(checklistID string, items dbmodels.ChecklistItemList) error {
	return i.db.
		Model(&dbmodels.Checklist{}).
		Where("id = ?", checklistID).
		Update("items", items).
		Error
}
