package employeestore

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	dbmodels "workorbit-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Employee) (string, error)
	Update(employeeID string, updMap map[string]interface{}) error
	DeleteWithLogin(employeeID string) error
	GetList() (list []dbmodels.Employee, err error)
	GetByID(employeeID string) (rec *dbmodels.Employee, err error)
	FindByEmail(email string) (rec *dbmodels.Employee, err error)
	Exist(employeeID string) (bool, error)
	HasReports(employeeID string) (bool, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Employee) (string, error) {
	rec.Email = strings.ToLower(rec.Email)
	err := i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(employeeID string, updMap map[string]interface{}) error {
	return i.db.
		Model(&dbmodels.Employee{}).
		Where("id = ?", employeeID).
		Updates(updMap).
		Error
}

// DeleteWithLogin drops the employee and its linked login in one
// transaction.
func (i impl) DeleteWithLogin(employeeID string) error {
	return i.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("employee_id = ?", employeeID).
			Delete(&dbmodels.User{}).
			Error; err != nil {
			return err
		}
		return tx.
			Where("id = ?", employeeID).
			Delete(&dbmodels.Employee{}).
			Error
	})
}

func (i impl) GetList() (list []dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Preload(clause.Associations).
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

func (i impl) GetByID(employeeID string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("id = ?", employeeID).
		Preload(clause.Associations).
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

func (i impl) FindByEmail(email string) (rec *dbmodels.Employee, err error) {
	err = i.db.Model(dbmodels.Employee{}).
		Where("email = ?", strings.ToLower(email)).
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

func (i impl) Exist(employeeID string) (bool, error) {
	err := i.db.
		Where("id = ?", employeeID).
		First(&dbmodels.Employee{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (i impl) HasReports(employeeID string) (bool, error) {
	err := i.db.
		Where("manager_id = ?", employeeID).
		First(&dbmodels.Employee{}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
