package onboardinghandler

import (
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"workorbit-backend/db"
	checkliststore "workorbit-backend/lib/checklist/store"
	employeestore "workorbit-backend/lib/employee/store"
	onboardingstore "workorbit-backend/lib/onboarding/store"
	"workorbit-backend/lib/utils/apperror"
	"workorbit-backend/models"
	onboardingapimodels "workorbit-backend/models/api/onboarding"
	dbmodels "workorbit-backend/models/db"
)

type Provider interface {
	Assign(employeeID, checklistID string) (onboardingapimodels.InstanceView, error)
	GetListByEmployee(employeeID string) (list []onboardingapimodels.InstanceView, err error)
	UpdateItemStatus(employeeID, key string, request onboardingapimodels.UpdateItemRequest, updatedBy string) (onboardingapimodels.ItemStatusView, error)
	ApproveItem(employeeID, key, updatedBy string) (onboardingapimodels.ItemStatusView, error)
	GetStatusSummary(employeeID string) (list []onboardingapimodels.ChecklistSummary, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		onboardingStore: onboardingstore.NewInstance(db.DB),
		employeeStore:   employeestore.NewInstance(db.DB),
		checklistStore:  checkliststore.NewInstance(db.DB),
	}
}

type impl struct {
	onboardingStore onboardingstore.Provider
	employeeStore   employeestore.Provider
	checklistStore  checkliststore.Provider
}

// Assign snapshots the checklist items for the employee, all pending.
// The existence check is advisory under concurrency; the composite
// unique index on (employee_id, checklist_id) is the backstop.
func (i impl) Assign(employeeID, checklistID string) (onboardingapimodels.InstanceView, error) {
	logger := log.
		WithField("employee_id", employeeID).
		WithField("checklist_id", checklistID)
	exist, err := i.employeeStore.Exist(employeeID)
	if err != nil {
		logger.WithError(err).Error("onboarding assign: employee lookup error")
		return onboardingapimodels.InstanceView{}, err
	}
	if !exist {
		return onboardingapimodels.InstanceView{}, apperror.NewNotFound("employee not found")
	}
	checklist, err := i.checklistStore.GetByID(checklistID)
	if err != nil {
		logger.WithError(err).Error("onboarding assign: checklist lookup error")
		return onboardingapimodels.InstanceView{}, err
	}
	if checklist == nil {
		return onboardingapimodels.InstanceView{}, apperror.NewNotFound("checklist not found")
	}
	existing, err := i.onboardingStore.GetByPair(employeeID, checklistID)
	if err != nil {
		logger.WithError(err).Error("onboarding assign: pair lookup error")
		return onboardingapimodels.InstanceView{}, err
	}
	if existing != nil {
		return onboardingapimodels.InstanceView{}, apperror.NewDuplicate("onboarding already assigned for this checklist")
	}
	itemsStatus := make(dbmodels.OnboardingItemList, 0, len(checklist.Items))
	for _, item := range checklist.Items {
		itemsStatus = append(itemsStatus, dbmodels.OnboardingItem{
			Key:    item.Key,
			Title:  item.Title,
			Status: models.OnboardingItemPending,
		})
	}
	rec := dbmodels.OnboardingInstance{
		EmployeeID:  employeeID,
		ChecklistID: checklistID,
		ItemsStatus: itemsStatus,
	}
	id, err := i.onboardingStore.Create(rec)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return onboardingapimodels.InstanceView{}, apperror.NewDuplicate("onboarding already assigned for this checklist")
		}
		logger.WithError(err).Error("onboarding assign error")
		return onboardingapimodels.InstanceView{}, err
	}
	rec.ID = id
	rec.Checklist = checklist
	return rec.ToModel(), nil
}

func (i impl) GetListByEmployee(employeeID string) (list []onboardingapimodels.InstanceView, err error) {
	recs, err := i.onboardingStore.GetListByEmployee(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("onboarding list error")
		return nil, err
	}
	list = make([]onboardingapimodels.InstanceView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) UpdateItemStatus(employeeID, key string, request onboardingapimodels.UpdateItemRequest, updatedBy string) (onboardingapimodels.ItemStatusView, error) {
	return i.mutateItem(employeeID, key, updatedBy, func(item *dbmodels.OnboardingItem) {
		if request.Status != "" {
			item.Status = request.Status
		}
		if request.Comment != nil {
			item.Comment = *request.Comment
		}
	})
}

// ApproveItem forces approved regardless of the current state; a
// manager may approve before the employee marks the item done.
func (i impl) ApproveItem(employeeID, key, updatedBy string) (onboardingapimodels.ItemStatusView, error) {
	return i.mutateItem(employeeID, key, updatedBy, func(item *dbmodels.OnboardingItem) {
		item.Status = models.OnboardingItemApproved
	})
}

func (i impl) GetStatusSummary(employeeID string) (list []onboardingapimodels.ChecklistSummary, err error) {
	recs, err := i.onboardingStore.GetListByEmployee(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("onboarding summary error")
		return nil, err
	}
	list = make([]onboardingapimodels.ChecklistSummary, 0, len(recs))
	for _, rec := range recs {
		summary := onboardingapimodels.ChecklistSummary{
			ChecklistID: rec.ChecklistID,
			Items:       make([]onboardingapimodels.SummaryItem, 0, len(rec.ItemsStatus)),
		}
		if rec.Checklist != nil {
			summary.ChecklistTitle = rec.Checklist.Title
		}
		for _, item := range rec.ItemsStatus {
			summary.Items = append(summary.Items, onboardingapimodels.SummaryItem{
				Key:    item.Key,
				Title:  item.Title,
				Status: item.Status,
			})
		}
		list = append(list, summary)
	}
	return list, nil
}

// mutateItem finds the instance owning the key by scanning all of the
// employee's instances, applies the change and stamps updated_by/at.
func (i impl) mutateItem(employeeID, key, updatedBy string, mutate func(item *dbmodels.OnboardingItem)) (onboardingapimodels.ItemStatusView, error) {
	logger := log.
		WithField("employee_id", employeeID).
		WithField("item_key", key)
	recs, err := i.onboardingStore.GetListByEmployee(employeeID)
	if err != nil {
		logger.WithError(err).Error("onboarding item: list error")
		return onboardingapimodels.ItemStatusView{}, err
	}
	for _, rec := range recs {
		if !rec.ItemsStatus.HasKey(key) {
			continue
		}
		items := make(dbmodels.OnboardingItemList, len(rec.ItemsStatus))
		copy(items, rec.ItemsStatus)
		result := dbmodels.OnboardingItem{}
		for idx := range items {
			if items[idx].Key != key {
				continue
			}
			mutate(&items[idx])
			now := time.Now()
			items[idx].UpdatedBy = updatedBy
			items[idx].UpdatedAt = &now
			result = items[idx]
		}
		if err := i.onboardingStore.SetItems(rec.ID, items); err != nil {
			logger.WithError(err).Error("onboarding item update error")
			return onboardingapimodels.ItemStatusView{}, err
		}
		return dbmodels.ItemToModel(result), nil
	}
	return onboardingapimodels.ItemStatusView{}, apperror.NewNotFound("onboarding item not found for employee")
}
