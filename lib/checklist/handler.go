package checklisthandler

import (
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"workorbit-backend/db"
	checkliststore "workorbit-backend/lib/checklist/store"
	"workorbit-backend/lib/utils/apperror"
	checklistapimodels "workorbit-backend/models/api/checklist"
	dbmodels "workorbit-backend/models/db"
)

type Provider interface {
	Create(request checklistapimodels.CreateChecklistRequest, createdBy string) (checklistapimodels.ChecklistView, error)
	Update(checklistID string, request checklistapimodels.UpdateChecklistRequest) (checklistapimodels.ChecklistView, error)
	Delete(checklistID string) error
	GetList() (list []checklistapimodels.ChecklistView, err error)
	GetByID(checklistID string) (checklistapimodels.ChecklistView, error)
	AddItem(checklistID string, request checklistapimodels.ItemRequest) (checklistapimodels.ChecklistItemData, error)
	UpdateItem(checklistID, key string, request checklistapimodels.ItemRequest) (checklistapimodels.ChecklistItemData, error)
	DeleteItem(checklistID, key string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		checklistStore: checkliststore.NewInstance(db.DB),
	}
}

type impl struct {
	checklistStore checkliststore.Provider
}

func (i impl) Create(request checklistapimodels.CreateChecklistRequest, createdBy string) (checklistapimodels.ChecklistView, error) {
	rec := dbmodels.Checklist{
		Title:       request.Title,
		Description: request.Description,
		Items:       toItemList(request.Items),
		CreatedBy:   createdBy,
	}
	id, err := i.checklistStore.Create(rec)
	if err != nil {
		log.WithField("title", request.Title).WithError(err).Error("checklist create error")
		return checklistapimodels.ChecklistView{}, err
	}
	return i.GetByID(id)
}

func (i impl) Update(checklistID string, request checklistapimodels.UpdateChecklistRequest) (checklistapimodels.ChecklistView, error) {
	logger := log.WithField("checklist_id", checklistID)
	rec, err := i.getRec(checklistID)
	if err != nil {
		return checklistapimodels.ChecklistView{}, err
	}
	updMap := map[string]interface{}{}
	if request.Title != nil {
		updMap["title"] = *request.Title
	}
	if request.Description != nil {
		updMap["description"] = *request.Description
	}
	if request.Items != nil {
		// wholesale replacement, not a merge
		updMap["items"] = toItemList(*request.Items)
	}
	if len(updMap) != 0 {
		if err := i.checklistStore.Update(rec.ID, updMap); err != nil {
			logger.WithError(err).Error("checklist update error")
			return checklistapimodels.ChecklistView{}, err
		}
	}
	return i.GetByID(checklistID)
}

// Delete is unconditional; onboarding instances keep their own item
// snapshots and are not touched.
func (i impl) Delete(checklistID string) error {
	rec, err := i.getRec(checklistID)
	if err != nil {
		return err
	}
	if err := i.checklistStore.Delete(rec.ID); err != nil {
		log.WithField("checklist_id", checklistID).WithError(err).Error("checklist delete error")
		return err
	}
	return nil
}

func (i impl) GetList() (list []checklistapimodels.ChecklistView, err error) {
	recs, err := i.checklistStore.GetList()
	if err != nil {
		log.WithError(err).Error("checklist list error")
		return nil, err
	}
	list = make([]checklistapimodels.ChecklistView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByID(checklistID string) (checklistapimodels.ChecklistView, error) {
	rec, err := i.getRec(checklistID)
	if err != nil {
		return checklistapimodels.ChecklistView{}, err
	}
	return rec.ToModel(), nil
}

func (i impl) AddItem(checklistID string, request checklistapimodels.ItemRequest) (checklistapimodels.ChecklistItemData, error) {
	rec, err := i.getRec(checklistID)
	if err != nil {
		return checklistapimodels.ChecklistItemData{}, err
	}
	newItem := dbmodels.ChecklistItem{
		Key:   uuid.NewString(),
		Title: request.Title,
	}
	if request.RequiresApproval != nil {
		newItem.RequiresApproval = *request.RequiresApproval
	}
	items := append(rec.Items, newItem)
	if err := i.checklistStore.SetItems(rec.ID, items); err != nil {
		log.WithField("checklist_id", checklistID).WithError(err).Error("checklist item add error")
		return checklistapimodels.ChecklistItemData{}, err
	}
	return checklistapimodels.ChecklistItemData{
		Key:              newItem.Key,
		Title:            newItem.Title,
		RequiresApproval: newItem.RequiresApproval,
	}, nil
}

func (i impl) UpdateItem(checklistID, key string, request checklistapimodels.ItemRequest) (checklistapimodels.ChecklistItemData, error) {
	rec, err := i.getRec(checklistID)
	if err != nil {
		return checklistapimodels.ChecklistItemData{}, err
	}
	updated := dbmodels.ChecklistItem{}
	found := false
	items := make(dbmodels.ChecklistItemList, 0, len(rec.Items))
	for _, item := range rec.Items {
		if item.Key == key {
			if request.Title != "" {
				item.Title = request.Title
			}
			if request.RequiresApproval != nil {
				item.RequiresApproval = *request.RequiresApproval
			}
			updated = item
			found = true
		}
		items = append(items, item)
	}
	if !found {
		return checklistapimodels.ChecklistItemData{}, apperror.NewNotFound("item not found")
	}
	if err := i.checklistStore.SetItems(rec.ID, items); err != nil {
		log.WithField("checklist_id", checklistID).WithError(err).Error("checklist item update error")
		return checklistapimodels.ChecklistItemData{}, err
	}
	return checklistapimodels.ChecklistItemData{
		Key:              updated.Key,
		Title:            updated.Title,
		RequiresApproval: updated.RequiresApproval,
	}, nil
}

func (i impl) DeleteItem(checklistID, key string) error {
	rec, err := i.getRec(checklistID)
	if err != nil {
		return err
	}
	items := make(dbmodels.ChecklistItemList, 0, len(rec.Items))
	for _, item := range rec.Items {
		if item.Key != key {
			items = append(items, item)
		}
	}
	if len(items) == len(rec.Items) {
		return apperror.NewNotFound("item not found")
	}
	if err := i.checklistStore.SetItems(rec.ID, items); err != nil {
		log.WithField("checklist_id", checklistID).WithError(err).Error("checklist item delete error")
		return err
	}
	return nil
}

func (i impl) getRec(checklistID string) (*dbmodels.Checklist, error) {
	rec, err := i.checklistStore.GetByID(checklistID)
	if err != nil {
		log.WithField("checklist_id", checklistID).WithError(err).Error("checklist lookup error")
		return nil, err
	}
	if rec == nil {
		return nil, apperror.NewNotFound("checklist not found")
	}
	return rec, nil
}

func toItemList(items []checklistapimodels.ChecklistItemData) dbmodels.ChecklistItemList {
	list := make(dbmodels.ChecklistItemList, 0, len(items))
	for _, item := range items {
		key := item.Key
		if key == "" {
			key = uuid.NewString()
		}
		list = append(list, dbmodels.ChecklistItem{
			Key:              key,
			Title:            item.Title,
			RequiresApproval: item.RequiresApproval,
		})
	}
	return list
}
