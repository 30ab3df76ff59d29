package onboardinghandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"workorbit-backend/lib/utils/apperror"
	"workorbit-backend/models"
	onboardingapimodels "workorbit-backend/models/api/onboarding"
	dbmodels "workorbit-backend/models/db"
)

type stubOnboardingStore struct {
	recs map[string]dbmodels.OnboardingInstance //by id
	seq  int
}

func newStubOnboardingStore() *stubOnboardingStore {
	return &stubOnboardingStore{recs: map[string]dbmodels.OnboardingInstance{}}
}

func (s *stubOnboardingStore) Create(rec dbmodels.OnboardingInstance) (string, error) {
	s.seq++
	rec.ID = fmt.Sprintf("inst-%d", s.seq)
	s.recs[rec.ID] = rec
	return rec.ID, nil
}

func (s *stubOnboardingStore) GetByPair(employeeID, checklistID string) (*dbmodels.OnboardingInstance, error) {
	for _, rec := range s.recs {
		if rec.EmployeeID == employeeID && rec.ChecklistID == checklistID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *stubOnboardingStore) GetListByEmployee(employeeID string) ([]dbmodels.OnboardingInstance, error) {
	list := []dbmodels.OnboardingInstance{}
	for _, rec := range s.recs {
		if rec.EmployeeID == employeeID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (s *stubOnboardingStore) SetItems(instanceID string, items dbmodels.OnboardingItemList) error {
	rec := s.recs[instanceID]
	rec.ItemsStatus = items
	s.recs[instanceID] = rec
	return nil
}

type stubEmployeeExist struct {
	known map[string]bool
}

func (s *stubEmployeeExist) Create(rec dbmodels.Employee) (string, error) { return rec.ID, nil }
func (s *stubEmployeeExist) Update(employeeID string, updMap map[string]interface{}) error {
	return nil
}
func (s *stubEmployeeExist) DeleteWithLogin(employeeID string) error { return nil }
func (s *stubEmployeeExist) GetList() ([]dbmodels.Employee, error)   { return nil, nil }
func (s *stubEmployeeExist) GetByID(employeeID string) (*dbmodels.Employee, error) {
	return nil, nil
}
func (s *stubEmployeeExist) FindByEmail(email string) (*dbmodels.Employee, error) {
	return nil, nil
}
func (s *stubEmployeeExist) Exist(employeeID string) (bool, error) {
	return s.known[employeeID], nil
}
func (s *stubEmployeeExist) HasReports(employeeID string) (bool, error) { return false, nil }

type stubChecklistByID struct {
	recs map[string]dbmodels.Checklist
}

func (s *stubChecklistByID) Create(rec dbmodels.Checklist) (string, error) { return rec.ID, nil }
func (s *stubChecklistByID) Update(checklistID string, updMap map[string]interface{}) error {
	return nil
}
func (s *stubChecklistByID) Delete(checklistID string) error        { return nil }
func (s *stubChecklistByID) GetList() ([]dbmodels.Checklist, error) { return nil, nil }
func (s *stubChecklistByID) GetByID(checklistID string) (*dbmodels.Checklist, error) {
	rec, ok := s.recs[checklistID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
func (s *stubChecklistByID) SetItems(checklistID string, items dbmodels.ChecklistItemList) error {
	return nil
}

func newTestImpl() (impl, *stubOnboardingStore, *stubEmployeeExist, *stubChecklistByID) {
	onboarding := newStubOnboardingStore()
	employees := &stubEmployeeExist{known: map[string]bool{"emp-1": true}}
	checklist := dbmodels.Checklist{
		Title: "Engineering onboarding",
		Items: dbmodels.ChecklistItemList{
			{Key: "nda", Title: "Sign NDA", RequiresApproval: true},
			{Key: "laptop", Title: "Receive laptop"},
		},
	}
	checklist.ID = "cl-1"
	checklists := &stubChecklistByID{recs: map[string]dbmodels.Checklist{"cl-1": checklist}}
	i := impl{
		onboardingStore: onboarding,
		employeeStore:   employees,
		checklistStore:  checklists,
	}
	return i, onboarding, employees, checklists
}

func TestAssign(t *testing.T) {
	t.Run(`snapshot check`, func(t *testing.T) {
		i, store, _, checklists := newTestImpl()
		view, err := i.Assign("emp-1", "cl-1")
		require.Nil(t, err)
		require.Equal(t, "emp-1", view.EmployeeID)
		require.Equal(t, "cl-1", view.ChecklistID)
		require.Len(t, view.ItemsStatus, 2)
		for _, item := range view.ItemsStatus {
			require.Equal(t, models.OnboardingItemPending, item.Status)
		}

		// later template edits must not leak into the snapshot
		rec := checklists.recs["cl-1"]
		rec.Items = dbmodels.ChecklistItemList{{Key: "other", Title: "Other"}}
		checklists.recs["cl-1"] = rec
		list, err := i.GetListByEmployee("emp-1")
		require.Nil(t, err)
		require.Len(t, list[0].ItemsStatus, 2)
		require.Len(t, store.recs, 1)
	})

	t.Run(`duplicate pair check`, func(t *testing.T) {
		i, _, _, _ := newTestImpl()
		_, err := i.Assign("emp-1", "cl-1")
		require.Nil(t, err)
		_, err = i.Assign("emp-1", "cl-1")
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeDuplicate, apperror.GetCode(err))
	})

	t.Run(`unknown employee check`, func(t *testing.T) {
		i, _, _, _ := newTestImpl()
		_, err := i.Assign("missing", "cl-1")
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})

	t.Run(`unknown checklist check`, func(t *testing.T) {
		i, _, _, _ := newTestImpl()
		_, err := i.Assign("emp-1", "missing")
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})
}

func TestItemMutations(t *testing.T) {
	t.Run(`update stamps author and time`, func(t *testing.T) {
		i, _, _, _ := newTestImpl()
		_, err := i.Assign("emp-1", "cl-1")
		require.Nil(t, err)

		comment := "signed and returned"
		item, err := i.UpdateItemStatus("emp-1", "nda", onboardingapimodels.UpdateItemRequest{
			Status:  models.OnboardingItemDone,
			Comment: &comment,
		}, "user-9")
		require.Nil(t, err)
		require.Equal(t, models.OnboardingItemDone, item.Status)
		require.Equal(t, "signed and returned", item.Comment)
		require.Equal(t, "user-9", item.UpdatedBy)
		require.NotNil(t, item.UpdatedAt)
	})

	t.Run(`approve forces approved`, func(t *testing.T) {
		i, _, _, _ := newTestImpl()
		_, err := i.Assign("emp-1", "cl-1")
		require.Nil(t, err)

		// approval straight from pending is allowed
		item, err := i.ApproveItem("emp-1", "laptop", "user-9")
		require.Nil(t, err)
		require.Equal(t, models.OnboardingItemApproved, item.Status)
		require.Equal(t, "user-9", item.UpdatedBy)
	})

	t.Run(`unknown key check`, func(t *testing.T) {
		i, _, _, _ := newTestImpl()
		_, err := i.Assign("emp-1", "cl-1")
		require.Nil(t, err)

		_, err = i.UpdateItemStatus("emp-1", "missing", onboardingapimodels.UpdateItemRequest{
			Status: models.OnboardingItemDone,
		}, "user-9")
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})
}

func TestStatusSummary(t *testing.T) {
	i, store, _, _ := newTestImpl()
	_, err := i.Assign("emp-1", "cl-1")
	require.Nil(t, err)
	_, err = i.ApproveItem("emp-1", "nda", "user-9")
	require.Nil(t, err)

	list, err := i.GetStatusSummary("emp-1")
	require.Nil(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "cl-1", list[0].ChecklistID)
	require.Len(t, list[0].Items, 2)

	statusByKey := map[string]models.OnboardingItemStatus{}
	for _, item := range list[0].Items {
		statusByKey[item.Key] = item.Status
	}
	require.Equal(t, models.OnboardingItemApproved, statusByKey["nda"])
	require.Equal(t, models.OnboardingItemPending, statusByKey["laptop"])
	require.Len(t, store.recs, 1)
}
