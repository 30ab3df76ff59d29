package checklisthandler

import (
	"testing"

	"github.com/stretchr/testify/require"

	"workorbit-backend/lib/utils/apperror"
	checklistapimodels "workorbit-backend/models/api/checklist"
	dbmodels "workorbit-backend/models/db"
)

type stubChecklistStore struct {
	recs map[string]dbmodels.Checklist //by id
}

func newStubChecklistStore() *stubChecklistStore {
	return &stubChecklistStore{recs: map[string]dbmodels.Checklist{}}
}

func (s *stubChecklistStore) Create(rec dbmodels.Checklist) (string, error) {
	if rec.ID == "" {
		rec.ID = "cl-1"
	}
	s.recs[rec.ID] = rec
	return rec.ID, nil
}

func (s *stubChecklistStore) Update(checklistID string, updMap map[string]interface{}) error {
	rec := s.recs[checklistID]
	if title, ok := updMap["title"].(string); ok {
		rec.Title = title
	}
	if description, ok := updMap["description"].(string); ok {
		rec.Description = description
	}
	if items, ok := updMap["items"].(dbmodels.ChecklistItemList); ok {
		rec.Items = items
	}
	s.recs[checklistID] = rec
	return nil
}

func (s *stubChecklistStore) Delete(checklistID string) error {
	delete(s.recs, checklistID)
	return nil
}

func (s *stubChecklistStore) GetList() ([]dbmodels.Checklist, error) {
	list := make([]dbmodels.Checklist, 0, len(s.recs))
	for _, rec := range s.recs {
		list = append(list, rec)
	}
	return list, nil
}

func (s *stubChecklistStore) GetByID(checklistID string) (*dbmodels.Checklist, error) {
	rec, ok := s.recs[checklistID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *stubChecklistStore) SetItems(checklistID string, items dbmodels.ChecklistItemList) error {
	rec := s.recs[checklistID]
	rec.Items = items
	s.recs[checklistID] = rec
	return nil
}

func TestChecklistCreate(t *testing.T) {
	store := newStubChecklistStore()
	i := impl{checklistStore: store}

	view, err := i.Create(checklistapimodels.CreateChecklistRequest{
		Title: "Engineering onboarding",
		Items: []checklistapimodels.ChecklistItemData{
			{Title: "Sign NDA", RequiresApproval: true},
			{Key: "laptop", Title: "Receive laptop"},
		},
	}, "user-1")
	require.Nil(t, err)
	require.Equal(t, "Engineering onboarding", view.Title)
	require.Equal(t, "user-1", view.CreatedBy)
	require.Len(t, view.Items, 2)
	// missing keys are generated, provided keys survive
	require.NotEmpty(t, view.Items[0].Key)
	require.Equal(t, "laptop", view.Items[1].Key)
}

func TestChecklistUpdate(t *testing.T) {
	store := newStubChecklistStore()
	rec := dbmodels.Checklist{
		Title: "Engineering onboarding",
		Items: dbmodels.ChecklistItemList{
			{Key: "nda", Title: "Sign NDA"},
			{Key: "laptop", Title: "Receive laptop"},
		},
	}
	rec.ID = "cl-1"
	store.recs[rec.ID] = rec
	i := impl{checklistStore: store}

	t.Run(`partial update keeps items`, func(t *testing.T) {
		title := "Engineering onboarding v2"
		view, err := i.Update("cl-1", checklistapimodels.UpdateChecklistRequest{Title: &title})
		require.Nil(t, err)
		require.Equal(t, title, view.Title)
		require.Len(t, view.Items, 2)
	})

	t.Run(`items replaced wholesale`, func(t *testing.T) {
		items := []checklistapimodels.ChecklistItemData{
			{Title: "Meet the team"},
		}
		view, err := i.Update("cl-1", checklistapimodels.UpdateChecklistRequest{Items: &items})
		require.Nil(t, err)
		require.Len(t, view.Items, 1)
		require.Equal(t, "Meet the team", view.Items[0].Title)
		require.NotEmpty(t, view.Items[0].Key)
	})

	t.Run(`not found check`, func(t *testing.T) {
		_, err := i.Update("missing", checklistapimodels.UpdateChecklistRequest{})
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})
}

func TestChecklistItems(t *testing.T) {
	store := newStubChecklistStore()
	rec := dbmodels.Checklist{
		Title: "Engineering onboarding",
		Items: dbmodels.ChecklistItemList{
			{Key: "nda", Title: "Sign NDA"},
		},
	}
	rec.ID = "cl-1"
	store.recs[rec.ID] = rec
	i := impl{checklistStore: store}

	t.Run(`add item check`, func(t *testing.T) {
		approval := true
		item, err := i.AddItem("cl-1", checklistapimodels.ItemRequest{
			Title:            "Security training",
			RequiresApproval: &approval,
		})
		require.Nil(t, err)
		require.NotEmpty(t, item.Key)
		require.True(t, item.RequiresApproval)
		require.Len(t, store.recs["cl-1"].Items, 2)
	})

	t.Run(`update item check`, func(t *testing.T) {
		item, err := i.UpdateItem("cl-1", "nda", checklistapimodels.ItemRequest{Title: "Sign the NDA"})
		require.Nil(t, err)
		require.Equal(t, "Sign the NDA", item.Title)
	})

	t.Run(`unknown key check`, func(t *testing.T) {
		_, err := i.UpdateItem("cl-1", "missing", checklistapimodels.ItemRequest{Title: "x"})
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))

		err = i.DeleteItem("cl-1", "missing")
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})

	t.Run(`delete item check`, func(t *testing.T) {
		err := i.DeleteItem("cl-1", "nda")
		require.Nil(t, err)
		for _, item := range store.recs["cl-1"].Items {
			require.NotEqual(t, "nda", item.Key)
		}
	})
}
