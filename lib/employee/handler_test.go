package employeehandler

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	pdfexport "workorbit-backend/lib/export/pdf"
	xlsexport "workorbit-backend/lib/export/xls"
	"workorbit-backend/lib/utils/apperror"
	"workorbit-backend/models"
	employeeapimodels "workorbit-backend/models/api/employee"
	dbmodels "workorbit-backend/models/db"
)

type stubEmployeeStore struct {
	recs             map[string]dbmodels.Employee //by id
	reports          map[string]bool
	deletedWithLogin []string
	updates          map[string]map[string]interface{}
}

func newStubEmployeeStore() *stubEmployeeStore {
	return &stubEmployeeStore{
		recs:    map[string]dbmodels.Employee{},
		reports: map[string]bool{},
		updates: map[string]map[string]interface{}{},
	}
}

func (s *stubEmployeeStore) Create(rec dbmodels.Employee) (string, error) {
	if rec.ID == "" {
		rec.ID = "emp-1"
	}
	s.recs[rec.ID] = rec
	return rec.ID, nil
}

func (s *stubEmployeeStore) Update(employeeID string, updMap map[string]interface{}) error {
	s.updates[employeeID] = updMap
	return nil
}

func (s *stubEmployeeStore) DeleteWithLogin(employeeID string) error {
	delete(s.recs, employeeID)
	s.deletedWithLogin = append(s.deletedWithLogin, employeeID)
	return nil
}

func (s *stubEmployeeStore) GetList() ([]dbmodels.Employee, error) {
	list := make([]dbmodels.Employee, 0, len(s.recs))
	for _, rec := range s.recs {
		list = append(list, rec)
	}
	return list, nil
}

func (s *stubEmployeeStore) GetByID(employeeID string) (*dbmodels.Employee, error) {
	rec, ok := s.recs[employeeID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *stubEmployeeStore) FindByEmail(email string) (*dbmodels.Employee, error) {
	for _, rec := range s.recs {
		if rec.Email == email {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *stubEmployeeStore) Exist(employeeID string) (bool, error) {
	_, ok := s.recs[employeeID]
	return ok, nil
}

func (s *stubEmployeeStore) HasReports(employeeID string) (bool, error) {
	return s.reports[employeeID], nil
}

func strPtr(v string) *string {
	return &v
}

func TestEmployeeCreate(t *testing.T) {
	t.Run(`create check`, func(t *testing.T) {
		store := newStubEmployeeStore()
		i := impl{employeeStore: store}
		view, err := i.Create(employeeapimodels.EmployeeData{
			FirstName:  "Kim",
			LastName:   "Lee",
			Email:      "kim@workorbit.com",
			Department: models.DepartmentEngineering,
			Skills:     []string{"go", "sql"},
		})
		require.Nil(t, err)
		require.NotEmpty(t, view.ID)
		require.Equal(t, "kim@workorbit.com", view.Email)
		require.Equal(t, []string{"go", "sql"}, view.Skills)
	})

	t.Run(`duplicate email check`, func(t *testing.T) {
		store := newStubEmployeeStore()
		store.recs["emp-0"] = dbmodels.Employee{Email: "kim@workorbit.com"}
		i := impl{employeeStore: store}
		_, err := i.Create(employeeapimodels.EmployeeData{
			FirstName: "Kim",
			LastName:  "Lee",
			Email:     "kim@workorbit.com",
		})
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeDuplicate, apperror.GetCode(err))
	})

	t.Run(`unknown manager check`, func(t *testing.T) {
		store := newStubEmployeeStore()
		i := impl{employeeStore: store}
		_, err := i.Create(employeeapimodels.EmployeeData{
			FirstName: "Kim",
			LastName:  "Lee",
			Email:     "kim@workorbit.com",
			ManagerID: strPtr("missing"),
		})
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
		require.Equal(t, "invalid manager_id", err.Error())
	})
}

func TestEmployeeUpdate(t *testing.T) {
	store := newStubEmployeeStore()
	rec := dbmodels.Employee{FirstName: "Kim", LastName: "Lee", Email: "kim@workorbit.com"}
	rec.ID = "emp-1"
	store.recs[rec.ID] = rec
	i := impl{employeeStore: store}

	t.Run(`not found check`, func(t *testing.T) {
		_, err := i.Update("missing", employeeapimodels.EmployeeData{
			FirstName: "Kim", LastName: "Lee", Email: "kim@workorbit.com",
		})
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})

	t.Run(`self manager check`, func(t *testing.T) {
		_, err := i.Update("emp-1", employeeapimodels.EmployeeData{
			FirstName: "Kim", LastName: "Lee", Email: "kim@workorbit.com",
			ManagerID: strPtr("emp-1"),
		})
		require.NotNil(t, err)
		require.Equal(t, "employee cannot be their own manager", err.Error())
	})

	t.Run(`update check`, func(t *testing.T) {
		_, err := i.Update("emp-1", employeeapimodels.EmployeeData{
			FirstName: "Kim", LastName: "Lee", Email: "kim@workorbit.com",
			JobTitle: "Team lead",
		})
		require.Nil(t, err)
		require.Equal(t, "Team lead", store.updates["emp-1"]["job_title"])
	})
}

func TestEmployeeDelete(t *testing.T) {
	store := newStubEmployeeStore()
	manager := dbmodels.Employee{Email: "boss@workorbit.com"}
	manager.ID = "emp-boss"
	worker := dbmodels.Employee{Email: "kim@workorbit.com"}
	worker.ID = "emp-1"
	store.recs[manager.ID] = manager
	store.recs[worker.ID] = worker
	store.reports[manager.ID] = true
	i := impl{employeeStore: store}

	t.Run(`manager with reports check`, func(t *testing.T) {
		err := i.Delete("emp-boss")
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeValidation, apperror.GetCode(err))
	})

	t.Run(`delete removes login check`, func(t *testing.T) {
		err := i.Delete("emp-1")
		require.Nil(t, err)
		require.Equal(t, []string{"emp-1"}, store.deletedWithLogin)
	})
}

func TestEmployeeExport(t *testing.T) {
	xlsexport.NewHandler()
	store := newStubEmployeeStore()
	rec := dbmodels.Employee{
		FirstName:  "Kim",
		LastName:   "Lee",
		Email:      "kim@workorbit.com",
		Department: models.DepartmentEngineering,
		Skills:     dbmodels.SkillList{"go"},
	}
	rec.ID = "emp-1"
	store.recs[rec.ID] = rec
	i := impl{employeeStore: store}

	buf, err := i.Export()
	require.Nil(t, err)
	require.NotNil(t, buf)
	require.NotZero(t, buf.Len())
}

func TestEmployeeExportPDF(t *testing.T) {
	pdfexport.NewHandler()
	store := newStubEmployeeStore()
	rec := dbmodels.Employee{
		FirstName:  "Kim",
		LastName:   "Lee",
		Email:      "kim@workorbit.com",
		Department: models.DepartmentEngineering,
		JobTitle:   "Engineer",
		Skills:     dbmodels.SkillList{"go", "sql"},
	}
	rec.ID = "emp-1"
	store.recs[rec.ID] = rec
	i := impl{employeeStore: store}

	buf, err := i.ExportPDF()
	require.Nil(t, err)
	require.NotNil(t, buf)
	require.NotZero(t, buf.Len())
	require.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}
