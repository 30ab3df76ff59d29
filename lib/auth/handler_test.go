package authhandler

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"workorbit-backend/config"
	"workorbit-backend/lib/utils/apperror"
	authutils "workorbit-backend/lib/utils/auth-utils"
	"workorbit-backend/models"
	authapimodels "workorbit-backend/models/api/auth"
	dbmodels "workorbit-backend/models/db"
)

type stubUserStore struct {
	users   map[string]dbmodels.User //by email
	created []dbmodels.User
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: map[string]dbmodels.User{}}
}

func (s *stubUserStore) Create(rec dbmodels.User) (string, error) {
	if rec.ID == "" {
		rec.ID = "user-1"
	}
	s.users[rec.Email] = rec
	s.created = append(s.created, rec)
	return rec.ID, nil
}

func (s *stubUserStore) GetByID(userID string) (*dbmodels.User, error) {
	for _, rec := range s.users {
		if rec.ID == userID {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) FindByEmail(email string) (*dbmodels.User, error) {
	rec, ok := s.users[email]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *stubUserStore) ExistByEmail(email string) (bool, error) {
	_, ok := s.users[email]
	return ok, nil
}

func (s *stubUserStore) ExistByRole(role models.UserRole) (bool, error) {
	for _, rec := range s.users {
		if rec.Role == role {
			return true, nil
		}
	}
	return false, nil
}

type stubEmployeeStore struct {
	recs map[string]dbmodels.Employee
}

func (s *stubEmployeeStore) Create(rec dbmodels.Employee) (string, error) { return rec.ID, nil }
func (s *stubEmployeeStore) Update(employeeID string, updMap map[string]interface{}) error {
	return nil
}
func (s *stubEmployeeStore) DeleteWithLogin(employeeID string) error { return nil }
func (s *stubEmployeeStore) GetList() ([]dbmodels.Employee, error)   { return nil, nil }
func (s *stubEmployeeStore) GetByID(employeeID string) (*dbmodels.Employee, error) {
	rec, ok := s.recs[employeeID]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}
func (s *stubEmployeeStore) FindByEmail(email string) (*dbmodels.Employee, error) {
	return nil, nil
}
func (s *stubEmployeeStore) Exist(employeeID string) (bool, error) {
	_, ok := s.recs[employeeID]
	return ok, nil
}
func (s *stubEmployeeStore) HasReports(employeeID string) (bool, error) { return false, nil }

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.SeedAdminEmail = "admin@workorbit.com"
	conf.Auth.SeedAdminPassword = "admin123"
	config.Conf = conf
}

func TestRegister(t *testing.T) {
	initTestConfig()
	t.Run(`register check`, func(t *testing.T) {
		store := newStubUserStore()
		i := impl{userStore: store}
		view, err := i.Register(authapimodels.RegisterRequest{
			Email:    "kim@workorbit.com",
			Password: "secret1",
			Role:     models.UserRoleEmployee,
		})
		require.Nil(t, err)
		require.NotEmpty(t, view.ID)
		require.Equal(t, "kim@workorbit.com", view.Email)
		require.Equal(t, models.UserRoleEmployee, view.Role)
		require.NotEqual(t, "secret1", store.created[0].PasswordHash)
	})

	t.Run(`duplicate email check`, func(t *testing.T) {
		store := newStubUserStore()
		store.users["kim@workorbit.com"] = dbmodels.User{Email: "kim@workorbit.com"}
		i := impl{userStore: store}
		_, err := i.Register(authapimodels.RegisterRequest{
			Email:    "kim@workorbit.com",
			Password: "secret1",
			Role:     models.UserRoleEmployee,
		})
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeDuplicate, apperror.GetCode(err))
	})
}

func TestLogin(t *testing.T) {
	initTestConfig()
	hash, err := authutils.HashPassword("secret1")
	require.Nil(t, err)
	store := newStubUserStore()
	rec := dbmodels.User{
		Email:        "kim@workorbit.com",
		PasswordHash: hash,
		Role:         models.UserRoleManager,
	}
	rec.ID = "user-1"
	store.users[rec.Email] = rec
	i := impl{userStore: store}

	t.Run(`unknown email check`, func(t *testing.T) {
		_, err := i.Login("missing@workorbit.com", "secret1")
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeNotFound, apperror.GetCode(err))
	})

	t.Run(`wrong password check`, func(t *testing.T) {
		_, err := i.Login("kim@workorbit.com", "wrong")
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeAuth, apperror.GetCode(err))
	})

	t.Run(`token claims check`, func(t *testing.T) {
		resp, err := i.Login("kim@workorbit.com", "secret1")
		require.Nil(t, err)
		require.NotEmpty(t, resp.Token)
		require.Equal(t, "user-1", resp.User.ID)

		token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
			return []byte(config.Conf.Auth.JWTSecret), nil
		})
		require.Nil(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "user-1", claims["sub"])
		require.Equal(t, "kim@workorbit.com", claims["email"])
		require.Equal(t, string(models.UserRoleManager), claims["role"])
	})
}

func TestMe(t *testing.T) {
	initTestConfig()

	t.Run(`linked employee is embedded`, func(t *testing.T) {
		store := newStubUserStore()
		employeeID := "emp-1"
		user := dbmodels.User{
			Email:      "kim@workorbit.com",
			Role:       models.UserRoleEmployee,
			EmployeeID: &employeeID,
		}
		user.ID = "user-1"
		store.users[user.Email] = user

		employee := dbmodels.Employee{
			FirstName: "Kim",
			LastName:  "Lee",
			Email:     "kim@workorbit.com",
		}
		employee.ID = employeeID
		employees := &stubEmployeeStore{recs: map[string]dbmodels.Employee{employeeID: employee}}

		i := impl{userStore: store, employeeStore: employees}
		view, err := i.Me("user-1")
		require.Nil(t, err)
		require.Equal(t, "user-1", view.ID)
		require.NotNil(t, view.EmployeeID)
		require.NotNil(t, view.Employee)
		require.Equal(t, employeeID, view.Employee.ID)
		require.Equal(t, "Kim", view.Employee.FirstName)
	})

	t.Run(`no linked employee`, func(t *testing.T) {
		store := newStubUserStore()
		user := dbmodels.User{Email: "kim@workorbit.com", Role: models.UserRoleEmployee}
		user.ID = "user-1"
		store.users[user.Email] = user

		i := impl{userStore: store, employeeStore: &stubEmployeeStore{}}
		view, err := i.Me("user-1")
		require.Nil(t, err)
		require.Nil(t, view.Employee)
	})

	t.Run(`unknown user check`, func(t *testing.T) {
		i := impl{userStore: newStubUserStore(), employeeStore: &stubEmployeeStore{}}
		_, err := i.Me("missing")
		require.NotNil(t, err)
		require.Equal(t, apperror.CodeAuth, apperror.GetCode(err))
	})
}

func TestSeedAdmin(t *testing.T) {
	initTestConfig()
	store := newStubUserStore()
	i := impl{userStore: store}

	resp, err := i.SeedAdmin()
	require.Nil(t, err)
	require.Equal(t, "admin@workorbit.com", resp.Email)
	require.Equal(t, "admin123", resp.Password)
	require.Len(t, store.created, 1)
	require.Equal(t, models.UserRoleAdmin, store.created[0].Role)

	// second run must refuse, the admin already exists
	_, err = i.SeedAdmin()
	require.NotNil(t, err)
	require.Equal(t, apperror.CodeDuplicate, apperror.GetCode(err))
}
