package authhandler

import (
	log "github.com/sirupsen/logrus"

	"workorbit-backend/config"
	"workorbit-backend/db"
	userstore "workorbit-backend/lib/auth/store"
	employeestore "workorbit-backend/lib/employee/store"
	"workorbit-backend/lib/utils/apperror"
	authutils "workorbit-backend/lib/utils/auth-utils"
	"workorbit-backend/models"
	authapimodels "workorbit-backend/models/api/auth"
	dbmodels "workorbit-backend/models/db"
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (authapimodels.UserView, error)
	Login(email, password string) (authapimodels.JWTResponse, error)
	Me(userID string) (authapimodels.UserView, error)
	SeedAdmin() (authapimodels.SeedAdminResponse, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore:     userstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore     userstore.Provider
	employeeStore employeestore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) (authapimodels.UserView, error) {
	logger := log.WithField("email", request.Email)
	exist, err := i.userStore.ExistByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("registration: email lookup error")
		return authapimodels.UserView{}, err
	}
	if exist {
		return authapimodels.UserView{}, apperror.NewDuplicate("user already exists")
	}
	hash, err := authutils.HashPassword(request.Password)
	if err != nil {
		logger.WithError(err).Error("registration: password hashing error")
		return authapimodels.UserView{}, err
	}
	rec := dbmodels.User{
		Email:        request.Email,
		PasswordHash: hash,
		Role:         request.Role,
		EmployeeID:   request.EmployeeID,
	}
	id, err := i.userStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("registration: user create error")
		return authapimodels.UserView{}, err
	}
	rec.ID = id
	return rec.ToModel(), nil
}

func (i impl) Login(email, password string) (authapimodels.JWTResponse, error) {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		logger.WithError(err).Error("login: email lookup error")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, apperror.NewNotFound("user not found")
	}
	if !authutils.CheckPassword(user.PasswordHash, password) {
		logger.Debug("login: password check failed")
		return authapimodels.JWTResponse{}, apperror.NewAuth("invalid credentials")
	}
	token, err := authutils.GetToken(user.ID, user.Email, user.Role)
	if err != nil {
		logger.WithError(err).Error("login: JWT generation error")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token: token,
		User:  user.ToModel(),
	}, nil
}

// Me returns the profile with the linked employee populated.
func (i impl) Me(userID string) (authapimodels.UserView, error) {
	logger := log.WithField("user_id", userID)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("profile lookup error")
		return authapimodels.UserView{}, err
	}
	if user == nil {
		return authapimodels.UserView{}, apperror.NewAuth("user not found")
	}
	view := user.ToModel()
	if user.EmployeeID != nil && *user.EmployeeID != "" {
		rec, err := i.employeeStore.GetByID(*user.EmployeeID)
		if err != nil {
			logger.WithError(err).Error("profile: linked employee lookup error")
			return authapimodels.UserView{}, err
		}
		if rec != nil {
			employee := rec.ToModel()
			view.Employee = &employee
		}
	}
	return view, nil
}

// SeedAdmin is a first-run bootstrap; it refuses to run once any admin
// exists. Credentials come from config, dev environments only.
func (i impl) SeedAdmin() (authapimodels.SeedAdminResponse, error) {
	exist, err := i.userStore.ExistByRole(models.UserRoleAdmin)
	if err != nil {
		log.WithError(err).Error("seed admin: role lookup error")
		return authapimodels.SeedAdminResponse{}, err
	}
	if exist {
		return authapimodels.SeedAdminResponse{}, apperror.NewDuplicate("admin already exists")
	}
	email := config.Conf.Auth.SeedAdminEmail
	password := config.Conf.Auth.SeedAdminPassword
	hash, err := authutils.HashPassword(password)
	if err != nil {
		log.WithError(err).Error("seed admin: password hashing error")
		return authapimodels.SeedAdminResponse{}, err
	}
	_, err = i.userStore.Create(dbmodels.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.UserRoleAdmin,
	})
	if err != nil {
		log.WithError(err).Error("seed admin: user create error")
		return authapimodels.SeedAdminResponse{}, err
	}
	log.WithField("email", email).Info("seed admin account created")
	return authapimodels.SeedAdminResponse{
		Email:    email,
		Password: password,
	}, nil
}
