package employeehandler

import (
	"bytes"
	"fmt"

	log "github.com/sirupsen/logrus"

	"workorbit-backend/config"
	"workorbit-backend/db"
	employeestore "workorbit-backend/lib/employee/store"
	pdfexport "workorbit-backend/lib/export/pdf"
	xlsexport "workorbit-backend/lib/export/xls"
	"workorbit-backend/lib/smtp"
	"workorbit-backend/lib/utils/apperror"
	employeeapimodels "workorbit-backend/models/api/employee"
	dbmodels "workorbit-backend/models/db"
)

type Provider interface {
	Create(request employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error)
	Update(employeeID string, request employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error)
	Delete(employeeID string) error
	GetList() (list []employeeapimodels.EmployeeView, err error)
	GetByID(employeeID string) (employeeapimodels.EmployeeView, error)
	Export() (*bytes.Buffer, error)
	ExportPDF() (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	employeeStore employeestore.Provider
}

func (i impl) Create(request employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	logger := log.WithField("email", request.Email)
	existing, err := i.employeeStore.FindByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("employee create: email lookup error")
		return employeeapimodels.EmployeeView{}, err
	}
	if existing != nil {
		return employeeapimodels.EmployeeView{}, apperror.NewDuplicate("employee with this email exists")
	}
	if err := i.checkManager(request.ManagerID); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	rec := dbmodels.Employee{
		FirstName:  request.FirstName,
		LastName:   request.LastName,
		Email:      request.Email,
		Department: request.Department,
		JobTitle:   request.JobTitle,
		Location:   request.Location,
		Skills:     request.Skills,
		ManagerID:  request.ManagerID,
		Bio:        request.Bio,
	}
	id, err := i.employeeStore.Create(rec)
	if err != nil {
		logger.WithError(err).Error("employee create error")
		return employeeapimodels.EmployeeView{}, err
	}
	i.sendWelcomeMail(rec)
	return i.GetByID(id)
}

func (i impl) Update(employeeID string, request employeeapimodels.EmployeeData) (employeeapimodels.EmployeeView, error) {
	logger := log.WithField("employee_id", employeeID)
	rec, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		logger.WithError(err).Error("employee update: lookup error")
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, apperror.NewNotFound("employee not found")
	}
	existing, err := i.employeeStore.FindByEmail(request.Email)
	if err != nil {
		logger.WithError(err).Error("employee update: email lookup error")
		return employeeapimodels.EmployeeView{}, err
	}
	if existing != nil && existing.ID != employeeID {
		return employeeapimodels.EmployeeView{}, apperror.NewDuplicate("employee with this email exists")
	}
	if request.ManagerID != nil && *request.ManagerID == employeeID {
		return employeeapimodels.EmployeeView{}, apperror.NewValidation("employee cannot be their own manager")
	}
	if err := i.checkManager(request.ManagerID); err != nil {
		return employeeapimodels.EmployeeView{}, err
	}
	updMap := map[string]interface{}{
		"first_name": request.FirstName,
		"last_name":  request.LastName,
		"email":      request.Email,
		"department": request.Department,
		"job_title":  request.JobTitle,
		"location":   request.Location,
		"skills":     dbmodels.SkillList(request.Skills),
		"manager_id": request.ManagerID,
		"bio":        request.Bio,
	}
	if err := i.employeeStore.Update(employeeID, updMap); err != nil {
		logger.WithError(err).Error("employee update error")
		return employeeapimodels.EmployeeView{}, err
	}
	return i.GetByID(employeeID)
}

// Delete removes the employee together with the linked login; it is
// rejected while other employees still report to this one.
func (i impl) Delete(employeeID string) error {
	logger := log.WithField("employee_id", employeeID)
	rec, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		logger.WithError(err).Error("employee delete: lookup error")
		return err
	}
	if rec == nil {
		return apperror.NewNotFound("employee not found")
	}
	hasReports, err := i.employeeStore.HasReports(employeeID)
	if err != nil {
		logger.WithError(err).Error("employee delete: reports lookup error")
		return err
	}
	if hasReports {
		return apperror.NewValidation("cannot delete this employee because they manage other employees")
	}
	if err := i.employeeStore.DeleteWithLogin(employeeID); err != nil {
		logger.WithError(err).Error("employee delete error")
		return err
	}
	return nil
}

func (i impl) GetList() (list []employeeapimodels.EmployeeView, err error) {
	recs, err := i.employeeStore.GetList()
	if err != nil {
		log.WithError(err).Error("employee list error")
		return nil, err
	}
	list = make([]employeeapimodels.EmployeeView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetByID(employeeID string) (employeeapimodels.EmployeeView, error) {
	rec, err := i.employeeStore.GetByID(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("employee lookup error")
		return employeeapimodels.EmployeeView{}, err
	}
	if rec == nil {
		return employeeapimodels.EmployeeView{}, apperror.NewNotFound("employee not found")
	}
	return rec.ToModel(), nil
}

func (i impl) Export() (*bytes.Buffer, error) {
	recs, err := i.employeeStore.GetList()
	if err != nil {
		log.WithError(err).Error("employee export: list error")
		return nil, err
	}
	return xlsexport.Instance.ExportEmployeeList(recs)
}

func (i impl) ExportPDF() (*bytes.Buffer, error) {
	recs, err := i.employeeStore.GetList()
	if err != nil {
		log.WithError(err).Error("employee export: list error")
		return nil, err
	}
	return pdfexport.Instance.ExportEmployeeList(recs)
}

func (i impl) checkManager(managerID *string) error {
	if managerID == nil || *managerID == "" {
		return nil
	}
	exist, err := i.employeeStore.Exist(*managerID)
	if err != nil {
		log.WithField("manager_id", *managerID).WithError(err).Error("manager lookup error")
		return err
	}
	if !exist {
		return apperror.NewValidation("invalid manager_id")
	}
	return nil
}

func (i impl) sendWelcomeMail(rec dbmodels.Employee) {
	if smtp.Instance == nil || !smtp.Instance.IsConfigured() {
		return
	}
	message := fmt.Sprintf("Hi %s, your WorkOrbit profile has been created. Your onboarding checklist will appear once it is assigned.", rec.GetFullName())
	err := smtp.Instance.SendEMail(config.Conf.Smtp.From, rec.Email, message, "Welcome to WorkOrbit")
	if err != nil {
		log.WithField("email", rec.Email).WithError(err).Error("welcome mail send error")
	}
}
