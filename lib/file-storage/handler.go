package filestorage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"workorbit-backend/db"
	employeestore "workorbit-backend/lib/employee/store"
	filesdbstore "workorbit-backend/lib/file-storage/store"
	objectstorage "workorbit-backend/lib/file-storage/storage"
	"workorbit-backend/lib/utils/apperror"
	s3client "workorbit-backend/s3"
	employeeapimodels "workorbit-backend/models/api/employee"
	dbmodels "workorbit-backend/models/db"
)

type Document struct {
	FileName    string
	ContentType string
	Body        []byte
}

type Provider interface {
	UploadDocument(ctx context.Context, employeeID, uploadedBy, fileName, contentType string, file []byte) (employeeapimodels.DocumentView, error)
	GetDocumentList(employeeID string) ([]employeeapimodels.DocumentView, error)
	GetDocument(ctx context.Context, employeeID, fileID string) (Document, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		filesStore:    filesdbstore.NewInstance(db.DB),
		employeeStore: employeestore.NewInstance(db.DB),
		storage:       objectstorage.NewInstance(s3client.Client),
	}
}

type impl struct {
	filesStore    filesdbstore.Provider
	employeeStore employeestore.Provider
	storage       objectstorage.Provider
}

func (i impl) UploadDocument(ctx context.Context, employeeID, uploadedBy, fileName, contentType string, file []byte) (employeeapimodels.DocumentView, error) {
	logger := log.
		WithField("employee_id", employeeID).
		WithField("file_name", fileName)
	if fileName == "" {
		return employeeapimodels.DocumentView{}, apperror.NewValidation("file name required")
	}
	if len(file) == 0 {
		return employeeapimodels.DocumentView{}, apperror.NewValidation("file is empty")
	}
	exist, err := i.employeeStore.Exist(employeeID)
	if err != nil {
		logger.WithError(err).Error("document upload: employee lookup error")
		return employeeapimodels.DocumentView{}, err
	}
	if !exist {
		return employeeapimodels.DocumentView{}, apperror.NewNotFound("employee not found")
	}
	objectKey := fmt.Sprintf("%s/%s", employeeID, uuid.NewString())
	if err := i.storage.UploadFile(ctx, objectKey, contentType, file); err != nil {
		logger.WithError(err).Error("document upload: object store error")
		return employeeapimodels.DocumentView{}, err
	}
	rec := dbmodels.FileStorage{
		EmployeeID:  employeeID,
		FileName:    fileName,
		ContentType: contentType,
		ObjectKey:   objectKey,
		UploadedBy:  uploadedBy,
	}
	id, err := i.filesStore.SaveFile(rec)
	if err != nil {
		logger.WithError(err).Error("document upload: record save error")
		return employeeapimodels.DocumentView{}, err
	}
	rec.ID = id
	return rec.ToModel(), nil
}

func (i impl) GetDocumentList(employeeID string) ([]employeeapimodels.DocumentView, error) {
	recs, err := i.filesStore.GetListByEmployee(employeeID)
	if err != nil {
		log.WithField("employee_id", employeeID).WithError(err).Error("document list error")
		return nil, err
	}
	list := make([]employeeapimodels.DocumentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, rec.ToModel())
	}
	return list, nil
}

func (i impl) GetDocument(ctx context.Context, employeeID, fileID string) (Document, error) {
	logger := log.
		WithField("employee_id", employeeID).
		WithField("file_id", fileID)
	rec, err := i.filesStore.GetByID(fileID)
	if err != nil {
		logger.WithError(err).Error("document lookup error")
		return Document{}, err
	}
	if rec == nil || rec.EmployeeID != employeeID {
		return Document{}, apperror.NewNotFound("document not found")
	}
	body, err := i.storage.GetFile(ctx, rec.ObjectKey)
	if err != nil {
		logger.WithError(err).Error("document download error")
		return Document{}, err
	}
	return Document{
		FileName:    rec.FileName,
		ContentType: rec.ContentType,
		Body:        body,
	}, nil
}
