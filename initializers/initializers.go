package initializers

import (
	"context"

	"workorbit-backend/config"
	"workorbit-backend/fiberlog"
	authhandler "workorbit-backend/lib/auth"
	checklisthandler "workorbit-backend/lib/checklist"
	employeehandler "workorbit-backend/lib/employee"
	pdfexport "workorbit-backend/lib/export/pdf"
	xlsexport "workorbit-backend/lib/export/xls"
	filestorage "workorbit-backend/lib/file-storage"
	onboardinghandler "workorbit-backend/lib/onboarding"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	xlsexport.NewHandler()
	pdfexport.NewHandler()
	filestorage.NewHandler()
	authhandler.NewHandler()
	employeehandler.NewHandler()
	checklisthandler.NewHandler()
	onboardinghandler.NewHandler()
}
