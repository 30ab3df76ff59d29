package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "workorbit-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "migration error for User")
	}
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "migration error for Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.Checklist{}); err != nil {
		return errors.Wrap(err, "migration error for Checklist")
	}
	if err := DB.AutoMigrate(&dbmodels.OnboardingInstance{}); err != nil {
		return errors.Wrap(err, "migration error for OnboardingInstance")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "migration error for FileStorage")
	}
	log.Info("migrations finished")
	return nil
}
