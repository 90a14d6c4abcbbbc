package helpers

import (
	"jobtrack_backend/internal/models"

	"gorm.io/gorm"
)

func migrateTestSchema(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Job{},
		&models.JobTask{},
		&models.CandidateTask{},
	)
}
