package migrations

import (
	"fmt"

	"gorm.io/gorm"

	"campusguard/internal/infrastructure/persistence/models"
	"campusguard/internal/shared/logger"
)

// RunAutoMigrations migrates the full schema using gorm AutoMigrate.
func RunAutoMigrations(db *gorm.DB) error {
	allModels := []interface{}{
		&models.UserModel{},
		&models.DepartmentModel{},
		&models.ComplaintStatusModel{},
		&models.SeverityLevelModel{},
		&models.ComplaintModel{},
		&models.AccusedPartyModel{},
		&models.EvidenceModel{},
		&models.ComplaintLogModel{},
	}

	logger.Info("starting database migration", "models_count", len(allModels))

	if err := db.AutoMigrate(allModels...); err != nil {
		return fmt.Errorf("auto migration failed: %w", err)
	}

	logger.Info("database migration completed")
	return nil
}
