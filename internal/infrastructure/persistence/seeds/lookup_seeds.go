package seeds

import (
	"gorm.io/gorm"

	"campusguard/internal/infrastructure/persistence/models"
)

// SeedComplaintStatuses seeds the workflow states the lifecycle engine
// resolves at runtime. UNDER_REVIEW must exist for faculty assignment
// to work.
func SeedComplaintStatuses(db *gorm.DB) error {
	statuses := []models.ComplaintStatusModel{
		{Name: "OPEN"},
		{Name: "UNDER_REVIEW"},
		{Name: "RESOLVED"},
		{Name: "REJECTED"},
	}

	for _, status := range statuses {
		if err := db.FirstOrCreate(&status, models.ComplaintStatusModel{
			Name: status.Name,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedSeverityLevels seeds the default severity scale.
func SeedSeverityLevels(db *gorm.DB) error {
	levels := []models.SeverityLevelModel{
		{Name: "LOW"},
		{Name: "MEDIUM"},
		{Name: "HIGH"},
		{Name: "CRITICAL"},
	}

	for _, level := range levels {
		if err := db.FirstOrCreate(&level, models.SeverityLevelModel{
			Name: level.Name,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedDepartments seeds a baseline set of academic departments.
func SeedDepartments(db *gorm.DB) error {
	departments := []models.DepartmentModel{
		{Name: "Computer Science"},
		{Name: "Electrical Engineering"},
		{Name: "Mechanical Engineering"},
		{Name: "Civil Engineering"},
		{Name: "Mathematics"},
		{Name: "Physics"},
	}

	for _, department := range departments {
		if err := db.FirstOrCreate(&department, models.DepartmentModel{
			Name: department.Name,
		}).Error; err != nil {
			return err
		}
	}

	return nil
}

// SeedAll runs every seeder.
func SeedAll(db *gorm.DB) error {
	if err := SeedComplaintStatuses(db); err != nil {
		return err
	}
	if err := SeedSeverityLevels(db); err != nil {
		return err
	}
	return SeedDepartments(db)
}
