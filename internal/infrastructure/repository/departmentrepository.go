package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"campusguard/internal/domain/user"
	"campusguard/internal/infrastructure/persistence/models"
	"campusguard/internal/shared/db"
)

type DepartmentRepository struct {
	db *gorm.DB
}

func NewDepartmentRepository(database *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{db: database}
}

func (r *DepartmentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]user.Department, error) {
	result := make(map[uint]user.Department, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find departments: %w", err)
	}

	for _, row := range rows {
		result[row.ID] = user.Department{ID: row.ID, Name: row.Name}
	}

	return result, nil
}
