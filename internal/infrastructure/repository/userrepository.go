package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"campusguard/internal/domain/user"
	"campusguard/internal/infrastructure/persistence/mappers"
	"campusguard/internal/infrastructure/persistence/models"
	"campusguard/internal/shared/authorization"
	"campusguard/internal/shared/db"
	apperrors "campusguard/internal/shared/errors"
)

type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{
		db:     database,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("user already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var rows []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Model(&models.UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return count > 0, nil
}

func (r *UserRepository) SearchStudents(ctx context.Context, nameQuery, rollNo string) ([]*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserModel{}).Where("role = ?", authorization.RoleStudent.String())

	switch {
	case nameQuery != "" && rollNo != "":
		query = query.Where("LOWER(full_name) LIKE ? OR roll_no = ?",
			"%"+strings.ToLower(nameQuery)+"%", rollNo)
	case nameQuery != "":
		query = query.Where("LOWER(full_name) LIKE ?", "%"+strings.ToLower(nameQuery)+"%")
	case rollNo != "":
		query = query.Where("roll_no = ?", rollNo)
	}

	var rows []models.UserModel
	if err := query.Order("full_name ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to search students: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, nil
}
