package mappers

import (
	"fmt"
	"time"

	"campusguard/internal/domain/user"
	"campusguard/internal/infrastructure/persistence/models"
	"campusguard/internal/shared/authorization"
)

type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		FullName:     u.FullName(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		RollNo:       u.RollNo(),
		DepartmentID: u.DepartmentID(),
		Year:         u.Year(),
		PhoneNo:      u.PhoneNo(),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	role, ok := authorization.ParseRole(model.Role)
	if !ok {
		return nil, fmt.Errorf("unknown role %q on user %d", model.Role, model.ID)
	}

	return user.ReconstructUser(
		model.ID,
		model.FullName,
		model.Email,
		model.PasswordHash,
		role,
		model.RollNo,
		model.DepartmentID,
		model.Year,
		model.PhoneNo,
		time.UnixMilli(model.CreatedAt).UTC(),
		time.UnixMilli(model.UpdatedAt).UTC(),
	)
}
